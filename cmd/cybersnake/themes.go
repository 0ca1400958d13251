package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyber-snake/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available visual themes",
	Long:  `Shows every registered theme with its glyph set.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := theme.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "ID", "Title", "Glyphs")
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "--", "-----", "------")

	// Print themes
	for _, t := range themes {
		glyphs := fmt.Sprintf("head %c  body %c  food %c", t.Head, t.Body, t.Food)
		fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, t.ID, t.Title, glyphs)
	}

	fmt.Println()
	fmt.Println("Run 'cybersnake play --theme <id>' to use a theme.")
}
