package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cyber-snake/internal/config"
	"github.com/vovakirdan/cyber-snake/internal/platform/tui"
	"github.com/vovakirdan/cyber-snake/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the retained high scores.

By default this opens an interactive table. Use --plain for script
friendly output, or --clear to wipe the stored scores.

Examples:
  cybersnake scores
  cybersnake scores --plain
  cybersnake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		store.Close()
		fmt.Println("High scores cleared.")
		return
	}

	if flagPlain {
		scores, err := store.TopScores(storage.KeepTop)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		stats, _ := store.GetStats()
		store.Close()
		printScores(scores, stats)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunScoreboard(store, width, height)
	store.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", runErr)
		os.Exit(1)
	}
}

func printScores(scores []storage.ScoreEntry, stats *storage.Stats) {
	fmt.Println("High Scores - Cyber-Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cybersnake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %s\n", "Rank", "Score", "Length", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %s\n", "----", "-----", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8d  %-7d  %s\n",
			i+1, entry.Score, entry.Length, entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Average: %.0f\n", stats.HighScore, stats.AvgScore)
	}
}
