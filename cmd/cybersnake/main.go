// cybersnake is a neon-flavored snake game for the terminal.
//
// Usage:
//
//	cybersnake               - Start a game
//	cybersnake play          - Start a game
//	cybersnake scores        - Show the high score table
//	cybersnake themes        - List available visual themes
//
// Global flags:
//
//	--seed <value>   - Set gameplay RNG seed for reproducible runs
//	--db <path>      - Set database path (default from config)
//	--config <path>  - Path to a custom config YAML
//	--debug <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cybersnake",
	Short: "Cyber-Snake - neon snake for your terminal",
	Long: `Cyber-Snake is a terminal snake game with power-ups, levels,
obstacles, particle effects and synthesized sound.

Available commands:
  play     - Start a game (also the default action)
  scores   - View the high score table
  themes   - List visual themes

Examples:
  cybersnake
  cybersnake play --difficulty hard
  cybersnake play --theme matrix --no-sound
  cybersnake scores --plain
  cybersnake themes`,
	Args: cobra.NoArgs,
	Run:  runPlay, // Bare invocation starts a game
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDebug, "debug", "", "Write debug logs to this file")

	// The root command doubles as play, so it takes the same flags.
	registerPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
}
