// rogue is a TUI platform for playing turn-based dungeon games in the terminal.
//
// Usage:
//
//	rogue list               - List available games
//	rogue play <game>        - Play a game
//	rogue menu               - Start menu to pick games interactively
//	rogue serve              - Start SSH server for remote play
//	rogue scores <game>      - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.rogue/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-rogue/internal/games/crawler"
	_ "github.com/vovakirdan/tui-rogue/internal/games/sokoban"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rogue",
	Short: "TUI Rogue - Turn-based dungeon games in your terminal",
	Long: `TUI Rogue is a terminal-based gaming platform for turn-based
dungeon and puzzle games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  rogue list
  rogue play crawler
  rogue menu
  rogue serve --ssh :2222
  rogue scores crawler`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rogue/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
