package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"anglolingua/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "anglolingua",
	Short: "English learning for Polish speakers",
	Long:  "AngloLingua — terminal app for Polish speakers learning English: lessons, homework, and an AI conversation tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env provides API keys during development; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ANGLOLINGUA_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config.toml (defaults to ~/.config/anglolingua/config.toml)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
