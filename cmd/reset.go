package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anglolingua/internal/config"
	"anglolingua/internal/progress"
	"anglolingua/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Log out and clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ps := progress.NewStore(st, nil)
		if err := ps.Rehydrate(cmd.Context()); err != nil {
			return err
		}
		if !ps.Authenticated() {
			fmt.Println("No saved session.")
			return nil
		}
		if err := ps.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Saved session removed. The next login starts fresh.")
		return nil
	},
}
