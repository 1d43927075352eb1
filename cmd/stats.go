package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anglolingua/internal/config"
	"anglolingua/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent AI tutor requests",
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

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := st.TutorEvents().RecentTutorRequests(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No tutor requests recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %-30s  %8s  %-7s\n", "TIME", "MODEL", "LATENCY", "RESULT")
		for _, ev := range events {
			result := "ok"
			if !ev.Success {
				result = "error"
			}
			fmt.Printf("%-20s  %-30s  %6dms  %-7s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.Model, ev.LatencyMs, result,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Number of requests to show")
}
