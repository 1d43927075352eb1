package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"anglolingua/internal/config"
	"anglolingua/internal/logging"
	"anglolingua/internal/store"
	"anglolingua/internal/tutor"
)

// askCmd sends a single message to the configured AI tutor and prints
// the reply. Useful for checking provider setup without the TUI.
var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send a one-off message to the AI tutor",
	Args:  cobra.MinimumNArgs(1),
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

		logger, logCloser, err := logging.Open("", cfg.Logging.Level)
		if err != nil {
			return err
		}
		defer logCloser.Close()

		provider, timeout := buildTutor(cmd, cfg, st, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		resp, err := provider.Generate(ctx, tutor.Request{
			System: tutor.SystemPrompt,
			Messages: []tutor.Message{
				{Role: tutor.RoleUser, Content: strings.Join(args, " ")},
			},
			MaxTokens: 1024,
		})
		if err != nil {
			return fmt.Errorf("tutor request failed: %w", err)
		}

		fmt.Println(resp.Text)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Printf("\nmodel=%s stop=%s input_tokens=%d output_tokens=%d\n",
				resp.Model, resp.StopReason, resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("verbose", false, "Print model and token usage after the reply")
}
