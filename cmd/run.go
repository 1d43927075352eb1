package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"anglolingua/internal/access"
	"anglolingua/internal/app"
	"anglolingua/internal/catalog"
	"anglolingua/internal/config"
	"anglolingua/internal/logging"
	"anglolingua/internal/progress"
	"anglolingua/internal/screen"
	"anglolingua/internal/store"
	"anglolingua/internal/tutor"
)

// runApp wires every service and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.Logging.File
	if logPath == "" {
		if logPath, err = logging.DefaultLogPath(); err != nil {
			return err
		}
	}
	logger, logCloser, err := logging.Open(logPath, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	dbPath, err := resolveDBPath(cmd, cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	progressStore := progress.NewStore(st, logger)
	if err := progressStore.Rehydrate(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	catalogStore := catalog.NewStore(catalog.StaticSource{})
	if err := catalogStore.Load(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	provider, timeout := buildTutor(cmd, cfg, st, logger)

	svc := &screen.Services{
		Catalog:      catalogStore,
		Progress:     progressStore,
		Policy:       access.Policy{FreeLessons: cfg.Access.FreeLessons},
		Tutor:        provider,
		TutorTimeout: timeout,
		Logger:       logger,
	}

	logger.Info("starting",
		"db", dbPath,
		"lessons", catalogStore.Len(),
		"tutor", provider.ModelID(),
	)
	return app.Run(svc)
}

// buildTutor resolves the tutor provider: explicit env config first,
// then the config file, then API key discovery, then the unavailable
// fallback. A misconfigured provider degrades to the fallback instead
// of failing startup.
func buildTutor(cmd *cobra.Command, cfg config.Config, st *store.Store, logger *slog.Logger) (tutor.Provider, time.Duration) {
	tcfg := tutor.ConfigFromEnv()
	tcfg.Timeout = time.Duration(cfg.Tutor.TimeoutSeconds) * time.Second

	if os.Getenv("ANGLOLINGUA_TUTOR_PROVIDER") == "" {
		if cfg.Tutor.Provider != "" {
			tcfg.Provider = cfg.Tutor.Provider
		} else if discovered, ok := tutor.DiscoverConfig(); ok {
			discovered.Timeout = tcfg.Timeout
			tcfg = discovered
		} else {
			tcfg.Provider = "none"
		}
	}
	if cfg.Tutor.Model != "" {
		switch tcfg.Provider {
		case "gemini":
			tcfg.Gemini.Model = cfg.Tutor.Model
		case "openai":
			tcfg.OpenAI.Model = cfg.Tutor.Model
		case "anthropic":
			tcfg.Anthropic.Model = cfg.Tutor.Model
		}
	}

	if err := tcfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "AI tutor not configured:", err)
		fmt.Fprintln(os.Stderr, "Conversation practice will be unavailable.")
		tcfg = tutor.Config{Provider: "none", Timeout: tcfg.Timeout}
	}

	provider, err := tutor.NewProvider(cmd.Context(), tcfg, st.TutorEvents(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI tutor unavailable:", err)
		provider = tutor.WithLogging(tutor.NewUnavailableProvider(), st.TutorEvents(), logger)
	}
	return provider, tcfg.Timeout
}
