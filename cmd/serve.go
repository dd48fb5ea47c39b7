package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mathmentor/mathmentor/internal/api"
	"github.com/mathmentor/mathmentor/internal/chat"
	"github.com/mathmentor/mathmentor/internal/config"
	"github.com/mathmentor/mathmentor/internal/llm"
	"github.com/mathmentor/mathmentor/internal/progress"
	"github.com/mathmentor/mathmentor/internal/questiongen"
	"github.com/mathmentor/mathmentor/internal/questions"
	"github.com/mathmentor/mathmentor/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe wires the full server: store, provider, services, router.
func runServe(cmd *cobra.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	dbPath := cfg.DBPath
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("create DB directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	slog.Info("database ready", "path", dbPath)

	qs, err := questions.New()
	if err != nil {
		return fmt.Errorf("load question catalog: %w", err)
	}

	// Without a model provider the server still runs: canned chat
	// responses and catalog-sampled questions.
	var (
		generator questiongen.Generator = questiongen.NewCatalogGenerator(qs)
		resolver  chat.Resolver         = chat.NewStaticResolver()
	)
	if cfg.HasProvider() {
		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, st.RequestLog())
		if err != nil {
			return fmt.Errorf("construct model provider: %w", err)
		}
		generator = questiongen.NewLLMGenerator(provider)
		resolver = chat.NewRemoteResolver(provider, cfg.LLM.Timeout)
		slog.Info("model provider configured", "provider", cfg.LLM.Provider, "model", provider.ModelID())
	} else {
		slog.Info("no model provider configured, serving canned responses and catalog questions")
	}

	prog := progress.NewService(st.Assessments(), st.Progress(), st.Achievements())
	handler := api.NewHandler(qs, generator, resolver, prog, st.Settings(), cfg.QuestionCount)
	identity := api.NewIdentity(cfg.SessionSecret, !cfg.IsDevelopment())
	router := api.NewRouter(handler, identity)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
