package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"roulette/internal/config"
	"roulette/internal/console"
	"roulette/internal/engine"
	"roulette/internal/games"
	"roulette/internal/lib/logger/handler/slogpretty"
	"roulette/internal/lib/logger/sl"
	"roulette/internal/scripting"
	"roulette/internal/session"
)

func main() {
	var (
		envFile    = flag.String("env-file", "", "path to .env file (default: ./.env if present)")
		scriptPath = flag.String("script", "", "autoplay strategy script; omit for interactive play")
		rounds     = flag.Int("rounds", 0, "maximum rounds to play (0 = unlimited)")
	)
	flag.Parse()

	cfg := config.MustLoad(*envFile)

	log := setupLogger(cfg.Env)
	log.Info("starting roulette", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompter, err := buildPrompter(*scriptPath, log)
	if err != nil {
		log.Error("failed to set up prompter", sl.Err(err))
		os.Exit(1)
	}

	sess := session.New(session.Config{
		Wheel:           games.NewWheel(floatSource(cfg, log)),
		Prompter:        prompter,
		Out:             os.Stdout,
		Log:             log,
		StartingBalance: cfg.StartingBalance,
		MaxRounds:       *rounds,
	})

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	select {
	case err := <-done:
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			farewell(sess)
		default:
			log.Error("session failed", sl.Err(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		// The interactive prompter may still be blocked on stdin.
		farewell(sess)
	}
}

func farewell(sess *session.Session) {
	fmt.Printf("\nGame aborted. You leave the table with $%s. See you next time!\n",
		sess.Balance().StringFixed(2))
}

func buildPrompter(scriptPath string, log *slog.Logger) (session.Prompter, error) {
	if scriptPath == "" {
		return console.NewPrompter(os.Stdin, os.Stdout), nil
	}

	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("read strategy script: %w", err)
	}

	sp := scripting.NewPrompter(scripting.NewVM(log), log)
	if err := sp.Load(string(source)); err != nil {
		return nil, fmt.Errorf("load strategy script: %w", err)
	}

	log.Info("autoplay enabled", slog.String("script", scriptPath))
	return sp, nil
}

func floatSource(cfg *config.Config, log *slog.Logger) engine.FloatSource {
	if cfg.ServerSeed == "" {
		return engine.NewEntropySource()
	}

	clientSeed := cfg.ClientSeed
	if clientSeed == "" {
		clientSeed = uuid.New().String()
	}

	log.Info("using seeded wheel",
		slog.String("client_seed", clientSeed),
		slog.Uint64("nonce", cfg.Nonce))
	return engine.NewSeededSource(cfg.ServerSeed, clientSeed, cfg.Nonce)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
