// Gastro is a restaurant ordering console.
//
// Usage:
//
//	gastro [-plain] [-no-sound] [-catalog menu.yaml] [-history-file path]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/gastro/internal/account"
	"github.com/hammamikhairi/gastro/internal/catalog"
	"github.com/hammamikhairi/gastro/internal/chime"
	"github.com/hammamikhairi/gastro/internal/command"
	"github.com/hammamikhairi/gastro/internal/config"
	"github.com/hammamikhairi/gastro/internal/display"
	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/engine"
	"github.com/hammamikhairi/gastro/internal/logger"
	"github.com/hammamikhairi/gastro/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, config.ErrHelp) {
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gastro: %v\n", err)
		os.Exit(2)
	}

	// Direct logs to a file by default so the console stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party packages that use the standard logger write to the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	// Unexpected failures are logged and the process still exits 0.
	defer func() {
		if r := recover(); r != nil {
			log.Error("fatal: %v", r)
			fmt.Fprintf(os.Stderr, "gastro: fatal error: %v\n", r)
		}
	}()

	if err := run(cfg, log); err != nil {
		log.Error("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "gastro: %v\n", err)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, err := catalog.Open(cfg.Catalog, log)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	store := storage.NewMemoryStore[domain.Role, account.Person](log)
	auth := account.NewAuth(store, log)

	var ring domain.Chime = chime.NewNoOp(log)
	if !cfg.NoSound {
		player, err := chime.NewPlayer(log)
		if err != nil {
			log.Warn("audio player init failed, chime disabled: %v", err)
		} else {
			ring = player
			defer player.Stop()
		}
	}

	eng := engine.New(r, auth, log,
		engine.WithHistoryPath(cfg.HistoryFile),
		engine.WithChime(ring),
	)

	app := &cliApp{
		engine: eng,
		parser: command.NewParser(log),
		log:    log,
		pause:  cfg.Pause,
	}

	log.Info("starting (catalog=%q, history=%s, meals=%d, log=%s)",
		cfg.Catalog, cfg.HistoryFile, len(r.Meals()), log.GetLevel())

	if cfg.Plain || !display.Interactive() {
		app.console = display.NewPlain(os.Stdin, os.Stdout)
		return app.run(ctx)
	}

	ui := display.NewUI()
	app.console = ui

	fmt.Println(display.RenderBanner("Restaurant ordering console"))

	// Run app logic in a background goroutine.
	errCh := make(chan error, 1)
	go func() {
		ui.WaitReady()
		errCh <- app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
