package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"taskloop/internal/api"
	"taskloop/internal/config"
	"taskloop/internal/infra/exectask"
	"taskloop/internal/journal"
	"taskloop/internal/runner"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Config carries the CLI flag values. Zero values fall back to the
// environment-sourced config, so flags always win when set.
type Config struct {
	Interpreter  string
	Script       string
	WorkDir      string
	Label        string
	Interval     time.Duration
	HistoryDepth int
	StatusPort   int
}

func (c Config) merged(env config.Task) Config {
	if c.Interpreter == "" {
		c.Interpreter = env.Interpreter
	}
	if c.Script == "" {
		c.Script = env.Script
	}
	if c.WorkDir == "" {
		c.WorkDir = env.WorkDir
	}
	if c.Label == "" {
		c.Label = env.Label
	}
	if c.Interval == 0 {
		c.Interval = env.Interval
	}
	if c.HistoryDepth == 0 {
		c.HistoryDepth = env.HistoryDepth
	}
	if c.StatusPort == 0 {
		c.StatusPort = env.StatusPort
	}
	return c
}

// Run wires the runner, the journal and the optional status server
// together and blocks until a signal arrives or one of them fails.
func Run(cfg Config) error {
	appCfg := config.Load()
	cfg = cfg.merged(appCfg.Task)

	if cfg.Script == "" {
		return errors.New("no task script configured (use --script or Task_Script)")
	}
	if cfg.Interval <= 0 {
		// The two known deployments of the original disagreed on the
		// interval, so there is no default to fall back to.
		return fmt.Errorf("interval must be set and positive (use --interval or Task_Interval)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	j := journal.New(cfg.HistoryDepth)
	inv := exectask.New(cfg.Interpreter, cfg.Script, cfg.WorkDir)
	loop := runner.New(inv, j, cfg.Interval, cfg.Label)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(ctx) })

	if cfg.StatusPort > 0 {
		srv := api.NewServer(j, cfg.Interval, cfg.Label)
		g.Go(func() error { return srv.Run(ctx, cfg.StatusPort) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
