package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tddfan/brainquest-sub000/internal/config"
	"github.com/tddfan/brainquest-sub000/internal/evalbuilder"
	"github.com/tddfan/brainquest-sub000/internal/server"
	"github.com/tddfan/brainquest-sub000/internal/server/game"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/rules/dragontooth"
)

var (
	flgConfig  string
	flgAddress string
	flgEval    string
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.StringVar(&flgAddress, "addr", "", "listen address")
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	var cfg, err = loadConfig()
	if err != nil {
		return err
	}
	if flgAddress != "" {
		cfg.Server.Address = flgAddress
	}
	if flgEval != "" {
		cfg.Engine.Eval = flgEval
	}
	newEvaluator, err := evalbuilder.Get(cfg.Engine.Eval)
	if err != nil {
		return err
	}

	var games = game.NewManager(
		func(fen string) (game.Position, error) {
			return dragontooth.NewPosition(fen)
		},
		func() *engine.Engine {
			var eng = engine.NewEngine(newEvaluator(), cfg.Engine.NewRand())
			eng.Tiers = cfg.Engine.TierMap()
			eng.Difficulty = cfg.Engine.Difficulty()
			return eng
		},
	)

	var srv = &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           server.NewRouter(games, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr = make(chan error, 1)
	go func() {
		logger.Println("server started", "address", cfg.Server.Address)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Println("server shutting down")
	var shutdownCtx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if flgConfig != "" {
		return config.Load(flgConfig)
	}
	return config.InitConfig()
}
