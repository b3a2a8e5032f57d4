package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tddfan/brainquest-sub000/internal/arena"
	"github.com/tddfan/brainquest-sub000/internal/config"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

type arenaSettings struct {
	evalName    string
	difficultyA string
	difficultyB string
	openings    string
	pgn         string
	concurrency int
	maxPlies    int
}

func arenaHandler(cfg *config.Config, settings arenaSettings) error {
	var playerA, err = newPlayer(cfg, settings.evalName, settings.difficultyA)
	if err != nil {
		return err
	}
	playerB, err := newPlayer(cfg, settings.evalName, settings.difficultyB)
	if err != nil {
		return err
	}

	openings, err := loadOpenings(settings.openings)
	if err != nil {
		return err
	}

	var pgn io.Writer
	if settings.pgn != "" {
		var file, err = os.Create(settings.pgn)
		if err != nil {
			return err
		}
		defer file.Close()
		pgn = file
	}

	stats, err := arena.Run(context.Background(), arena.Config{
		Concurrency: settings.concurrency,
		MaxPlies:    settings.maxPlies,
		Openings:    openings,
		EngineA:     playerA,
		EngineB:     playerB,
		Pgn:         pgn,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%v - %v - %v  [%.3f]  Elo %.1f  LOS %.1f%%\n",
		stats.Wins, stats.Losses, stats.Draws,
		stats.WinningFraction, stats.EloDifference, stats.Los*100)
	return nil
}

func newPlayer(cfg *config.Config, evalName, difficultyName string) (arena.Player, error) {
	var difficulty, ok = engine.ParseDifficulty(difficultyName)
	if !ok {
		return arena.Player{}, fmt.Errorf("bad difficulty %v", difficultyName)
	}
	// fail fast on a bad eval name before any worker starts
	if _, err := newEngine(cfg, evalName); err != nil {
		return arena.Player{}, err
	}
	return arena.Player{
		Name:       evalName,
		Difficulty: difficulty,
		NewEngine: func() *engine.Engine {
			var eng, _ = newEngine(cfg, evalName)
			return eng
		},
	}, nil
}

func loadOpenings(path string) ([]string, error) {
	if path == "" {
		return arena.DefaultOpenings()
	}
	var file, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return arena.ReadOpenings(file)
}
