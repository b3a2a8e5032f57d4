package main

import (
	"fmt"

	"github.com/tddfan/brainquest-sub000/internal/config"
	"github.com/tddfan/brainquest-sub000/internal/tactic"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

func tacticHandler(cfg *config.Config, filepath, evalName, difficultyName string) error {
	var difficulty, ok = engine.ParseDifficulty(difficultyName)
	if !ok {
		return fmt.Errorf("bad difficulty %v", difficultyName)
	}

	logger.Println("solveTactic started",
		"filepath", filepath,
		"evalName", evalName,
		"difficulty", difficulty)
	defer logger.Println("solveTactic finished")

	var tests, err = tactic.LoadEpd(filepath, logger)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg, evalName)
	if err != nil {
		return err
	}
	result, err := tactic.SolveTactic(tests, eng, difficulty, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Solved %v of %v\n", result.Solved, result.Total)
	return nil
}
