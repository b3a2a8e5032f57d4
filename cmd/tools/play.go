package main

import (
	"fmt"
	"os"

	"github.com/tddfan/brainquest-sub000/internal/config"
	"github.com/tddfan/brainquest-sub000/internal/utils"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/rules/dragontooth"
)

func playHandler(cfg *config.Config, fen, evalName, difficultyName string) error {
	var difficulty, ok = engine.ParseDifficulty(difficultyName)
	if !ok {
		return fmt.Errorf("bad difficulty %v", difficultyName)
	}
	var p, err = dragontooth.NewPosition(fen)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg, evalName)
	if err != nil {
		return err
	}
	return utils.PlayCli(os.Stdin, os.Stdout, eng, difficulty, p)
}
