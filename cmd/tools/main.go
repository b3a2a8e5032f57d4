package main

import (
	"log"
	"os"

	"github.com/tddfan/brainquest-sub000/internal/config"
	"github.com/tddfan/brainquest-sub000/internal/evalbuilder"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/rules/dragontooth"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = run(os.Args)
	if err != nil {
		logger.Fatal(err)
	}
}

func run(args []string) error {
	var cli = NewCommandArgs(args)
	var cfg, err = loadConfig(cli.GetString("config", ""))
	if err != nil {
		return err
	}
	var evalName = cli.GetString("eval", cfg.Engine.Eval)

	var handler = NewCommandHandler()
	handler.Add("arena", func() error {
		var settings = arenaSettings{
			evalName:    evalName,
			difficultyA: cli.GetString("a", "hard"),
			difficultyB: cli.GetString("b", "medium"),
			openings:    mapPath(cli.GetString("openings", cfg.Arena.Openings)),
			pgn:         mapPath(cli.GetString("pgn", cfg.Arena.Pgn)),
			concurrency: cli.GetInt("concurrency", cfg.Arena.Concurrency),
			maxPlies:    cli.GetInt("maxplies", cfg.Arena.MaxPlies),
		}
		return arenaHandler(cfg, settings)
	})
	handler.Add("tactic", func() error {
		var path = mapPath(cli.GetString("testpath", "~/chess/tests/tests.epd"))
		var difficulty = cli.GetString("difficulty", cfg.Engine.DifficultyName)
		return tacticHandler(cfg, path, evalName, difficulty)
	})
	handler.Add("play", func() error {
		var fen = cli.GetString("fen", dragontooth.InitialPositionFen)
		var difficulty = cli.GetString("difficulty", cfg.Engine.DifficultyName)
		return playHandler(cfg, fen, evalName, difficulty)
	})
	return handler.Execute(cli.CommandName())
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(mapPath(path))
	}
	return config.InitConfig()
}

func newEngine(cfg *config.Config, evalName string) (*engine.Engine, error) {
	var newEvaluator, err = evalbuilder.Get(evalName)
	if err != nil {
		return nil, err
	}
	var eng = engine.NewEngine(newEvaluator(), cfg.Engine.NewRand())
	eng.Tiers = cfg.Engine.TierMap()
	return eng, nil
}
