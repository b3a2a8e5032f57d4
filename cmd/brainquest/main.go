package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/tddfan/brainquest-sub000/internal/config"
	"github.com/tddfan/brainquest-sub000/internal/evalbuilder"
	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/rules/dragontooth"
	"github.com/tddfan/brainquest-sub000/pkg/uci"
)

const (
	name   = "BrainQuest"
	author = "BrainQuest team"
)

var (
	versionName   = "dev"
	buildDate     = "(null)"
	gitRevision   = "(null)"
	flgConfig     string
	flgEval       string
	flgDifficulty string
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.StringVar(&flgDifficulty, "difficulty", "", "easy, medium or hard")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	var cfg, err = loadConfig()
	if err != nil {
		logger.Fatal(err)
	}
	if flgEval != "" {
		cfg.Engine.Eval = flgEval
	}
	if flgDifficulty != "" {
		cfg.Engine.DifficultyName = flgDifficulty
	}

	newEvaluator, err := evalbuilder.Get(cfg.Engine.Eval)
	if err != nil {
		logger.Fatal(err)
	}
	var eng = engine.NewEngine(newEvaluator(), cfg.Engine.NewRand())
	eng.Tiers = cfg.Engine.TierMap()
	eng.Difficulty = cfg.Engine.Difficulty()

	var seed = int(cfg.Engine.Seed)
	var protocol = uci.New(name, author, versionName, eng,
		func(fen string) (common.Position, error) {
			return dragontooth.NewPosition(fen)
		},
		[]uci.Option{
			&uci.DifficultyOption{Name: "Difficulty", Value: &eng.Difficulty},
			&uci.IntOption{Name: "Seed", Min: 0, Max: 1<<31 - 1, Value: &seed, Changed: func() {
				var s = int64(seed)
				if s == 0 {
					s = time.Now().UnixNano()
				}
				eng.SetRand(rand.New(rand.NewSource(s)))
			}},
		},
	)
	protocol.Run(logger)
}

func loadConfig() (*config.Config, error) {
	if flgConfig != "" {
		return config.Load(flgConfig)
	}
	return config.InitConfig()
}
