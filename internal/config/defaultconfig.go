package config

import (
	"runtime"

	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

func DefaultConfig() Config {
	var tiers = engine.DefaultTiers()
	return Config{
		Engine: EngineConfig{
			Eval:           "pst",
			DifficultyName: engine.Medium.String(),
			Tiers: TierConfig{
				Easy:   tiers[engine.Easy],
				Medium: tiers[engine.Medium],
				Hard:   tiers[engine.Hard],
			},
		},
		Server: ServerConfig{
			Address: ":8080",
		},
		Arena: ArenaConfig{
			Concurrency: runtime.NumCPU(),
			MaxPlies:    300,
		},
	}
}
