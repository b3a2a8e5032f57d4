package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

var (
	cfgFile = "brainquest/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type TierConfig struct {
	Easy   engine.Tier `json:"easy"`
	Medium engine.Tier `json:"medium"`
	Hard   engine.Tier `json:"hard"`
}

type EngineConfig struct {
	Eval           string     `json:"eval"`
	DifficultyName string     `json:"difficulty"`
	Seed           int64      `json:"seed"`
	Tiers          TierConfig `json:"tiers"`
}

type ServerConfig struct {
	Address string `json:"address"`
}

type ArenaConfig struct {
	Concurrency int    `json:"concurrency"`
	MaxPlies    int    `json:"max_plies"`
	Openings    string `json:"openings"`
	Pgn         string `json:"pgn"`
}

type Config struct {
	Engine EngineConfig `json:"engine"`
	Server ServerConfig `json:"server"`
	Arena  ArenaConfig  `json:"arena"`
}

// InitConfig starts from DefaultConfig and overlays the first config file
// found in the XDG config directories.
func InitConfig() (*Config, error) {
	var absPath, err = xdg.SearchConfigFile(cfgFile)
	if err != nil {
		var config = DefaultConfig()
		return &config, nil
	}
	return Load(absPath)
}

func Load(filePath string) (*Config, error) {
	var config = DefaultConfig()
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, ok := engine.ParseDifficulty(c.Engine.DifficultyName); !ok {
		return &InvalidConfig{fmt.Sprintf("unknown difficulty %q", c.Engine.DifficultyName)}
	}
	for name, tier := range map[string]engine.Tier{
		"easy":   c.Engine.Tiers.Easy,
		"medium": c.Engine.Tiers.Medium,
		"hard":   c.Engine.Tiers.Hard,
	} {
		if err := tier.Validate(); err != nil {
			return &InvalidConfig{fmt.Sprintf("tier %v: %v", name, err)}
		}
	}
	if c.Arena.Concurrency < 1 {
		return &InvalidConfig{"arena concurrency must be positive"}
	}
	if c.Arena.MaxPlies < 1 {
		return &InvalidConfig{"arena max plies must be positive"}
	}
	return nil
}

func (c *Config) Save() error {
	var absPath, err = xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func (c *EngineConfig) Difficulty() engine.Difficulty {
	var d, _ = engine.ParseDifficulty(c.DifficultyName)
	return d
}

func (c *EngineConfig) TierMap() map[engine.Difficulty]engine.Tier {
	return map[engine.Difficulty]engine.Tier{
		engine.Easy:   c.Tiers.Easy,
		engine.Medium: c.Tiers.Medium,
		engine.Hard:   c.Tiers.Hard,
	}
}

// NewRand returns a source seeded with Seed, or with the clock when Seed is 0.
func (c *EngineConfig) NewRand() *rand.Rand {
	var seed = c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse %v: %w", filePath, err)
	}
	return nil
}
