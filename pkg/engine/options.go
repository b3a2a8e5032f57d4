package engine

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"easy", "medium", "hard"}

func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty accepts a tier name in any case. Unknown names map to
// Medium and ok is false.
func ParseDifficulty(s string) (d Difficulty, ok bool) {
	var name = strings.ToLower(strings.TrimSpace(s))
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), true
		}
	}
	return Medium, false
}

// Tier is the search budget of a difficulty level. Depth is the number of
// plies searched below each candidate move; zero means the position after
// the candidate is evaluated directly.
type Tier struct {
	Depth                 int     `json:"depth"`
	RandomMoveProbability float64 `json:"random_move_probability"`
}

func (t Tier) Validate() error {
	if t.Depth < 0 {
		return fmt.Errorf("negative depth %v", t.Depth)
	}
	if t.RandomMoveProbability < 0 || t.RandomMoveProbability > 1 {
		return fmt.Errorf("random move probability %v out of range", t.RandomMoveProbability)
	}
	return nil
}

func DefaultTiers() map[Difficulty]Tier {
	return map[Difficulty]Tier{
		Easy:   {Depth: 0, RandomMoveProbability: 0.4},
		Medium: {Depth: 2},
		Hard:   {Depth: 3},
	}
}

// Rand is the random source used for move shuffling and the easy tier
// shortcut. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
