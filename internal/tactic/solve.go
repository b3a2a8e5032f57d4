package tactic

import (
	"log"
	"slices"

	"github.com/tddfan/brainquest-sub000/pkg/engine"
	"github.com/tddfan/brainquest-sub000/pkg/rules/dragontooth"
)

type Result struct {
	Solved int
	Total  int
}

// SolveTactic runs every test at the given difficulty and counts the
// positions where the engine picked one of the best moves.
func SolveTactic(tests []EpdItem, eng *engine.Engine, difficulty engine.Difficulty, logger *log.Logger) (Result, error) {
	var result Result
	for i, test := range tests {
		var p, err = dragontooth.NewPosition(test.Fen)
		if err != nil {
			return result, err
		}
		info, err := eng.Analyze(p, difficulty)
		if err != nil {
			return result, err
		}
		result.Total++
		if info.Move != nil && slices.Contains(test.BestMoves, info.Move.String()) {
			result.Solved++
		} else {
			logger.Println("Not solved", test.Content, "engine", info.Move)
		}
		logger.Printf("Test %v of %v: solved %v, nodes %v, time %v\n",
			i+1, len(tests), result.Solved, info.Nodes, info.Time)
	}
	return result, nil
}
