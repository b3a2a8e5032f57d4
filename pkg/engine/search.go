package engine

import (
	"fmt"

	. "github.com/tddfan/brainquest-sub000/pkg/common"
)

// alphaBeta returns the minimax value of p from White's point of view,
// searching depth plies. p is restored before return, also on error.
func (e *Engine) alphaBeta(p Position, depth, alpha, beta int, maximizing bool) (int, error) {
	e.nodes++
	if depth <= 0 || p.IsGameOver() {
		return e.evaluator.Evaluate(p, depth), nil
	}
	var moves = p.LegalMoves()
	if len(moves) == 0 {
		return e.evaluator.Evaluate(p, depth), nil
	}

	var best = valueInfinity
	if maximizing {
		best = -valueInfinity
	}
	for _, move := range moves {
		if err := p.MakeMove(move); err != nil {
			return 0, fmt.Errorf("make move %v: %w", move, err)
		}
		var score, err = e.alphaBeta(p, depth-1, alpha, beta, !maximizing)
		p.UnmakeMove()
		if err != nil {
			return 0, err
		}
		if maximizing {
			best = Max(best, score)
			alpha = Max(alpha, best)
		} else {
			best = Min(best, score)
			beta = Min(beta, best)
		}
		if beta <= alpha {
			break
		}
	}
	return best, nil
}
