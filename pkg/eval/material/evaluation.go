package material

import (
	. "github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/eval"
)

// EvaluationService counts material only. Useful as a weak sparring
// evaluator in the arena.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p Position, depth int) int {
	if score, ok := eval.Terminal(p, depth); ok {
		return score
	}
	var score int
	for sq := 0; sq < 64; sq++ {
		var piece, ok = p.PieceAt(sq)
		if !ok || piece.Kind == King {
			continue
		}
		if piece.Color == White {
			score += eval.PieceValue(piece.Kind)
		} else {
			score -= eval.PieceValue(piece.Kind)
		}
	}
	return score
}
