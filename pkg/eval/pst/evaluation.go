package pst

import (
	. "github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/eval"
)

// EvaluationService scores a position as material plus piece-square bonus,
// positive when White stands better.
type EvaluationService struct {
	tables map[int]*[64]int
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{
		tables: defaultTables(),
	}
}

func (e *EvaluationService) Evaluate(p Position, depth int) int {
	if score, ok := eval.Terminal(p, depth); ok {
		return score
	}
	var score int
	for sq := 0; sq < 64; sq++ {
		var piece, ok = p.PieceAt(sq)
		if !ok || piece.Kind == Empty {
			continue
		}
		var term = eval.PieceValue(piece.Kind) + e.PositionalBonus(piece.Kind, sq, piece.Color)
		if piece.Color == White {
			score += term
		} else {
			score -= term
		}
	}
	return score
}

func (e *EvaluationService) PositionalBonus(kind, sq int, color Color) int {
	var table, ok = e.tables[kind]
	if !ok {
		return 0
	}
	return table[tableIndex(sq, color)]
}

func tableIndex(sq int, color Color) int {
	var index = FlipSquare(sq)
	if color == Black {
		index = MirrorSquare(index)
	}
	return index
}
