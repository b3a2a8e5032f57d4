package engine

import (
	. "github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/eval"
)

const (
	valueInfinity = 1 << 30
)

// MateIn converts a score to a signed distance to mate in full moves,
// counted from the root where the remaining depth was rootDepth.
// ok is false for ordinary scores.
func MateIn(score, rootDepth int) (moves int, ok bool) {
	if !eval.IsMateScore(score) {
		return 0, false
	}
	var plies = rootDepth - (Abs(score) - eval.Mate) + 1
	moves = (plies + 1) / 2
	if score < 0 {
		moves = -moves
	}
	return moves, true
}
