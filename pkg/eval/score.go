package eval

import (
	. "github.com/tddfan/brainquest-sub000/pkg/common"
)

// Mate is the base magnitude of a checkmate score. The remaining search
// depth is added on top so that shallower mates score higher.
const Mate = 50000

var pieceValues = [King + 1]int{
	Empty:  0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

func PieceValue(kind int) int {
	if kind < Empty || kind > King {
		return 0
	}
	return pieceValues[kind]
}

// Terminal scores checkmate, stalemate and draws from White's point of view.
// ok is false when the game is not over.
func Terminal(p Position, depth int) (score int, ok bool) {
	if p.IsCheckmate() {
		score = Mate + depth
		if p.SideToMove() == White {
			score = -score
		}
		return score, true
	}
	if p.IsStalemate() || p.IsDraw() {
		return 0, true
	}
	return 0, false
}

func IsMateScore(score int) bool {
	return Abs(score) >= Mate
}
