package eval

import (
	"testing"

	. "github.com/tddfan/brainquest-sub000/pkg/common"
)

type terminalPosition struct {
	side      Color
	checkmate bool
	stalemate bool
	draw      bool
}

func (p *terminalPosition) LegalMoves() []Move           { return nil }
func (p *terminalPosition) MakeMove(m Move) error        { return nil }
func (p *terminalPosition) UnmakeMove()                  {}
func (p *terminalPosition) SideToMove() Color            { return p.side }
func (p *terminalPosition) IsCheckmate() bool            { return p.checkmate }
func (p *terminalPosition) IsStalemate() bool            { return p.stalemate }
func (p *terminalPosition) IsDraw() bool                 { return p.draw }
func (p *terminalPosition) IsGameOver() bool             { return p.checkmate || p.stalemate || p.draw }
func (p *terminalPosition) PieceAt(sq int) (Piece, bool) { return Piece{}, false }

func TestPieceValueOrder(t *testing.T) {
	if !(PieceValue(Pawn) < PieceValue(Knight) &&
		PieceValue(Knight) <= PieceValue(Bishop) &&
		PieceValue(Bishop) < PieceValue(Rook) &&
		PieceValue(Rook) < PieceValue(Queen) &&
		PieceValue(Queen) < PieceValue(King)) {
		t.Error("piece values are not ordered")
	}
	if Abs(PieceValue(Knight)-PieceValue(Bishop)) > PieceValue(Pawn)/2 {
		t.Error("knight and bishop should be close")
	}
	if PieceValue(Empty) != 0 || PieceValue(-1) != 0 || PieceValue(King+1) != 0 {
		t.Error("unknown kinds must be worth nothing")
	}
}

func TestTerminal(t *testing.T) {
	var tests = []struct {
		p     terminalPosition
		depth int
		score int
		ok    bool
	}{
		{terminalPosition{side: White, checkmate: true}, 0, -Mate, true},
		{terminalPosition{side: Black, checkmate: true}, 0, Mate, true},
		{terminalPosition{side: White, checkmate: true}, 3, -Mate - 3, true},
		{terminalPosition{side: Black, checkmate: true}, 2, Mate + 2, true},
		{terminalPosition{side: White, stalemate: true}, 2, 0, true},
		{terminalPosition{side: Black, draw: true}, 1, 0, true},
		{terminalPosition{side: White}, 1, 0, false},
	}
	for i, test := range tests {
		var score, ok = Terminal(&test.p, test.depth)
		if score != test.score || ok != test.ok {
			t.Error(i, score, ok)
		}
	}
}

func TestShallowerMateScoresHigher(t *testing.T) {
	var p = &terminalPosition{side: Black, checkmate: true}
	var prev, _ = Terminal(p, 0)
	for depth := 1; depth <= 4; depth++ {
		var score, _ = Terminal(p, depth)
		if score <= prev {
			t.Error(depth, score, prev)
		}
		prev = score
	}
	if !IsMateScore(prev) || IsMateScore(PieceValue(Queen)*9) {
		t.Error("mate score detection")
	}
}
