package pst

import (
	"math/rand"
	"testing"

	. "github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/eval"
)

type board struct {
	squares   map[int]Piece
	side      Color
	checkmate bool
	stalemate bool
	draw      bool
}

func (b *board) LegalMoves() []Move    { return nil }
func (b *board) MakeMove(m Move) error { return nil }
func (b *board) UnmakeMove()           {}
func (b *board) SideToMove() Color     { return b.side }
func (b *board) IsCheckmate() bool     { return b.checkmate }
func (b *board) IsStalemate() bool     { return b.stalemate }
func (b *board) IsDraw() bool          { return b.draw }
func (b *board) IsGameOver() bool      { return b.checkmate || b.stalemate || b.draw }

func (b *board) PieceAt(sq int) (Piece, bool) {
	var piece, ok = b.squares[sq]
	return piece, ok
}

func (b *board) mirror() *board {
	var result = &board{
		squares:   make(map[int]Piece, len(b.squares)),
		side:      b.side.Opposite(),
		checkmate: b.checkmate,
		stalemate: b.stalemate,
		draw:      b.draw,
	}
	for sq, piece := range b.squares {
		result.squares[MirrorSquare(sq)] = Piece{Kind: piece.Kind, Color: piece.Color.Opposite()}
	}
	return result
}

func randomBoard(rnd *rand.Rand) *board {
	var b = &board{squares: make(map[int]Piece)}
	b.squares[rnd.Intn(64)] = Piece{Kind: King, Color: White}
	for {
		var sq = rnd.Intn(64)
		if _, found := b.squares[sq]; !found {
			b.squares[sq] = Piece{Kind: King, Color: Black}
			break
		}
	}
	var count = rnd.Intn(20)
	for i := 0; i < count; i++ {
		var sq = rnd.Intn(64)
		if _, found := b.squares[sq]; found {
			continue
		}
		b.squares[sq] = Piece{
			Kind:  Pawn + rnd.Intn(Queen),
			Color: Color(rnd.Intn(2)),
		}
	}
	if rnd.Intn(2) == 1 {
		b.side = Black
	}
	return b
}

func TestEvaluationSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	var rnd = rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		var b = randomBoard(rnd)
		var score = e.Evaluate(b, 0)
		var mirrorScore = e.Evaluate(b.mirror(), 0)
		if score != -mirrorScore {
			t.Error(i, score, mirrorScore)
		}
	}
}

func TestTerminalScores(t *testing.T) {
	var e = NewEvaluationService()
	var rnd = rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		var b = randomBoard(rnd)
		b.draw = true
		if score := e.Evaluate(b, 2); score != 0 {
			t.Error("draw", i, score)
		}
		b.draw = false
		b.stalemate = true
		if score := e.Evaluate(b, 1); score != 0 {
			t.Error("stalemate", i, score)
		}
		b.stalemate = false
		b.checkmate = true
		var depth = rnd.Intn(4)
		var score = e.Evaluate(b, depth)
		var mirrorScore = e.Evaluate(b.mirror(), depth)
		if score != -mirrorScore || Abs(score) != eval.Mate+depth {
			t.Error("checkmate", i, score, mirrorScore)
		}
		if (b.side == White) != (score < 0) {
			t.Error("mated side", i, b.side, score)
		}
	}
}

func TestStartPositionIsBalanced(t *testing.T) {
	var b = &board{squares: make(map[int]Piece)}
	var back = []int{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range back {
		b.squares[MakeSquare(file, 0)] = Piece{Kind: kind, Color: White}
		b.squares[MakeSquare(file, 1)] = Piece{Kind: Pawn, Color: White}
		b.squares[MakeSquare(file, 6)] = Piece{Kind: Pawn, Color: Black}
		b.squares[MakeSquare(file, 7)] = Piece{Kind: kind, Color: Black}
	}
	var e = NewEvaluationService()
	if score := e.Evaluate(b, 0); score != 0 {
		t.Error(score)
	}
}

func TestPositionalBonus(t *testing.T) {
	var e = NewEvaluationService()
	var tests = []struct {
		kind   int
		square string
		color  Color
		bonus  int
	}{
		{Pawn, "a7", White, 50},
		{Pawn, "h2", Black, 50},
		{Pawn, "d2", White, -20},
		{Pawn, "e7", Black, -20},
		{Knight, "a1", White, -50},
		{Knight, "h8", Black, -50},
		{Knight, "d4", White, 20},
		{King, "g1", White, 30},
		{King, "b8", Black, 30},
		{Rook, "d1", White, 5},
		{Rook, "e8", Black, 5},
		{Queen, "a4", White, 0},
		{Queen, "h5", Black, 0},
		{Queen, "h4", White, -5},
	}
	for _, test := range tests {
		var bonus = e.PositionalBonus(test.kind, ParseSquare(test.square), test.color)
		if bonus != test.bonus {
			t.Error(test, bonus)
		}
	}
}

func TestTableIndexMirror(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		var white = tableIndex(sq, White)
		var black = tableIndex(sq, Black)
		if white+black != 63 {
			t.Error(SquareName(sq), white, black)
		}
	}
	if tableIndex(ParseSquare("a8"), White) != 0 || tableIndex(ParseSquare("h1"), White) != 63 {
		t.Error("white orientation")
	}
	if tableIndex(ParseSquare("h1"), Black) != 0 || tableIndex(ParseSquare("a8"), Black) != 63 {
		t.Error("black orientation")
	}
}

func TestMissingTable(t *testing.T) {
	var e = NewEvaluationService()
	delete(e.tables, Knight)
	if bonus := e.PositionalBonus(Knight, ParseSquare("d4"), White); bonus != 0 {
		t.Error(bonus)
	}
	var b = &board{squares: map[int]Piece{
		ParseSquare("e1"): {Kind: King, Color: White},
		ParseSquare("e8"): {Kind: King, Color: Black},
		ParseSquare("a1"): {Kind: Knight, Color: White},
	}}
	var want = eval.PieceValue(Knight) +
		e.PositionalBonus(King, ParseSquare("e1"), White) -
		e.PositionalBonus(King, ParseSquare("e8"), Black)
	if score := e.Evaluate(b, 0); score != want {
		t.Error(score, want)
	}
}
