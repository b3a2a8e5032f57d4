package common

import "time"

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Piece struct {
	Kind  int
	Color Color
}

const pieceNames = " pnbrqk"

func (p Piece) String() string {
	if p.Kind <= Empty || p.Kind > King {
		return "."
	}
	var s = pieceNames[p.Kind : p.Kind+1]
	if p.Color == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

// Move is an opaque token produced by a Position. It is only ever handed
// back to the Position that generated it.
type Move interface {
	String() string
}

// Position is the rules engine port. Implementations mutate in place on
// MakeMove and must restore the exact prior state on UnmakeMove.
// A Position is not safe for concurrent use.
type Position interface {
	LegalMoves() []Move
	MakeMove(m Move) error
	UnmakeMove()
	SideToMove() Color
	IsCheckmate() bool
	IsStalemate() bool
	IsDraw() bool
	IsGameOver() bool
	PieceAt(sq int) (Piece, bool)
}

type SearchInfo struct {
	Move     Move
	Score    int
	Depth    int
	Nodes    int64
	Random   bool
	Time     time.Duration
	MainLine []Move
}
