// Package notnil adapts github.com/notnil/chess to the Position interface.
// Every move produces a new immutable position; undo pops the stack.
package notnil

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"github.com/tddfan/brainquest-sub000/pkg/common"
)

type Position struct {
	stack []*chess.Position
	keys  []string
	moves []common.Move
}

func NewPosition(fen string) (*Position, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return FromChess(chess.NewGame(opt).Position()), nil
}

// FromChess wraps a position taken from a chess.Game. Positions decoded
// by hand lack the check flag and must not be used here.
func FromChess(pos *chess.Position) *Position {
	return &Position{
		stack: []*chess.Position{pos},
		keys:  []string{repetitionKey(pos)},
	}
}

func (p *Position) current() *chess.Position {
	return p.stack[len(p.stack)-1]
}

// Chess returns the underlying position.
func (p *Position) Chess() *chess.Position {
	return p.current()
}

func (p *Position) LegalMoves() []common.Move {
	if p.moves == nil {
		var moves = p.current().ValidMoves()
		p.moves = make([]common.Move, len(moves))
		for i, m := range moves {
			p.moves[i] = m
		}
	}
	return p.moves
}

func (p *Position) MakeMove(m common.Move) error {
	var move, ok = m.(*chess.Move)
	if !ok || !p.isLegal(move) {
		return fmt.Errorf("%w: %v", common.ErrIllegalMove, m)
	}
	var next = p.current().Update(move)
	p.stack = append(p.stack, next)
	p.keys = append(p.keys, repetitionKey(next))
	p.moves = nil
	return nil
}

func (p *Position) isLegal(move *chess.Move) bool {
	for _, m := range p.LegalMoves() {
		var legal = m.(*chess.Move)
		if legal.S1() == move.S1() && legal.S2() == move.S2() && legal.Promo() == move.Promo() {
			return true
		}
	}
	return false
}

func (p *Position) UnmakeMove() {
	if len(p.stack) <= 1 {
		return
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.keys = p.keys[:len(p.keys)-1]
	p.moves = nil
}

func (p *Position) SideToMove() common.Color {
	if p.current().Turn() == chess.Black {
		return common.Black
	}
	return common.White
}

func (p *Position) IsCheckmate() bool {
	return p.current().Status() == chess.Checkmate
}

func (p *Position) IsStalemate() bool {
	return p.current().Status() == chess.Stalemate
}

func (p *Position) IsDraw() bool {
	return p.current().HalfMoveClock() >= 100 ||
		p.repetitions() >= 3 ||
		insufficientMaterial(p.current().Board())
}

func (p *Position) IsGameOver() bool {
	return len(p.LegalMoves()) == 0 || p.IsDraw()
}

func (p *Position) PieceAt(sq int) (common.Piece, bool) {
	if sq < 0 || sq >= 64 {
		return common.Piece{}, false
	}
	var piece = p.current().Board().Piece(chess.Square(sq))
	if piece == chess.NoPiece {
		return common.Piece{}, false
	}
	var color = common.White
	if piece.Color() == chess.Black {
		color = common.Black
	}
	return common.Piece{Kind: pieceKind(piece.Type()), Color: color}, true
}

func (p *Position) Fen() string {
	return p.current().String()
}

func (p *Position) repetitions() int {
	var key = p.keys[len(p.keys)-1]
	var count = 0
	for _, k := range p.keys {
		if k == key {
			count++
		}
	}
	return count
}

// repetitionKey is the FEN without the move clocks.
func repetitionKey(pos *chess.Position) string {
	var fields = strings.Fields(pos.String())
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func pieceKind(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return common.Pawn
	case chess.Knight:
		return common.Knight
	case chess.Bishop:
		return common.Bishop
	case chess.Rook:
		return common.Rook
	case chess.Queen:
		return common.Queen
	case chess.King:
		return common.King
	}
	return common.Empty
}

func insufficientMaterial(b *chess.Board) bool {
	var minors int
	var bishopColors [2]int
	for sq, piece := range b.SquareMap() {
		switch piece.Type() {
		case chess.King:
		case chess.Knight:
			minors++
			bishopColors[0], bishopColors[1] = 1, 1
		case chess.Bishop:
			minors++
			bishopColors[(int(sq.File())+int(sq.Rank()))%2] = 1
		default:
			return false
		}
	}
	return minors <= 1 || bishopColors[0]+bishopColors[1] == 1
}
