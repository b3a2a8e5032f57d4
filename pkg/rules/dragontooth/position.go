// Package dragontooth adapts github.com/dylhunn/dragontoothmg to the
// Position interface. Moves are applied and undone in place.
package dragontooth

import (
	"fmt"
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"github.com/tddfan/brainquest-sub000/pkg/common"
)

const InitialPositionFen = dragontoothmg.Startpos

const darkSquares = uint64(0xAA55AA55AA55AA55)

type Move dragontoothmg.Move

func (m Move) String() string {
	var dm = dragontoothmg.Move(m)
	return dm.String()
}

type Position struct {
	board      dragontoothmg.Board
	undo       []func()
	keys       []uint64
	moves      []common.Move
	movesReady bool
}

// NewPosition parses fen. The FEN is checked first because the move
// generator does not validate its input.
func NewPosition(fen string) (*Position, error) {
	if _, err := chess.FEN(fen); err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	var p = &Position{
		board: dragontoothmg.ParseFen(fen),
	}
	if bits.OnesCount64(p.board.White.Kings) != 1 ||
		bits.OnesCount64(p.board.Black.Kings) != 1 {
		return nil, fmt.Errorf("parse fen %q: each side needs exactly one king", fen)
	}
	p.keys = append(p.keys, p.board.Hash())
	return p, nil
}

func (p *Position) LegalMoves() []common.Move {
	if !p.movesReady {
		var moves = p.board.GenerateLegalMoves()
		p.moves = make([]common.Move, len(moves))
		for i, m := range moves {
			p.moves[i] = Move(m)
		}
		p.movesReady = true
	}
	return p.moves
}

func (p *Position) MakeMove(m common.Move) error {
	var move, ok = m.(Move)
	if !ok || !p.isLegal(move) {
		return fmt.Errorf("%w: %v", common.ErrIllegalMove, m)
	}
	p.undo = append(p.undo, p.board.Apply(dragontoothmg.Move(move)))
	p.keys = append(p.keys, p.board.Hash())
	p.movesReady = false
	return nil
}

func (p *Position) isLegal(move Move) bool {
	for _, m := range p.LegalMoves() {
		if m.(Move) == move {
			return true
		}
	}
	return false
}

func (p *Position) UnmakeMove() {
	var n = len(p.undo)
	if n == 0 {
		return
	}
	p.undo[n-1]()
	p.undo = p.undo[:n-1]
	p.keys = p.keys[:len(p.keys)-1]
	p.movesReady = false
}

func (p *Position) SideToMove() common.Color {
	if p.board.Wtomove {
		return common.White
	}
	return common.Black
}

func (p *Position) IsCheckmate() bool {
	return len(p.LegalMoves()) == 0 && p.board.OurKingInCheck()
}

func (p *Position) IsStalemate() bool {
	return len(p.LegalMoves()) == 0 && !p.board.OurKingInCheck()
}

// IsDraw reports the fifty move rule, threefold repetition and positions
// where neither side can mate.
func (p *Position) IsDraw() bool {
	return p.board.Halfmoveclock >= 100 ||
		p.repetitions() >= 3 ||
		p.insufficientMaterial()
}

func (p *Position) IsGameOver() bool {
	return len(p.LegalMoves()) == 0 || p.IsDraw()
}

func (p *Position) PieceAt(sq int) (common.Piece, bool) {
	if sq < 0 || sq >= 64 {
		return common.Piece{}, false
	}
	var kind, isWhite = dragontoothmg.GetPieceType(uint8(sq), &p.board)
	if kind == dragontoothmg.Nothing {
		return common.Piece{}, false
	}
	var color = common.White
	if !isWhite {
		color = common.Black
	}
	return common.Piece{Kind: kind, Color: color}, true
}

func (p *Position) Fen() string {
	return p.board.ToFen()
}

func (p *Position) Key() uint64 {
	return p.board.Hash()
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

func (p *Position) insufficientMaterial() bool {
	var w, b = &p.board.White, &p.board.Black
	if w.Pawns|b.Pawns|w.Rooks|b.Rooks|w.Queens|b.Queens != 0 {
		return false
	}
	var knights = w.Knights | b.Knights
	var bishops = w.Bishops | b.Bishops
	if bits.OnesCount64(knights|bishops) <= 1 {
		return true
	}
	return knights == 0 && (bishops&darkSquares == 0 || bishops&^darkSquares == 0)
}
