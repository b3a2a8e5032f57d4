package common

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game over")
)

// FindMove looks a move up by its UCI text among the legal moves of p.
func FindMove(p Position, s string) (Move, error) {
	for _, m := range p.LegalMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrIllegalMove, s)
}

// ApplyMoves plays a list of UCI moves on p. On error the moves already
// applied are kept.
func ApplyMoves(p Position, moves []string) error {
	for _, s := range moves {
		var m, err = FindMove(p, s)
		if err != nil {
			return err
		}
		if err := p.MakeMove(m); err != nil {
			return err
		}
	}
	return nil
}
