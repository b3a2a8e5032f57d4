package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

const (
	StatusOngoing   = "ongoing"
	StatusCheckmate = "checkmate"
	StatusStalemate = "stalemate"
	StatusDraw      = "draw"
)

type Game struct {
	ID         string
	Difficulty engine.Difficulty
	Human      common.Color
	CreatedAt  time.Time
	UpdatedAt  time.Time

	mu        sync.Mutex
	pos       Position
	engine    *engine.Engine
	moves     []string
	lastReply *Reply
}

type Reply struct {
	Move  string
	Score int
	Depth int
	Nodes int64
}

type State struct {
	ID         string
	Fen        string
	ToMove     common.Color
	LegalMoves []string
	Status     string
	Moves      []string
	Difficulty engine.Difficulty
	Human      common.Color
	LastReply  *Reply
}

func Status(p common.Position) string {
	switch {
	case p.IsCheckmate():
		return StatusCheckmate
	case p.IsStalemate():
		return StatusStalemate
	case p.IsDraw():
		return StatusDraw
	}
	return StatusOngoing
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// Play applies the human move and the engine reply.
func (g *Game) Play(move string) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pos.IsGameOver() {
		return State{}, common.ErrGameOver
	}
	if g.pos.SideToMove() != g.Human {
		return State{}, fmt.Errorf("%w: not your turn", common.ErrIllegalMove)
	}
	var m, err = common.FindMove(g.pos, move)
	if err != nil {
		return State{}, err
	}
	if err := g.pos.MakeMove(m); err != nil {
		return State{}, err
	}
	g.moves = append(g.moves, m.String())
	g.lastReply = nil
	g.UpdatedAt = time.Now()

	if !g.pos.IsGameOver() {
		if err := g.replyLocked(); err != nil {
			return State{}, err
		}
	}
	return g.stateLocked(), nil
}

func (g *Game) replyLocked() error {
	var info, err = g.engine.Analyze(g.pos, g.Difficulty)
	if err != nil {
		return err
	}
	if info.Move == nil {
		return nil
	}
	if err := g.pos.MakeMove(info.Move); err != nil {
		return err
	}
	g.moves = append(g.moves, info.Move.String())
	g.lastReply = &Reply{
		Move:  info.Move.String(),
		Score: info.Score,
		Depth: info.Depth,
		Nodes: info.Nodes,
	}
	g.UpdatedAt = time.Now()
	return nil
}

func (g *Game) stateLocked() State {
	var legal = g.pos.LegalMoves()
	var moves = make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}
	return State{
		ID:         g.ID,
		Fen:        g.pos.Fen(),
		ToMove:     g.pos.SideToMove(),
		LegalMoves: moves,
		Status:     Status(g.pos),
		Moves:      append([]string(nil), g.moves...),
		Difficulty: g.Difficulty,
		Human:      g.Human,
		LastReply:  g.lastReply,
	}
}
