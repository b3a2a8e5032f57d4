package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

// Position is a rules engine position that can report its FEN.
type Position interface {
	common.Position
	Fen() string
}

type PositionBuilder func(fen string) (Position, error)

type Manager struct {
	mu          sync.RWMutex
	games       map[string]*Game
	newPosition PositionBuilder
	newEngine   func() *engine.Engine
}

func NewManager(newPosition PositionBuilder, newEngine func() *engine.Engine) *Manager {
	return &Manager{
		games:       make(map[string]*Game),
		newPosition: newPosition,
		newEngine:   newEngine,
	}
}

// NewGame starts a game from fen. When the human plays the side not to
// move, the engine replies immediately.
func (m *Manager) NewGame(fen string, difficulty engine.Difficulty, human common.Color) (*Game, error) {
	var pos, err = m.newPosition(fen)
	if err != nil {
		return nil, err
	}
	var g = &Game{
		ID:         uuid.NewString(),
		Difficulty: difficulty,
		Human:      human,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		pos:        pos,
		engine:     m.newEngine(),
	}
	if pos.SideToMove() != human && !pos.IsGameOver() {
		if err := g.replyLocked(); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return g, nil
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", common.ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Analyze runs a one-off search on fen with a fresh engine.
func (m *Manager) Analyze(fen string, difficulty engine.Difficulty) (common.SearchInfo, Position, error) {
	var pos, err = m.newPosition(fen)
	if err != nil {
		return common.SearchInfo{}, nil, err
	}
	info, err := m.newEngine().Analyze(pos, difficulty)
	if err != nil {
		return common.SearchInfo{}, nil, err
	}
	return info, pos, nil
}
