package engine

import (
	"fmt"
	"math/rand"
	"time"

	. "github.com/tddfan/brainquest-sub000/pkg/common"
)

type Evaluator interface {
	Evaluate(p Position, depth int) int
}

// Engine picks moves for the computer side. It keeps no state between
// calls except its random source, so one Engine serves a whole game.
// An Engine is not safe for concurrent use.
type Engine struct {
	Tiers      map[Difficulty]Tier
	Difficulty Difficulty
	evaluator  Evaluator
	rand      Rand
	nodes     int64
}

// NewEngine builds an engine with the default tiers. A nil rnd is replaced
// by a time seeded source.
func NewEngine(evaluator Evaluator, rnd Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		Tiers:      DefaultTiers(),
		Difficulty: Medium,
		evaluator:  evaluator,
		rand:       rnd,
	}
}

func (e *Engine) SetRand(rnd Rand) {
	e.rand = rnd
}

func (e *Engine) Tier(d Difficulty) Tier {
	if tier, ok := e.Tiers[d]; ok {
		return tier
	}
	if tier, ok := e.Tiers[Medium]; ok {
		return tier
	}
	return DefaultTiers()[Medium]
}

// Search analyzes p at the engine's own difficulty.
func (e *Engine) Search(p Position) (SearchInfo, error) {
	return e.Analyze(p, e.Difficulty)
}

// SelectMove returns the move to play at the given difficulty, or nil when
// the side to move has no legal moves.
func (e *Engine) SelectMove(p Position, d Difficulty) (Move, error) {
	var info, err = e.Analyze(p, d)
	if err != nil {
		return nil, err
	}
	return info.Move, nil
}

// Analyze is SelectMove with search statistics. Score is from White's
// point of view and is zero when the move was picked at random.
func (e *Engine) Analyze(p Position, d Difficulty) (SearchInfo, error) {
	var start = time.Now()
	var tier = e.Tier(d)
	e.nodes = 0

	var moves = append([]Move(nil), p.LegalMoves()...)
	if len(moves) == 0 {
		return SearchInfo{Depth: tier.Depth, Time: time.Since(start)}, nil
	}
	e.rand.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	if tier.RandomMoveProbability > 0 &&
		e.rand.Float64() < tier.RandomMoveProbability {
		var move = moves[e.rand.Intn(len(moves))]
		return SearchInfo{
			Move:     move,
			Random:   true,
			MainLine: []Move{move},
			Time:     time.Since(start),
		}, nil
	}

	var maximizing = p.SideToMove() == White
	var bestMove Move
	var bestScore int
	for i, move := range moves {
		if err := p.MakeMove(move); err != nil {
			return SearchInfo{}, fmt.Errorf("make move %v: %w", move, err)
		}
		var score, err = e.alphaBeta(p, tier.Depth, -valueInfinity, valueInfinity, !maximizing)
		p.UnmakeMove()
		if err != nil {
			return SearchInfo{}, err
		}
		if i == 0 ||
			maximizing && score > bestScore ||
			!maximizing && score < bestScore {
			bestMove = move
			bestScore = score
		}
	}

	return SearchInfo{
		Move:     bestMove,
		Score:    bestScore,
		Depth:    tier.Depth,
		Nodes:    e.nodes,
		MainLine: []Move{bestMove},
		Time:     time.Since(start),
	}, nil
}
