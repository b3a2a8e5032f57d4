package engine

import (
	"errors"
	"fmt"
	"math/rand"

	. "github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/eval"
)

type treeMove string

func (m treeMove) String() string {
	return string(m)
}

type treeNode struct {
	score     int
	checkmate bool
	stalemate bool
	children  []*treeNode
	names     []treeMove
}

func (n *treeNode) add(name string, child *treeNode) *treeNode {
	n.names = append(n.names, treeMove(name))
	n.children = append(n.children, child)
	return n
}

var errTreeMove = errors.New("tree move failed")

// treePosition walks a game tree. Scores stored in nodes are from White's
// point of view.
type treePosition struct {
	root    Color
	path    []*treeNode
	failOn  treeMove
	made    int
	unmade  int
	history []treeMove
}

func newTreePosition(root *treeNode, side Color) *treePosition {
	return &treePosition{root: side, path: []*treeNode{root}}
}

func (p *treePosition) node() *treeNode {
	return p.path[len(p.path)-1]
}

func (p *treePosition) LegalMoves() []Move {
	var result = make([]Move, len(p.node().names))
	for i, name := range p.node().names {
		result[i] = name
	}
	return result
}

func (p *treePosition) MakeMove(m Move) error {
	var name, ok = m.(treeMove)
	if !ok {
		return ErrIllegalMove
	}
	if name == p.failOn {
		return errTreeMove
	}
	for i, n := range p.node().names {
		if n == name {
			p.path = append(p.path, p.node().children[i])
			p.history = append(p.history, name)
			p.made++
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrIllegalMove, m)
}

func (p *treePosition) UnmakeMove() {
	p.path = p.path[:len(p.path)-1]
	p.history = p.history[:len(p.history)-1]
	p.unmade++
}

func (p *treePosition) SideToMove() Color {
	if (len(p.path)-1)%2 == 0 {
		return p.root
	}
	return p.root.Opposite()
}

func (p *treePosition) IsCheckmate() bool { return p.node().checkmate }
func (p *treePosition) IsStalemate() bool { return p.node().stalemate }
func (p *treePosition) IsDraw() bool      { return false }
func (p *treePosition) IsGameOver() bool  { return p.node().checkmate || p.node().stalemate }

func (p *treePosition) PieceAt(sq int) (Piece, bool) {
	return Piece{}, false
}

type treeEvaluator struct{}

func (treeEvaluator) Evaluate(p Position, depth int) int {
	if score, ok := eval.Terminal(p, depth); ok {
		return score
	}
	return p.(*treePosition).node().score
}

func randomTree(rnd *rand.Rand, depth int) *treeNode {
	var n = &treeNode{score: rnd.Intn(401) - 200}
	if depth == 0 {
		return n
	}
	switch rnd.Intn(12) {
	case 0:
		n.checkmate = true
		return n
	case 1:
		n.stalemate = true
		return n
	}
	var count = 1 + rnd.Intn(4)
	for i := 0; i < count; i++ {
		n.add(fmt.Sprintf("m%v", i), randomTree(rnd, depth-1))
	}
	return n
}

// minimax is the unpruned reference search over the same move order.
func minimax(p Position, ev Evaluator, depth int, maximizing bool) int {
	if depth <= 0 || p.IsGameOver() {
		return ev.Evaluate(p, depth)
	}
	var moves = p.LegalMoves()
	if len(moves) == 0 {
		return ev.Evaluate(p, depth)
	}
	var best = valueInfinity
	if maximizing {
		best = -valueInfinity
	}
	for _, m := range moves {
		if err := p.MakeMove(m); err != nil {
			panic(err)
		}
		var score = minimax(p, ev, depth-1, !maximizing)
		p.UnmakeMove()
		if maximizing {
			best = Max(best, score)
		} else {
			best = Min(best, score)
		}
	}
	return best
}

// fixedRand never triggers the random move shortcut and keeps move order.
type fixedRand struct {
	float float64
}

func (r *fixedRand) Float64() float64                   { return r.float }
func (r *fixedRand) Intn(n int) int                     { return 0 }
func (r *fixedRand) Shuffle(n int, swap func(i, j int)) {}
