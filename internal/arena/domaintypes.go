package arena

import (
	"io"
	"log"

	"github.com/notnil/chess"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

// Player is one side of the match. NewEngine is called once per worker.
type Player struct {
	Name       string
	Difficulty engine.Difficulty
	NewEngine  func() *engine.Engine
}

type Config struct {
	Concurrency int
	MaxPlies    int
	// Openings are FENs; each is played twice with colours reversed.
	Openings []string
	EngineA  Player
	EngineB  Player
	// Pgn receives every finished game when not nil.
	Pgn    io.Writer
	Logger *log.Logger
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	game     *chess.Game
	comment  string
	result   int
}

type Stats struct {
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	Los             float64
}
