package server

import (
	"github.com/tddfan/brainquest-sub000/internal/server/game"
)

type NewGameRequest struct {
	Fen        string `json:"fen"`
	Difficulty string `json:"difficulty"`
	HumanColor string `json:"human_color"`
}

type PlayRequest struct {
	Move string `json:"move"`
}

type AiMoveRequest struct {
	Fen        string `json:"fen"`
	Difficulty string `json:"difficulty"`
}

type GameResponse struct {
	GameID     string   `json:"game_id"`
	Fen        string   `json:"fen"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
	Moves      []string `json:"moves"`
	Difficulty string   `json:"difficulty"`
	HumanColor string   `json:"human_color"`
	AiMove     *string  `json:"ai_move,omitempty"`
	Score      *int     `json:"score,omitempty"`
}

type AiMoveResponse struct {
	BestMove *string `json:"best_move"`
	Score    int     `json:"score"`
	Depth    int     `json:"depth"`
	Nodes    int64   `json:"nodes"`
	Random   bool    `json:"random"`
	Status   string  `json:"status"`
	TimeMs   int64   `json:"time_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type wsMessage struct {
	Type  string        `json:"type"`
	Move  string        `json:"move,omitempty"`
	State *GameResponse `json:"state,omitempty"`
	Error string        `json:"error,omitempty"`
}

func stateToResponse(s game.State) GameResponse {
	var resp = GameResponse{
		GameID:     s.ID,
		Fen:        s.Fen,
		ToMove:     s.ToMove.String(),
		LegalMoves: s.LegalMoves,
		Status:     s.Status,
		Moves:      s.Moves,
		Difficulty: s.Difficulty.String(),
		HumanColor: s.Human.String(),
	}
	if resp.LegalMoves == nil {
		resp.LegalMoves = []string{}
	}
	if resp.Moves == nil {
		resp.Moves = []string{}
	}
	if s.LastReply != nil {
		var move, score = s.LastReply.Move, s.LastReply.Score
		resp.AiMove = &move
		resp.Score = &score
	}
	return resp
}
