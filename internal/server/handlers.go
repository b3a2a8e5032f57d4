package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tddfan/brainquest-sub000/internal/server/game"
	"github.com/tddfan/brainquest-sub000/pkg/common"
	"github.com/tddfan/brainquest-sub000/pkg/engine"
)

const initialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Handler struct {
	games  *game.Manager
	logger *log.Logger
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	var fen = strings.TrimSpace(req.Fen)
	if fen == "" {
		fen = initialPositionFen
	}
	var difficulty, ok = parseDifficulty(req.Difficulty)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown difficulty")
		return
	}
	var human = common.White
	if req.HumanColor != "" {
		if human, ok = common.ParseColor(req.HumanColor); !ok {
			writeError(w, http.StatusBadRequest, "unknown color")
			return
		}
	}
	var g, err = h.games.NewGame(fen, difficulty, human)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, stateToResponse(g.State()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var g, err = h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(g.State()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var g, err = h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	state, err := g.Play(req.Move)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(state))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	var difficulty, ok = parseDifficulty(req.Difficulty)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown difficulty")
		return
	}
	var info, pos, err = h.games.Analyze(req.Fen, difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var resp = AiMoveResponse{
		Score:  info.Score,
		Depth:  info.Depth,
		Nodes:  info.Nodes,
		Random: info.Random,
		Status: game.Status(pos),
		TimeMs: info.Time.Milliseconds(),
	}
	if info.Move != nil {
		var move = info.Move.String()
		resp.BestMove = &move
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseDifficulty(s string) (engine.Difficulty, bool) {
	if s == "" {
		return engine.Medium, true
	}
	return engine.ParseDifficulty(s)
}

func (h *Handler) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrIllegalMove):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrGameOver):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Println("game error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
