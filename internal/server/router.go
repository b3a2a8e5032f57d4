package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tddfan/brainquest-sub000/internal/server/game"
)

func NewRouter(games *game.Manager, logger *log.Logger) http.Handler {
	var h = &Handler{games: games, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", h.handleNewGame)
		r.Get("/{id}", h.handleState)
		r.Post("/{id}/moves", h.handlePlay)
		r.Get("/{id}/ws", h.handleWS)
	})
	r.Post("/api/ai_move", h.handleAiMove)
	return r
}
