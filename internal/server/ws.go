package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/tddfan/brainquest-sub000/internal/server/game"
)

const wsIdlePingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// handleWS streams game states. The client sends {"type":"move","move":"e2e4"}
// and receives the state after the engine reply.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	var g, err = h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Println("ws upgrade", err)
		return
	}
	var send = make(chan []byte, 16)
	var done = make(chan struct{})
	go func() {
		defer close(done)
		if err := writeWSWithHeartbeat(conn, send); err != nil {
			h.logger.Println("ws write", err)
		}
	}()
	defer func() {
		close(send)
		<-done
		conn.Close()
	}()

	sendState(send, g.State())
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Type {
		case "move":
			var state, err = g.Play(msg.Move)
			if err != nil {
				send <- mustMarshal(wsMessage{Type: "error", Error: err.Error()})
				continue
			}
			sendState(send, state)
		case "state":
			sendState(send, g.State())
		case "pong":
		default:
			send <- mustMarshal(wsMessage{Type: "error", Error: "unknown message type"})
		}
	}
}

func sendState(send chan<- []byte, state game.State) {
	var resp = stateToResponse(state)
	send <- mustMarshal(wsMessage{Type: "state", State: &resp})
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
