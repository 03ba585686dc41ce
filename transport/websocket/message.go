package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	actionGameNew  = "game:new"
	actionGameGet  = "game:get"
	actionGameTurn = "game:turn"
	actionGameHint = "game:hint"
	actionEvaluate = "evaluate"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the arguments of every action; each handler reads the fields it needs.
type RequestPayload struct {
	GameID string        `json:"game_id,omitempty"`
	Mark   entity.Mark   `json:"mark,omitempty"`
	Move   *entity.Move  `json:"move,omitempty"`
	Board  *entity.Board `json:"board,omitempty"`
}

type ResponsePayload struct {
	Game       *entity.Game       `json:"game,omitempty"`
	Move       *entity.Move       `json:"move,omitempty"`
	Evaluation *entity.Evaluation `json:"evaluation,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action string, cause error) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: cause.Error()})
}
