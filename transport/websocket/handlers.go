package websocket

import (
	"context"
	"errors"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingGameID = errors.New("game_id is required")
	ErrMissingMove   = errors.New("move is required")
	ErrMissingBoard  = errors.New("board is required")
)

func (that *Server) handleNewGame(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	game, err := that.gameService.CreateGame(ctx, payload.Mark)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, ErrMissingGameID
	}

	game, err := that.gameService.GetGame(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, ErrMissingGameID
	}

	if payload.Move == nil {
		return ResponsePayload{}, ErrMissingMove
	}

	game, err := that.gameService.MakeTurn(ctx, payload.GameID, *payload.Move)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleHint(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, ErrMissingGameID
	}

	move, err := that.gameService.Hint(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Move: &move}, nil
}

func (that *Server) handleEvaluate(_ context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.Board == nil {
		return ResponsePayload{}, ErrMissingBoard
	}

	evaluation, err := that.gameService.Evaluate(*payload.Board)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Evaluation: evaluation}, nil
}
