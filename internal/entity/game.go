package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a session between a human and the computer player.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	HumanMark Mark   `json:"human_mark"`
	BotMark   Mark   `json:"bot_mark"`
	Turn      Mark   `json:"player_turn"`
	Winner    string `json:"winner"`
	Status    string `json:"status"`
	LastMove  *Move  `json:"last_move,omitempty"`
}

func NewGame(id string, humanMark Mark) (*Game, error) {
	if humanMark != First && humanMark != Second {
		return nil, fmt.Errorf("%w: human must play %s or %s", apperror.ErrInvalidMark, PlayerX, PlayerO)
	}

	return &Game{
		ID:        id,
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		Turn:      First,
		Status:    StatusOngoing,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) IsHumanTurn() bool {
	return that.IsOngoing() && that.Turn == that.HumanMark
}

// ConfirmOngoingState returns an error unless moves can still be made.
func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}
