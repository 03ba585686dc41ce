package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	bestMove func(entity.Board) (entity.Move, bool)
}

// NewBotService returns a computer player that never loses.
func NewBotService(parallel bool) BotService {
	bestMove := minimax.BestMove
	if parallel {
		bestMove = minimax.BestMoveParallel
	}

	return &botService{
		bestMove: bestMove,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if !game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	move, ok := that.bestMove(game.Board)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(game, game.BotMark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
