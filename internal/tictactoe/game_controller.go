package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// MakeTurn places mark on the game board and updates the game status.
func MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if CurrentPlayer(game.Board) != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := ApplyMove(game.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.LastMove = &move
	UpdateGameStatus(game)

	return nil
}

// UpdateGameStatus recomputes turn, status and winner from the board.
func UpdateGameStatus(game *entity.Game) {
	outcome, finished := Result(game.Board)
	if !finished {
		game.Status = entity.StatusOngoing
		game.Winner = ""
		game.Turn = CurrentPlayer(game.Board)
		return
	}

	game.Status = entity.StatusFinished
	game.Winner = outcome.String()
	game.Turn = entity.None
}
