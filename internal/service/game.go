package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type GameService interface {
	CreateGame(ctx context.Context, humanMark entity.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)

	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Hint(ctx context.Context, id string) (entity.Move, error)

	Evaluate(board entity.Board) (*entity.Evaluation, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo, botService BotService) GameService {
	return &gameService{
		logger:     logger.With("component", "game_service"),
		gameRepo:   gameRepo,
		botService: botService,
	}
}

func (that *gameService) CreateGame(ctx context.Context, humanMark entity.Mark) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game, err := entity.NewGame(gameID, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "humanMark", game.HumanMark.String())

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human move and, unless the game ended, the bot's reply.
func (that *gameService) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, game.HumanMark, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved", "move", game.LastMove.String())
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// Hint suggests the move the bot would play in the human's place.
func (that *gameService) Hint(ctx context.Context, id string) (entity.Move, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return entity.Move{}, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	move, ok := minimax.BestMove(game.Board)
	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	return move, nil
}

// Evaluate scores any reachable board without touching storage.
func (that *gameService) Evaluate(board entity.Board) (*entity.Evaluation, error) {
	if diff := board.Count(entity.First) - board.Count(entity.Second); diff != 0 && diff != 1 {
		return nil, fmt.Errorf("%w: X has %d more marks than O", apperror.ErrInvalidBoard, diff)
	}

	value, move := minimax.Evaluate(board)

	evaluation := &entity.Evaluation{
		Board:    board,
		Terminal: tictactoe.IsTerminal(board),
		Winner:   tictactoe.Winner(board),
		Value:    value,
		BestMove: move,
	}

	if !evaluation.Terminal {
		evaluation.Player = tictactoe.CurrentPlayer(board)
	}

	return evaluation, nil
}
