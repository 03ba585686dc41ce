package minimax

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.First
	o = entity.Second
	e = entity.None
)

func apply(t *testing.T, board entity.Board, move entity.Move) entity.Board {
	t.Helper()

	next, err := tictactoe.ApplyMove(board, move)
	require.NoError(t, err)

	return next
}

func TestBestMove_Terminal(t *testing.T) {
	t.Run("Won board has no move", func(t *testing.T) {
		// Given: X already owns the top row
		board := entity.Board{{x, x, x}, {o, o, e}, {e, e, e}}

		// When: asking for the best move
		_, ok := BestMove(board)

		// Then: there is nothing to play
		assert.False(t, ok)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}

		_, ok := BestMove(board)
		assert.False(t, ok)

		_, ok = BestMoveParallel(board)
		assert.False(t, ok)

		value, move := Evaluate(board)
		assert.Equal(t, 0, value)
		assert.Nil(t, move)
	})
}

func TestBestMove_EmptyBoard(t *testing.T) {
	// When: searching the empty board
	move, ok := BestMove(tictactoe.InitialState())

	// Then: perfect play is a draw and the first drawing move is kept
	require.True(t, ok)
	assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	assert.Equal(t, 0, Value(tictactoe.InitialState()))
}

func TestBestMove_Tactics(t *testing.T) {
	t.Run("Completes the row", func(t *testing.T) {
		// Given: X to move with two in the bottom row while O threatens the middle row
		board := entity.Board{{e, e, e}, {o, o, e}, {x, x, e}}
		require.Equal(t, x, tictactoe.CurrentPlayer(board))

		// When: asking for the best move
		move, ok := BestMove(board)

		// Then: X wins at once
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
		assert.Equal(t, 1, Value(board))
	})

	t.Run("Blocks the row", func(t *testing.T) {
		// Given: O to move while X has two in the top row
		board := entity.Board{{x, x, e}, {o, e, e}, {e, e, e}}
		require.Equal(t, o, tictactoe.CurrentPlayer(board))

		// When: asking for the best move
		move, ok := BestMove(board)

		// Then: O takes the last cell of the row
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Keeps the first forced win", func(t *testing.T) {
		// Given: O to move with an open middle column
		board := entity.Board{{x, o, x}, {e, o, e}, {x, e, e}}

		// When: evaluating the board
		value, move := Evaluate(board)

		// Then: blocking at (1,0) forks and wins too, and it comes first in scan order
		require.NotNil(t, move)
		assert.Equal(t, -1, value)
		assert.Equal(t, entity.Move{Row: 1, Col: 0}, *move)
	})
}

func TestBestMove_SelfPlayDraws(t *testing.T) {
	// Given: both sides play BestMove from the empty board
	board := tictactoe.InitialState()

	for !tictactoe.IsTerminal(board) {
		move, ok := BestMove(board)
		require.True(t, ok)
		board = apply(t, board, move)
	}

	// Then: the game is drawn
	assert.Equal(t, entity.None, tictactoe.Winner(board))
	assert.Equal(t, 0, tictactoe.Utility(board))
}

func TestBestMove_PreservesValue(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive check over every reachable board")
	}

	seen := map[entity.Board]struct{}{}
	var walk func(board entity.Board)
	walk = func(board entity.Board) {
		if _, ok := seen[board]; ok || tictactoe.IsTerminal(board) {
			return
		}
		seen[board] = struct{}{}

		// An optimal move never gives the opponent a better outcome than the position holds.
		move, ok := BestMove(board)
		require.True(t, ok)
		require.Equal(t, Value(board), Value(apply(t, board, move)), board.String())

		for _, next := range tictactoe.LegalMoves(board) {
			walk(apply(t, board, next))
		}
	}
	walk(tictactoe.InitialState())

	// 4520 of the 5478 legal positions are still in play.
	assert.Len(t, seen, 4520)
}

func TestBestMoveParallel_MatchesBestMove(t *testing.T) {
	boards := []entity.Board{
		tictactoe.InitialState(),
		{{e, e, e}, {e, x, e}, {e, e, e}},
		{{x, e, e}, {e, o, e}, {e, e, x}},
		{{x, x, e}, {o, e, e}, {e, e, e}},
		{{e, e, e}, {o, o, e}, {x, x, e}},
	}

	for _, board := range boards {
		want, wantOK := BestMove(board)
		got, gotOK := BestMoveParallel(board)

		require.Equal(t, wantOK, gotOK, board.String())
		require.Equal(t, want, got, board.String())
	}
}
