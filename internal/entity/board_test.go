package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMark(t *testing.T) {
	t.Run("Parses wire symbols", func(t *testing.T) {
		// When: parsing each known symbol
		x, errX := ParseMark("X")
		o, errO := ParseMark("o")
		empty, errEmpty := ParseMark("")

		// Then: each maps to its mark
		require.NoError(t, errX)
		require.NoError(t, errO)
		require.NoError(t, errEmpty)
		assert.Equal(t, First, x)
		assert.Equal(t, Second, o)
		assert.Equal(t, None, empty)
	})

	t.Run("Rejects unknown symbol", func(t *testing.T) {
		// When: parsing an unknown symbol
		_, err := ParseMark("Z")

		// Then: ErrInvalidMark is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, Second, First.Opponent())
	assert.Equal(t, First, Second.Opponent())
	assert.Equal(t, None, None.Opponent())
}

func TestBoard_With(t *testing.T) {
	// Given: an empty board
	var board Board

	// When: setting a cell through With
	next := board.With(Move{Row: 1, Col: 2}, First)

	// Then: only the copy changes
	assert.Equal(t, None, board.At(Move{Row: 1, Col: 2}))
	assert.Equal(t, First, next.At(Move{Row: 1, Col: 2}))
	assert.Equal(t, 1, next.Count(First))
	assert.Equal(t, 8, next.Count(None))
}

func TestBoard_ParseAndStrings(t *testing.T) {
	t.Run("Parses a board and renders it back", func(t *testing.T) {
		// Given: wire cells
		cells := [Size][Size]string{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerO},
		}

		// When: parsing the cells
		board, err := ParseBoard(cells)

		// Then: the board holds the marks and renders the same symbols
		require.NoError(t, err)
		assert.Equal(t, First, board[0][0])
		assert.Equal(t, Second, board[2][2])
		assert.Equal(t, cells, board.Strings())
		assert.Equal(t, "X|O| \n |X| \n | |O", board.String())
	})

	t.Run("Reports the bad cell", func(t *testing.T) {
		// Given: wire cells with an unknown symbol
		cells := [Size][Size]string{{"?"}}

		// When: parsing the cells
		_, err := ParseBoard(cells)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Contains(t, err.Error(), "cell 0,0")
	})
}

func TestBoard_JSON(t *testing.T) {
	// Given: a board with both marks
	board := Board{}.With(Move{Row: 0, Col: 0}, First).With(Move{Row: 2, Col: 1}, Second)

	// When: encoding it
	data, err := json.Marshal(board)
	require.NoError(t, err)

	// Then: cells are encoded as symbols and decode to the same board
	assert.JSONEq(t, `[["X","",""],["","",""],["","O",""]]`, string(data))

	var decoded Board
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, board, decoded)
}

func TestOutcome_Utility(t *testing.T) {
	assert.Equal(t, 1, FirstWins.Utility())
	assert.Equal(t, -1, SecondWins.Utility())
	assert.Equal(t, 0, Draw.Utility())
	assert.Equal(t, PlayerTie, Draw.String())
}

func TestNewGame(t *testing.T) {
	t.Run("Human plays second", func(t *testing.T) {
		// When: creating a game where the human plays O
		game, err := NewGame("123", Second)
		require.NoError(t, err)

		// Then: the bot plays X and moves first
		expectedGame := &Game{
			ID:        "123",
			HumanMark: Second,
			BotMark:   First,
			Turn:      First,
			Status:    StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsBotTurn())
		assert.False(t, game.IsHumanTurn())
	})

	t.Run("Rejects empty mark", func(t *testing.T) {
		// When: creating a game with no human mark
		_, err := NewGame("123", None)

		// Then: ErrInvalidMark is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})
}
