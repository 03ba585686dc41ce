package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Lines lists every row, column and diagonal, in the order Winner checks them.
var Lines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// InitialState returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// CurrentPlayer returns the mark that moves next, derived from the mark counts.
// The result is meaningless on a terminal board; check IsTerminal first.
func CurrentPlayer(board entity.Board) entity.Mark {
	if board.Count(entity.First) == board.Count(entity.Second) {
		return entity.First
	}

	return entity.Second
}

// LegalMoves returns every empty cell in row-major order.
func LegalMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.Size*entity.Size)
	for i, row := range board {
		for j, cell := range row {
			if cell == entity.None {
				moves = append(moves, entity.Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// ApplyMove returns a new board with the current player's mark placed at move.
// The input board is never modified.
func ApplyMove(board entity.Board, move entity.Move) (entity.Board, error) {
	if !move.InBounds() {
		return board, fmt.Errorf("%w: cell %s is out of bounds", apperror.ErrInvalidMove, move)
	}

	if board.At(move) != entity.None {
		return board, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	return board.With(move, CurrentPlayer(board)), nil
}

// Winner returns the mark that owns a complete line, or None.
func Winner(board entity.Board) entity.Mark {
	for _, line := range Lines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.None && a == b && b == c {
			return a
		}
	}

	return entity.None
}

// IsTerminal reports whether someone has won or the board is full.
func IsTerminal(board entity.Board) bool {
	if Winner(board) != entity.None {
		return true
	}

	return board.Count(entity.None) == 0
}

// Utility scores a terminal board from the first player's point of view.
func Utility(board entity.Board) int {
	switch Winner(board) {
	case entity.First:
		return 1
	case entity.Second:
		return -1
	default:
		return 0
	}
}

// Result returns the outcome of a terminal board. ok is false while the game goes on.
func Result(board entity.Board) (outcome entity.Outcome, ok bool) {
	switch Winner(board) {
	case entity.First:
		return entity.FirstWins, true
	case entity.Second:
		return entity.SecondWins, true
	}

	if board.Count(entity.None) == 0 {
		return entity.Draw, true
	}

	return entity.Draw, false
}
