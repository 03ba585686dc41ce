package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

// Mark is the value of a single cell.
type Mark uint8

const (
	None Mark = iota
	First
	Second
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// ParseMark converts a wire symbol into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case EmptyCell:
		return None, nil
	case PlayerX:
		return First, nil
	case PlayerO:
		return Second, nil
	default:
		return None, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

func (that Mark) String() string {
	switch that {
	case First:
		return PlayerX
	case Second:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Opponent returns the other player's mark. None has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// Move identifies a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a 3x3 grid of marks. It is a value: assigning or passing it copies the cells.
type Board [Size][Size]Mark

// At returns the mark in the cell addressed by move. The move must be in bounds.
func (that Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

// With returns a copy of the board with the given cell set to mark.
func (that Board) With(move Move, mark Mark) Board {
	that[move.Row][move.Col] = mark
	return that
}

// Count returns how many cells hold mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// Strings returns the board as wire symbols.
func (that Board) Strings() [Size][Size]string {
	var out [Size][Size]string
	for i, row := range that {
		for j, cell := range row {
			out[i][j] = cell.String()
		}
	}

	return out
}

// ParseBoard converts wire symbols into a Board.
func ParseBoard(cells [Size][Size]string) (Board, error) {
	var board Board
	for i, row := range cells {
		for j, cell := range row {
			mark, err := ParseMark(cell)
			if err != nil {
				return Board{}, fmt.Errorf("cell %d,%d: %w", i, j, err)
			}
			board[i][j] = mark
		}
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}
			if cell == None {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

// Outcome is the result of a finished game.
type Outcome uint8

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

// Utility maps the outcome to a score from the first player's point of view.
func (that Outcome) Utility() int {
	switch that {
	case FirstWins:
		return 1
	case SecondWins:
		return -1
	default:
		return 0
	}
}

func (that Outcome) String() string {
	switch that {
	case FirstWins:
		return PlayerX
	case SecondWins:
		return PlayerO
	default:
		return PlayerTie
	}
}

// Evaluation describes a position under perfect play.
type Evaluation struct {
	Board    Board `json:"board"`
	Player   Mark  `json:"player"`
	Terminal bool  `json:"terminal"`
	Winner   Mark  `json:"winner"`
	Value    int   `json:"value"`
	BestMove *Move `json:"best_move"`
}
