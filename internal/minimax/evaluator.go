// Package minimax picks optimal moves by searching the whole game tree.
//
// The first player maximizes utility and the second minimizes it. When several
// moves share the best value, the first one in LegalMoves order wins.
package minimax

import (
	"math"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// BestMove returns an optimal move for the player to move. ok is false on a terminal board.
func BestMove(board entity.Board) (move entity.Move, ok bool) {
	if tictactoe.IsTerminal(board) {
		return entity.Move{}, false
	}

	_, move = search(board)

	return move, true
}

// Value returns the minimax value of the board.
func Value(board entity.Board) int {
	score, _ := Evaluate(board)
	return score
}

// Evaluate returns the minimax value of the board together with the move that
// achieves it. The move is nil on a terminal board.
func Evaluate(board entity.Board) (int, *entity.Move) {
	if tictactoe.IsTerminal(board) {
		return tictactoe.Utility(board), nil
	}

	score, move := search(board)

	return score, &move
}

// BestMoveParallel is BestMove with each top-level subtree searched in its own goroutine.
func BestMoveParallel(board entity.Board) (move entity.Move, ok bool) {
	if tictactoe.IsTerminal(board) {
		return entity.Move{}, false
	}

	moves := tictactoe.LegalMoves(board)
	scores := make([]int, len(moves))

	var wg sync.WaitGroup
	for i, candidate := range moves {
		i, candidate := i, candidate
		wg.Add(1)
		go func() {
			defer wg.Done()
			scores[i] = value(mustApply(board, candidate))
		}()
	}
	wg.Wait()

	maximizing := tictactoe.CurrentPlayer(board) == entity.First
	best := initScore(maximizing)
	for i, score := range scores {
		if better(score, best, maximizing) {
			best = score
			move = moves[i]
		}
	}

	return move, true
}

// search expects a non-terminal board.
func search(board entity.Board) (int, entity.Move) {
	maximizing := tictactoe.CurrentPlayer(board) == entity.First
	best := initScore(maximizing)

	var bestMove entity.Move
	for _, candidate := range tictactoe.LegalMoves(board) {
		score := value(mustApply(board, candidate))
		if better(score, best, maximizing) {
			best = score
			bestMove = candidate
		}
	}

	return best, bestMove
}

func value(board entity.Board) int {
	if tictactoe.IsTerminal(board) {
		return tictactoe.Utility(board)
	}

	score, _ := search(board)

	return score
}

// better keeps the first of equally scored moves.
func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}

	return score < best
}

func initScore(maximizing bool) int {
	if maximizing {
		return math.MinInt
	}

	return math.MaxInt
}

// mustApply is only called with moves from LegalMoves.
func mustApply(board entity.Board, move entity.Move) entity.Board {
	next, err := tictactoe.ApplyMove(board, move)
	if err != nil {
		panic(err)
	}

	return next
}
