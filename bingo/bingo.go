// Package bingo plays giant-squid bingo on 5×5 boards.
package bingo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// BoardSize is the side length of every board.
const BoardSize = 5

var (
	// ErrNoDraws indicates the first line holds no numbers.
	ErrNoDraws = errors.New("bingo: no drawn numbers")
	// ErrBadBoard indicates a board that is not BoardSize×BoardSize integers.
	ErrBadBoard = errors.New("bingo: malformed board")
	// ErrNoWinner is returned by Result when no board completes a line.
	ErrNoWinner = errors.New("bingo: no board wins")
)

// Board is a grid of numbers, row-major.
type Board [BoardSize][BoardSize]int

// Game holds the draw order and the boards in play.
type Game struct {
	Draws  []int
	Boards []Board
}

// Parse reads the comma-separated draw line followed by blank-line separated boards.
func Parse(text string) (*Game, error) {
	blocks := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n\n")
	draws, err := input.Ints[int](blocks[0], ",")
	if err != nil {
		return nil, fmt.Errorf("bingo: draws: %w", err)
	}
	if len(draws) == 0 {
		return nil, ErrNoDraws
	}
	g := &Game{Draws: draws}
	for bi, block := range blocks[1:] {
		nums, err := input.Ints[int](block, "")
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrBadBoard, bi, err)
		}
		if len(nums) != BoardSize*BoardSize {
			return nil, fmt.Errorf("%w %d: %d numbers", ErrBadBoard, bi, len(nums))
		}
		var b Board
		for i, n := range nums {
			b[i/BoardSize][i%BoardSize] = n
		}
		g.Boards = append(g.Boards, b)
	}
	return g, nil
}

// Win records when a board completed a row or column.
type Win struct {
	Board int // index into Game.Boards
	Draw  int // the number whose call completed the line
	Score int // sum of unmarked numbers × Draw
}

// play marks each board as numbers are drawn and returns the wins in the
// order they happen. A board wins at most once; boards that never win are
// absent.
func (g *Game) play() []Win {
	marked := make([][BoardSize][BoardSize]bool, len(g.Boards))
	won := make([]bool, len(g.Boards))
	var wins []Win
	for _, n := range g.Draws {
		for bi := range g.Boards {
			if won[bi] {
				continue
			}
			b := &g.Boards[bi]
			for r := 0; r < BoardSize; r++ {
				for c := 0; c < BoardSize; c++ {
					if b[r][c] == n {
						marked[bi][r][c] = true
					}
				}
			}
			if complete(&marked[bi]) {
				won[bi] = true
				wins = append(wins, Win{Board: bi, Draw: n, Score: unmarkedSum(b, &marked[bi]) * n})
			}
		}
	}
	return wins
}

func complete(m *[BoardSize][BoardSize]bool) bool {
	for i := 0; i < BoardSize; i++ {
		row, col := true, true
		for j := 0; j < BoardSize; j++ {
			row = row && m[i][j]
			col = col && m[j][i]
		}
		if row || col {
			return true
		}
	}
	return false
}

func unmarkedSum(b *Board, m *[BoardSize][BoardSize]bool) int {
	sum := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if !m[r][c] {
				sum += b[r][c]
			}
		}
	}
	return sum
}

// FirstWin returns the first board to win. ok is false if no board ever wins.
func (g *Game) FirstWin() (w Win, ok bool) {
	wins := g.play()
	if len(wins) == 0 {
		return Win{}, false
	}
	return wins[0], true
}

// LastWin returns the board that wins last. ok is false if no board ever wins.
func (g *Game) LastWin() (w Win, ok bool) {
	wins := g.play()
	if len(wins) == 0 {
		return Win{}, false
	}
	return wins[len(wins)-1], true
}

// Result returns the first and the last win. It fails with ErrNoWinner when
// the draws run out before any board completes a line.
func (g *Game) Result() (first, last Win, err error) {
	wins := g.play()
	if len(wins) == 0 {
		return Win{}, Win{}, fmt.Errorf("%w: %d boards, %d draws", ErrNoWinner, len(g.Boards), len(g.Draws))
	}
	return wins[0], wins[len(wins)-1], nil
}
