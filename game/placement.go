package game

import (
	"errors"
	"fmt"
)

// Reasons a placement is rejected. CheckPlacement wraps them with the offending cell.
var (
	ErrOutOfBounds = errors.New("position is off the grid")
	ErrOccupied    = errors.New("position is already occupied")
	ErrNotOnBorder = errors.New("first die must go on the border")
	ErrNotAdjacent = errors.New("die must touch a placed die")
	ErrConflict    = errors.New("die shares color or value with a die in the same row or column")
)

// IsLegal reports whether die may be placed at pos on board.
func IsLegal(board Board, die Die, pos Position) bool {
	return CheckPlacement(board, die, pos) == nil
}

// CheckPlacement applies the placement rules in order and returns the first one
// violated, or nil. It never modifies board.
//
// Every placed die is scanned: the candidate needs at least one die within Chebyshev
// distance 1, and none of those neighbours in the same row or column may share its
// color or its value.
func CheckPlacement(board Board, die Die, pos Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if board.Occupied(pos) {
		return fmt.Errorf("%w: %s", ErrOccupied, pos)
	}
	if len(board) == 0 {
		if !pos.OnBorder() {
			return fmt.Errorf("%w: %s", ErrNotOnBorder, pos)
		}
		return nil
	}

	adjacent := false
	for _, pd := range board {
		if !neighbours(pos, pd.Position) {
			continue
		}
		adjacent = true
		if pos.Row != pd.Position.Row && pos.Col != pd.Position.Col {
			continue
		}
		if pd.Die.Color == die.Color || pd.Die.Value == die.Value {
			return fmt.Errorf("%w: %s against %s at %s", ErrConflict, die, pd.Die, pd.Position)
		}
	}
	if !adjacent {
		return fmt.Errorf("%w: %s", ErrNotAdjacent, pos)
	}
	return nil
}

// LegalPositions lists every cell where die may go, row-major.
func LegalPositions(board Board, die Die) []Position {
	var legal []Position
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pos := Position{Row: r, Col: c}
			if IsLegal(board, die, pos) {
				legal = append(legal, pos)
			}
		}
	}
	return legal
}

func neighbours(a, b Position) bool {
	return abs(a.Row-b.Row) <= 1 && abs(a.Col-b.Col) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
