package game

import (
	"fmt"

	"dicegrid/utils"
)

// Grid dimensions of every player's board.
const (
	Rows = 4
	Cols = 5
)

// PlayerID identifies a seat at the table. Seats are numbered from 1.
type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

// Other returns the opponent in a two-player game.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) String() string {
	return fmt.Sprintf("player %d", int(p))
}

// Color is one of the symbolic die colors. It carries no numeric meaning.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Purple Color = "purple"
)

// AllColors lists the colors of the standard game.
var AllColors = []Color{Red, Blue, Green, Yellow, Purple}

// Die is immutable once drawn. Two dice with the same color and value are the same die.
type Die struct {
	Color Color `json:"color" yaml:"color"`
	Value int   `json:"value" yaml:"value"`
}

func (d Die) String() string {
	return fmt.Sprintf("%s-%d", d.Color, d.Value)
}

// Position is a cell on a board, row-major.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether the position lies on the grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// OnBorder reports whether the position lies in the first/last row or column.
func (p Position) OnBorder() bool {
	return p.Row == 0 || p.Row == Rows-1 || p.Col == 0 || p.Col == Cols-1
}

// PlacedDie is a die fixed on a board. It is never moved or removed.
type PlacedDie struct {
	Die      Die      `json:"die"`
	Position Position `json:"position"`
}

// Hand holds the dice a player drew this round but has not placed yet.
type Hand []Die

// Contains reports whether the hand holds die.
func (h Hand) Contains(die Die) bool {
	return utils.Contains(h, die)
}
