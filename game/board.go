package game

// Board is the ordered sequence of dice a player placed. Order is placement order.
type Board []PlacedDie

// At returns the die placed at pos, if any.
func (b Board) At(pos Position) (PlacedDie, bool) {
	for _, pd := range b {
		if pd.Position == pos {
			return pd, true
		}
	}
	return PlacedDie{}, false
}

// Occupied reports whether pos already holds a die.
func (b Board) Occupied(pos Position) bool {
	_, ok := b.At(pos)
	return ok
}

// Copy returns a board that shares no memory with b.
func (b Board) Copy() Board {
	if b == nil {
		return Board{}
	}
	c := make(Board, len(b))
	copy(c, b)
	return c
}

// Grid returns the occupancy of every cell.
func (b Board) Grid() [Rows][Cols]bool {
	var grid [Rows][Cols]bool
	for _, pd := range b {
		if pd.Position.InBounds() {
			grid[pd.Position.Row][pd.Position.Col] = true
		}
	}
	return grid
}
