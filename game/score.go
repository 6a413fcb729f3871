package game

// ScoreCard breaks a final score down. ColorValueSum is informative only and
// plays no part in deciding the winner.
type ScoreCard struct {
	CompletedRows    int `json:"completed_rows"`
	CompletedColumns int `json:"completed_columns"`
	ColorBonus       int `json:"color_bonus"`
	ColorValueSum    int `json:"color_value_sum"`
	Total            int `json:"total"`
}

// Score counts full rows, full columns and dice matching the assigned color.
func Score(board Board, assigned Color) ScoreCard {
	var sc ScoreCard
	grid := board.Grid()

	for r := 0; r < Rows; r++ {
		full := true
		for c := 0; c < Cols; c++ {
			full = full && grid[r][c]
		}
		if full {
			sc.CompletedRows++
		}
	}
	for c := 0; c < Cols; c++ {
		full := true
		for r := 0; r < Rows; r++ {
			full = full && grid[r][c]
		}
		if full {
			sc.CompletedColumns++
		}
	}
	for _, pd := range board {
		if pd.Die.Color == assigned {
			sc.ColorBonus++
			sc.ColorValueSum += pd.Die.Value
		}
	}

	sc.Total = sc.CompletedRows + sc.CompletedColumns + sc.ColorBonus
	return sc
}
