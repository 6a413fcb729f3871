package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, ScoreCard{}, Score(Board{}, Red))
	})

	t.Run("one full row and two color matches", func(t *testing.T) {
		b := board(
			at(Red, 1, 0, 0),
			at(Blue, 2, 0, 1),
			at(Red, 3, 0, 2),
			at(Green, 4, 0, 3),
			at(Yellow, 5, 0, 4),
		)
		got := Score(b, Red)

		require.Equal(t, 1, got.CompletedRows)
		require.Equal(t, 0, got.CompletedColumns)
		require.Equal(t, 2, got.ColorBonus)
		require.Equal(t, 4, got.ColorValueSum)
		require.Equal(t, 1+0+2, got.Total)
	})

	t.Run("full column", func(t *testing.T) {
		b := board(
			at(Red, 1, 0, 4),
			at(Blue, 2, 1, 4),
			at(Green, 3, 2, 4),
			at(Purple, 4, 3, 4),
		)
		got := Score(b, Yellow)

		require.Equal(t, 0, got.CompletedRows)
		require.Equal(t, 1, got.CompletedColumns)
		require.Equal(t, 0, got.ColorBonus)
		require.Equal(t, 1, got.Total)
	})

	t.Run("full board", func(t *testing.T) {
		var b Board
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				b = append(b, at(Blue, 6, r, c))
			}
		}
		got := Score(b, Blue)

		require.Equal(t, Rows, got.CompletedRows)
		require.Equal(t, Cols, got.CompletedColumns)
		require.Equal(t, Rows*Cols, got.ColorBonus)
		require.Equal(t, 6*Rows*Cols, got.ColorValueSum)
		require.Equal(t, Rows+Cols+Rows*Cols, got.Total)
	})
}
