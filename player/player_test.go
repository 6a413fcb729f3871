package player

import (
	"context"
	"testing"

	"dicegrid/communication"
	"dicegrid/game"
	"dicegrid/gamemaster"

	"github.com/stretchr/testify/require"
)

// stubborn always picks the same cell, legal or not.
type stubborn struct {
	firstFit
	at game.Position
}

func (s stubborn) ChoosePosition(game.Board, game.Die) (game.Position, bool) {
	return s.at, true
}

func newLocal(t *testing.T) (*gamemaster.GameMaster, communication.Communicator) {
	t.Helper()
	gm, err := gamemaster.NewGameMaster(game.NewStandardRules(), gamemaster.WithSeed(11))
	require.NoError(t, err)
	return gm, communication.NewLocal(gm)
}

func TestTakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("first fit draws two and places on the first cell", func(t *testing.T) {
		gm, comm := newLocal(t)
		start, err := gm.StartRound()
		require.NoError(t, err)

		p := NewPlayer(game.Player1, NewFirstFit(), comm)
		report, err := p.TakeTurn(ctx)
		require.NoError(t, err)

		require.True(t, report.Played)
		require.Equal(t, start.Reserve[:2], report.Drawn)
		require.Equal(t, game.PlacedDie{Die: start.Reserve[0], Position: game.Position{}}, *report.Placed)

		gs := gm.State()
		require.Equal(t, game.Player2, gs.ActivePlayer)
		require.Equal(t, game.Hand{start.Reserve[1]}, gs.Hands[game.Player1])
	})

	t.Run("second turn places the held die without drawing", func(t *testing.T) {
		gm, comm := newLocal(t)
		_, err := gm.StartRound()
		require.NoError(t, err)
		p1 := NewPlayer(game.Player1, NewFirstFit(), comm)
		p2 := NewPlayer(game.Player2, NewFirstFit(), comm)

		for _, p := range []*Player{p1, p2} {
			_, err := p.TakeTurn(ctx)
			require.NoError(t, err)
		}
		report, err := p1.TakeTurn(ctx)
		require.NoError(t, err)
		require.True(t, report.Played)
		require.Empty(t, report.Drawn)
		require.Len(t, gm.State().Boards[game.Player1], 2)
		require.Empty(t, gm.State().Hands[game.Player1])
	})

	t.Run("not my turn", func(t *testing.T) {
		gm, comm := newLocal(t)
		_, err := gm.StartRound()
		require.NoError(t, err)

		report, err := NewPlayer(game.Player2, NewFirstFit(), comm).TakeTurn(ctx)
		require.NoError(t, err)
		require.False(t, report.Played)
		require.Equal(t, game.Player1, gm.State().ActivePlayer)
	})

	t.Run("before the first round", func(t *testing.T) {
		_, comm := newLocal(t)
		report, err := NewPlayer(game.Player1, NewFirstFit(), comm).TakeTurn(ctx)
		require.NoError(t, err)
		require.False(t, report.Played)
	})

	t.Run("rejected placements keep the dice", func(t *testing.T) {
		gm, comm := newLocal(t)
		_, err := gm.StartRound()
		require.NoError(t, err)

		p := NewPlayer(game.Player1, stubborn{at: game.Position{Row: 1, Col: 1}}, comm)
		report, err := p.TakeTurn(ctx)
		require.ErrorIs(t, err, ErrNoLegalPosition)
		require.False(t, report.Played)
		require.Len(t, report.Drawn, 2)

		gs := gm.State()
		require.Equal(t, game.Player1, gs.ActivePlayer)
		require.Len(t, gs.Hands[game.Player1], 2)
		require.Empty(t, gs.Boards[game.Player1])
	})
}

func TestStrategies(t *testing.T) {
	reserve := []game.Die{{Color: game.Red, Value: 1}, {Color: game.Blue, Value: 2}, {Color: game.Green, Value: 3}}

	t.Run("first fit", func(t *testing.T) {
		s := NewFirstFit()
		require.Equal(t, reserve[:2], s.ChooseDice(reserve, nil, 2))
		require.Equal(t, reserve, s.ChooseDice(reserve, nil, 5))

		pos, ok := s.ChoosePosition(game.Board{}, reserve[0])
		require.True(t, ok)
		require.Equal(t, game.Position{}, pos)
	})

	t.Run("random stays legal", func(t *testing.T) {
		s := NewRandom(5)
		board := game.Board{{Die: reserve[0], Position: game.Position{Row: 0, Col: 0}}}
		for i := 0; i < 50; i++ {
			picked := s.ChooseDice(reserve, board, 2)
			require.Len(t, picked, 2)
			require.NotEqual(t, picked[0], picked[1])

			pos, ok := s.ChoosePosition(board, reserve[1])
			require.True(t, ok)
			require.True(t, game.IsLegal(board, reserve[1], pos))
		}
	})

	t.Run("no legal cell", func(t *testing.T) {
		var full game.Board
		for r := 0; r < game.Rows; r++ {
			for c := 0; c < game.Cols; c++ {
				full = append(full, game.PlacedDie{Die: reserve[0], Position: game.Position{Row: r, Col: c}})
			}
		}
		for _, s := range []Strategy{NewFirstFit(), NewRandom(1)} {
			_, ok := s.ChoosePosition(full, reserve[1])
			require.False(t, ok, s.Name())
		}
	})

	t.Run("by name", func(t *testing.T) {
		s, err := NewStrategy("random", 1)
		require.NoError(t, err)
		require.Equal(t, "random", s.Name())
		_, err = NewStrategy("mcts", 1)
		require.Error(t, err)
	})
}
