package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// sequence replays fixed draws, wrapping modulo n.
type sequence struct {
	draws []int
	next  int
}

func (s *sequence) Intn(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

func TestGeneratePool(t *testing.T) {
	t.Run("distinct dice of the requested size", func(t *testing.T) {
		rules := NewStandardRules()
		src := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			pool := GeneratePoolFor(src, rules)
			require.Len(t, pool, 2*len(rules.Players())+1)

			seen := map[Die]bool{}
			for _, d := range pool {
				require.False(t, seen[d], "duplicate die %s", d)
				seen[d] = true
				require.Contains(t, rules.Colors(), d.Color)
				require.GreaterOrEqual(t, d.Value, 1)
				require.LessOrEqual(t, d.Value, 6)
			}
		}
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		// color index, value offset pairs: (0,0) twice, then (1,2)
		src := &sequence{draws: []int{0, 0, 0, 0, 1, 2}}
		pool := GeneratePool(src, 2, AllColors, 1, 6)
		require.Equal(t, []Die{{Red, 1}, {Blue, 3}}, pool)
	})

	t.Run("whole space can be drawn", func(t *testing.T) {
		src := rand.New(rand.NewSource(7))
		pool := GeneratePool(src, 4, []Color{Red, Blue}, 1, 2)
		require.ElementsMatch(t, []Die{{Red, 1}, {Red, 2}, {Blue, 1}, {Blue, 2}}, pool)
	})
}

func TestAssignColors(t *testing.T) {
	t.Run("distinct colors for every player", func(t *testing.T) {
		src := rand.New(rand.NewSource(1))
		players := []PlayerID{Player1, Player2}
		for i := 0; i < 100; i++ {
			got := AssignColors(src, players, AllColors)
			require.Len(t, got, 2)
			require.NotEqual(t, got[Player1], got[Player2])
			require.Contains(t, AllColors, got[Player1])
			require.Contains(t, AllColors, got[Player2])
		}
	})

	t.Run("draws without replacement", func(t *testing.T) {
		src := &sequence{draws: []int{0}}
		got := AssignColors(src, []PlayerID{Player1, Player2}, []Color{Green, Purple})
		require.Equal(t, map[PlayerID]Color{Player1: Green, Player2: Purple}, got)
	})

	t.Run("input colors are not reordered", func(t *testing.T) {
		colors := []Color{Red, Blue, Green}
		AssignColors(&sequence{draws: []int{2, 1}}, []PlayerID{Player1, Player2}, colors)
		require.Equal(t, []Color{Red, Blue, Green}, colors)
	})
}

func TestStandardRules(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		r := NewStandardRules()
		require.NoError(t, r.Validate())
		require.Equal(t, 5, r.PoolSize())
		require.Equal(t, []PlayerID{Player1, Player2}, r.Players())
	})

	t.Run("pool larger than the dice space", func(t *testing.T) {
		r := NewStandardRules()
		r.DiceColors = []Color{Red}
		r.MaxDie = 2
		require.ErrorIs(t, r.Validate(), ErrInvalidRules)
	})

	t.Run("duplicate colors", func(t *testing.T) {
		r := NewStandardRules()
		r.DiceColors = []Color{Red, Red, Blue}
		require.ErrorIs(t, r.Validate(), ErrInvalidRules)
	})

	t.Run("unsupported player count", func(t *testing.T) {
		r := NewStandardRules()
		r.NumPlayers = 3
		require.ErrorIs(t, r.Validate(), ErrInvalidRules)
	})
}
