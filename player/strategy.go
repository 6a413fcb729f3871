package player

import (
	"fmt"
	"sync"

	"dicegrid/game"

	"golang.org/x/exp/rand"
)

// Strategy decides which dice to draw and where to place them. The engine only
// validates; all choices live here.
type Strategy interface {
	Name() string
	// ChooseDice picks up to n dice from the reserve, in draw order.
	ChooseDice(reserve []game.Die, board game.Board, n int) []game.Die
	// ChoosePosition picks a cell for die, or false when none is legal.
	ChoosePosition(board game.Board, die game.Die) (game.Position, bool)
}

// firstFit takes the first dice offered and the first legal cell in row-major order.
type firstFit struct{}

func NewFirstFit() Strategy {
	return firstFit{}
}

func (firstFit) Name() string {
	return "firstfit"
}

func (firstFit) ChooseDice(reserve []game.Die, board game.Board, n int) []game.Die {
	if n > len(reserve) {
		n = len(reserve)
	}
	return append([]game.Die(nil), reserve[:n]...)
}

func (firstFit) ChoosePosition(board game.Board, die game.Die) (game.Position, bool) {
	legal := game.LegalPositions(board, die)
	if len(legal) == 0 {
		return game.Position{}, false
	}
	return legal[0], true
}

// random picks dice and legal cells uniformly.
type random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) Strategy {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) Name() string {
	return "random"
}

func (r *random) ChooseDice(reserve []game.Die, board game.Board, n int) []game.Die {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(reserve) {
		n = len(reserve)
	}
	picked := make([]game.Die, 0, n)
	for _, i := range r.rng.Perm(len(reserve))[:n] {
		picked = append(picked, reserve[i])
	}
	return picked
}

func (r *random) ChoosePosition(board game.Board, die game.Die) (game.Position, bool) {
	legal := game.LegalPositions(board, die)
	if len(legal) == 0 {
		return game.Position{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return legal[r.rng.Intn(len(legal))], true
}

// NewStrategy builds a strategy by name. seed only matters for random strategies.
func NewStrategy(name string, seed uint64) (Strategy, error) {
	switch name {
	case "firstfit":
		return NewFirstFit(), nil
	case "random":
		return NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
