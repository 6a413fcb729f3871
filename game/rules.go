package game

import (
	"errors"
	"fmt"
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules is the configurable part of the game. The grid is fixed at Rows x Cols.
type Rules interface {
	Colors() []Color
	MinValue() int
	MaxValue() int
	HandSize() int
	Players() []PlayerID
	PoolSize() int
	// Validate checks the configuration invariants the engine relies on, most
	// importantly that PoolSize distinct dice exist in the color x value space.
	Validate() error
}

// ValidateRules checks the invariants shared by every Rules implementation.
func ValidateRules(r Rules) error {
	colors := r.Colors()
	if len(colors) == 0 {
		return fmt.Errorf("%w: no colors", ErrInvalidRules)
	}
	seen := make(map[Color]bool, len(colors))
	for _, c := range colors {
		if seen[c] {
			return fmt.Errorf("%w: duplicate color %q", ErrInvalidRules, c)
		}
		seen[c] = true
	}
	if r.MinValue() > r.MaxValue() {
		return fmt.Errorf("%w: value range %d..%d is empty", ErrInvalidRules, r.MinValue(), r.MaxValue())
	}
	if len(r.Players()) != 2 {
		return fmt.Errorf("%w: exactly two players are supported, got %d", ErrInvalidRules, len(r.Players()))
	}
	if len(r.Players()) > len(colors) {
		return fmt.Errorf("%w: %d players but only %d colors", ErrInvalidRules, len(r.Players()), len(colors))
	}
	if r.HandSize() <= 0 {
		return fmt.Errorf("%w: hand size must be positive", ErrInvalidRules)
	}
	space := len(colors) * (r.MaxValue() - r.MinValue() + 1)
	if r.PoolSize() <= 0 || r.PoolSize() > space {
		return fmt.Errorf("%w: pool size %d outside 1..%d", ErrInvalidRules, r.PoolSize(), space)
	}
	return nil
}
