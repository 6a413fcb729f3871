package gamemaster

import (
	"fmt"
	"sync"
	"time"

	"dicegrid/game"
	"dicegrid/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Option func(gm *GameMaster)

// WithSeed makes dice and color draws reproducible.
func WithSeed(seed uint64) Option {
	return func(gm *GameMaster) {
		gm.src = rand.New(rand.NewSource(seed))
	}
}

// WithSource replaces the randomness entirely, mostly for tests.
func WithSource(src game.Source) Option {
	return func(gm *GameMaster) {
		if src != nil {
			gm.src = src
		}
	}
}

// WithRounds limits the game to a number of rounds. Zero means no limit.
func WithRounds(rounds int) Option {
	return func(gm *GameMaster) {
		if rounds > 0 {
			gm.rounds = rounds
		}
	}
}

func WithGameID(id string) Option {
	return func(gm *GameMaster) {
		if id != "" {
			gm.gameID = id
		}
	}
}

// RoundStart is returned by StartRound. Colors is only set on the first round.
type RoundStart struct {
	Round   int                          `json:"round"`
	Reserve []game.Die                   `json:"reserve"`
	Colors  map[game.PlayerID]game.Color `json:"colors,omitempty"`
}

// Placement is returned by a successful Place.
type Placement struct {
	Board        game.Board    `json:"board"`
	ActivePlayer game.PlayerID `json:"active_player"`
}

// GameMaster is the authoritative engine. It owns the only mutable GameState and
// serializes every mutation behind one lock.
type GameMaster struct {
	mu        sync.RWMutex
	rules     game.Rules
	src       game.Source
	rounds    int
	gameID    string
	state     *game.GameState
	listeners []func(Change)
}

// NewGameMaster validates rules and returns a game at round 0.
func NewGameMaster(rules game.Rules, options ...Option) (*GameMaster, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	gm := &GameMaster{ // Default values
		rules:  rules,
		src:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		gameID: uuid.NewString(),
	}
	for _, option := range options {
		option(gm)
	}
	gm.state = game.NewGameState(gm.gameID, rules.Players())

	log.Debug().Str("game", gm.gameID).Int("rounds", gm.rounds).Msg("game created")
	return gm, nil
}

func (gm *GameMaster) Rules() game.Rules {
	return gm.rules
}

func (gm *GameMaster) GameID() string {
	return gm.gameID
}

// Rounds returns the round limit, zero when unlimited.
func (gm *GameMaster) Rounds() int {
	return gm.rounds
}

// StartRound assigns colors on the first call, then draws a fresh reserve, empties
// every hand and gives the turn to player 1. Dice left in hands are discarded.
func (gm *GameMaster) StartRound() (RoundStart, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.rounds > 0 && gm.state.Round >= gm.rounds {
		// the last round may have stalled before every die was placed
		gm.state.Phase = game.Finished
		log.Info().Msgf("refusing to start round %d: game limited to %d rounds", gm.state.Round+1, gm.rounds)
		return RoundStart{}, ErrGameFinished
	}

	start := RoundStart{}
	if gm.assignColors() {
		start.Colors = copyColors(gm.state.Colors)
	}

	gm.state.Reserve = game.GeneratePoolFor(gm.src, gm.rules)
	for _, p := range gm.rules.Players() {
		gm.state.Hands[p] = game.Hand{}
	}
	gm.state.Round++
	gm.state.ActivePlayer = game.Player1
	gm.state.Phase = game.RoundActive

	start.Round = gm.state.Round
	start.Reserve = slices.Clone(gm.state.Reserve)

	gm.notify(Change{
		Kind:         RoundStarted,
		Round:        start.Round,
		ActivePlayer: gm.state.ActivePlayer,
		Reserve:      slices.Clone(start.Reserve),
	})
	log.Info().Msgf("round %d started with reserve %v", start.Round, start.Reserve)
	return start, nil
}

// assignColors sets the color of every player once per game and reports whether it
// did. Later calls leave the assignment untouched.
func (gm *GameMaster) assignColors() bool {
	if gm.state.Colors != nil {
		return false
	}
	gm.state.Colors = game.AssignColors(gm.src, gm.rules.Players(), gm.rules.Colors())
	log.Debug().Msgf("colors assigned: %v", gm.state.Colors)
	return true
}

// Draw moves die from the reserve into the player's hand. The turn does not change.
func (gm *GameMaster) Draw(player game.PlayerID, die game.Die) (game.Hand, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.checkTurn(player); err != nil {
		return nil, reject("draw", player, err)
	}
	hand := gm.state.Hands[player]
	if len(hand) >= gm.rules.HandSize() {
		return nil, reject("draw", player, ErrHandFull)
	}
	i := utils.FindIndex(gm.state.Reserve, die)
	if i < 0 {
		return nil, reject("draw", player, fmt.Errorf("%w: %s", ErrDieUnavailable, die))
	}

	gm.state.Reserve = slices.Delete(gm.state.Reserve, i, i+1)
	hand = append(hand, die)
	gm.state.Hands[player] = hand

	gm.notify(Change{
		Kind:         DieDrawn,
		Round:        gm.state.Round,
		Player:       player,
		Die:          die,
		ActivePlayer: gm.state.ActivePlayer,
	})
	log.Debug().Msgf("%s drew %s", player, die)
	return slices.Clone(hand), nil
}

// Place puts a held die on the player's board and passes the turn. A rejected
// placement changes nothing: the die stays in hand and the turn stays put.
func (gm *GameMaster) Place(player game.PlayerID, die game.Die, pos game.Position) (Placement, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.checkTurn(player); err != nil {
		return Placement{}, reject("place", player, err)
	}
	hand := gm.state.Hands[player]
	i := utils.FindIndex(hand, die)
	if i < 0 {
		return Placement{}, reject("place", player, fmt.Errorf("%w: %s", ErrDieNotHeld, die))
	}
	board := gm.state.Boards[player]
	if err := game.CheckPlacement(board, die, pos); err != nil {
		return Placement{}, reject("place", player, fmt.Errorf("%w: %w", ErrIllegalPosition, err))
	}

	board = append(board, game.PlacedDie{Die: die, Position: pos})
	gm.state.Boards[player] = board
	gm.state.Hands[player] = slices.Delete(hand, i, i+1)
	gm.state.ActivePlayer = player.Other()
	if gm.lastRoundComplete() {
		gm.state.Phase = game.Finished
		log.Info().Msgf("final round %d complete", gm.state.Round)
	}

	gm.notify(Change{
		Kind:         DiePlaced,
		Round:        gm.state.Round,
		Player:       player,
		Die:          die,
		Position:     pos,
		ActivePlayer: gm.state.ActivePlayer,
	})
	log.Debug().Msgf("%s placed %s at %s, %s to play", player, die, pos, gm.state.ActivePlayer)
	return Placement{Board: board.Copy(), ActivePlayer: gm.state.ActivePlayer}, nil
}

// State returns a snapshot that shares no memory with the engine.
func (gm *GameMaster) State() *game.GameState {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.state.Copy()
}

func (gm *GameMaster) checkTurn(player game.PlayerID) error {
	switch {
	case gm.state.Phase == game.Finished:
		return ErrGameFinished
	case gm.state.Round == 0:
		return ErrRoundNotStarted
	}
	if _, ok := gm.state.Hands[player]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, int(player))
	}
	if player != gm.state.ActivePlayer {
		return fmt.Errorf("%w: %s is to play", ErrNotPlayerTurn, gm.state.ActivePlayer)
	}
	return nil
}

// lastRoundComplete reports whether the round limit is reached and every player has
// drawn and placed a full hand this round.
func (gm *GameMaster) lastRoundComplete() bool {
	if gm.rounds == 0 || gm.state.Round < gm.rounds {
		return false
	}
	for _, hand := range gm.state.Hands {
		if len(hand) > 0 {
			return false
		}
	}
	drawn := gm.rules.PoolSize() - len(gm.state.Reserve)
	return drawn >= len(gm.rules.Players())*gm.rules.HandSize()
}

func reject(op string, player game.PlayerID, err error) error {
	log.Info().Err(err).Str("op", op).Int("player", int(player)).Msg("move rejected")
	return err
}

func copyColors(colors map[game.PlayerID]game.Color) map[game.PlayerID]game.Color {
	c := make(map[game.PlayerID]game.Color, len(colors))
	for p, color := range colors {
		c[p] = color
	}
	return c
}
