package player

import (
	"context"
	"errors"
	"fmt"

	"dicegrid/communication"
	"dicegrid/game"
	"dicegrid/gamemaster"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoLegalPosition = errors.New("no legal position for any held die")
	ErrNothingToPlace  = errors.New("hand is empty and nothing could be drawn")
)

// Player represents a game player.
type Player struct {
	ID           game.PlayerID
	Strategy     Strategy
	Communicator communication.Communicator
	HandSize     int
}

// TurnReport describes what a player did with its turn. Played is false when it was
// not the player's turn.
type TurnReport struct {
	Played bool
	Drawn  []game.Die
	Placed *game.PlacedDie
}

// NewPlayer creates a new Player instance.
func NewPlayer(id game.PlayerID, strategy Strategy, comm communication.Communicator) *Player {
	return &Player{
		ID:           id,
		Strategy:     strategy,
		Communicator: comm,
		HandSize:     game.NewStandardRules().HandSize(),
	}
}

// TakeTurn draws a full hand if the hand is empty, then places one die. A placement
// the engine rejects leaves the die in hand; the next held die is tried instead.
func (p *Player) TakeTurn(ctx context.Context) (TurnReport, error) {
	var report TurnReport

	gs, err := p.Communicator.State(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to sync game state: %w", err)
	}
	if gs.Phase != game.RoundActive || gs.ActivePlayer != p.ID {
		return report, nil
	}

	board := gs.Boards[p.ID]
	hand := gs.Hands[p.ID]
	if len(hand) == 0 {
		for _, d := range p.Strategy.ChooseDice(gs.Reserve, board, p.HandSize) {
			h, err := p.Communicator.Draw(ctx, p.ID, d)
			if errors.Is(err, gamemaster.ErrDieUnavailable) {
				continue
			}
			if err != nil {
				return report, err
			}
			hand = h
			report.Drawn = append(report.Drawn, d)
		}
		log.Debug().Msgf("%s drew %v", p.ID, report.Drawn)
	}
	if len(hand) == 0 {
		return report, ErrNothingToPlace
	}

	for _, d := range hand {
		pos, ok := p.Strategy.ChoosePosition(board, d)
		if !ok {
			continue
		}
		_, err := p.Communicator.Place(ctx, p.ID, d, pos)
		if errors.Is(err, gamemaster.ErrIllegalPosition) {
			log.Info().Err(err).Msgf("%s: %s strategy chose an illegal cell", p.ID, p.Strategy.Name())
			continue
		}
		if err != nil {
			return report, err
		}
		report.Played = true
		report.Placed = &game.PlacedDie{Die: d, Position: pos}
		log.Debug().Msgf("%s placed %s at %s", p.ID, d, pos)
		return report, nil
	}
	return report, fmt.Errorf("%s holding %v: %w", p.ID, hand, ErrNoLegalPosition)
}
