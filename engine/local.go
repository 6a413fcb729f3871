package engine

import (
	"context"
	"errors"
	"fmt"

	"dicegrid/communication"
	"dicegrid/experiments/metrics"
	"dicegrid/game"
	"dicegrid/gamemaster"
	"dicegrid/meta"
	"dicegrid/player"

	"github.com/rs/zerolog/log"
)

// Match drives two players through a game over a single communicator. The turn
// schedule of every round is player 1, player 2, player 1, player 2.
type Match struct {
	comm      communication.Communicator
	players   [2]*player.Player
	rounds    int
	collector metrics.Collector
}

type MatchOption func(*Match)

func WithCollector(c metrics.Collector) MatchOption {
	return func(m *Match) {
		m.collector = c
	}
}

// NewMatch panics unless players holds player 1 and player 2 in that order.
func NewMatch(comm communication.Communicator, players []*player.Player, rounds int, options ...MatchOption) *Match {
	if len(players) != 2 {
		panic("a match needs exactly two players")
	}
	if players[0].ID != game.Player1 || players[1].ID != game.Player2 {
		panic("players must be given in seat order")
	}
	if rounds <= 0 {
		rounds = meta.DEFAULT_ROUNDS
	}

	m := &Match{
		comm:      comm,
		players:   [2]*player.Player{players[0], players[1]},
		rounds:    rounds,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Match) Run(ctx context.Context) (gamemaster.Result, metrics.GameMetric, error) {
	gs, err := m.comm.State(ctx)
	if err != nil {
		return gamemaster.Result{}, metrics.GameMetric{}, fmt.Errorf("failed to fetch game: %w", err)
	}
	m.collector.Start(gs.GameID, m.players[0].Strategy.Name(), m.players[1].Strategy.Name())
	log.Info().Msgf("game %s: %s vs %s over %d rounds", gs.GameID, m.players[0].Strategy.Name(), m.players[1].Strategy.Name(), m.rounds)

	for round := 1; round <= m.rounds; round++ {
		start, err := m.comm.StartRound(ctx)
		if errors.Is(err, gamemaster.ErrGameFinished) {
			log.Info().Msgf("game %s finished after %d rounds", gs.GameID, round-1)
			break
		}
		if err != nil {
			return gamemaster.Result{}, metrics.GameMetric{}, fmt.Errorf("round %d: %w", round, err)
		}
		m.collector.AddRound()
		log.Debug().Msgf("round %d reserve %v colors %v", start.Round, start.Reserve, start.Colors)

		if err := m.playRound(ctx); err != nil {
			return gamemaster.Result{}, metrics.GameMetric{}, fmt.Errorf("round %d: %w", round, err)
		}
	}

	res, err := m.comm.Finalize(ctx)
	if err != nil {
		return gamemaster.Result{}, metrics.GameMetric{}, fmt.Errorf("failed to finalize: %w", err)
	}
	log.Info().Msgf("game %s over: %s (%d-%d)", gs.GameID, res.WinnerName(), res.Scores[game.Player1].Total, res.Scores[game.Player2].Total)
	return res, m.collector.Complete(res), nil
}

// playRound gives every seat its turns. A player that cannot place loses the turn,
// and since the active player does not change, so do the turns after it.
func (m *Match) playRound(ctx context.Context) error {
	for turn := 0; turn < meta.TURNS_PER_ROUND; turn++ {
		p := m.players[turn%2]
		report, err := p.TakeTurn(ctx)
		if errors.Is(err, player.ErrNoLegalPosition) || errors.Is(err, player.ErrNothingToPlace) {
			log.Debug().Err(err).Msgf("%s skips turn %d", p.ID, turn+1)
			m.collector.AddSkippedTurn()
			continue
		}
		if err != nil {
			return err
		}
		if !report.Played {
			m.collector.AddSkippedTurn()
			continue
		}
		m.collector.AddPlacement()
	}
	return nil
}
