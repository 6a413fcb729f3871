package experiments

import (
	"context"
	"fmt"
	"time"

	"dicegrid/communication"
	"dicegrid/config"
	"dicegrid/engine"
	"dicegrid/experiments/metrics"
	"dicegrid/game"
	"dicegrid/gamemaster"
	"dicegrid/player"

	"github.com/rs/zerolog/log"
)

// Params describes a round robin between strategies.
type Params struct {
	Name       string
	OutputDir  string
	Strategies []string
	Games      int // per matchup
	Rounds     int
	Seed       uint64 // zero seeds from the clock
}

// ParamsFromConfig takes the simulate and game sections of cfg.
func ParamsFromConfig(name string, cfg *config.Config) Params {
	return Params{
		Name:       name,
		OutputDir:  cfg.Simulate.OutputDir,
		Strategies: cfg.Simulate.Strategies,
		Games:      cfg.Simulate.Games,
		Rounds:     cfg.Game.Rounds,
		Seed:       cfg.Game.Seed,
	}
}

// Summary aggregates the games of one matchup.
type Summary struct {
	Matchup    metrics.MatchupConfig
	Wins1      int
	Wins2      int
	Draws      int
	MeanScore1 float64
	MeanScore2 float64
}

// Run plays every matchup, stores the matchups and game records as CSV under
// OutputDir and returns one summary per matchup with the directory written to.
func Run(ctx context.Context, p Params) ([]Summary, string, error) {
	if p.Games <= 0 {
		return nil, "", fmt.Errorf("games per matchup must be positive, got %d", p.Games)
	}
	for _, name := range p.Strategies {
		if _, err := player.NewStrategy(name, 0); err != nil {
			return nil, "", err
		}
	}
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	matchUps := matchUps(p)
	if len(matchUps) == 0 {
		return nil, "", fmt.Errorf("no strategies to play")
	}

	log.Info().Msgf("starting %s experiment with %d matchups...", p.Name, len(matchUps))

	count := 0
	gameRecords := []metrics.GameRecord{}
	summaries := make([]Summary, 0, len(matchUps))
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d: %s vs %s", mi+1, len(matchUps), matchUp.Strategy1, matchUp.Strategy2)

		summary := Summary{Matchup: matchUp}
		for i := 0; i < matchUp.Games; i++ {
			count++
			res, metric, err := runGame(ctx, matchUp, seed+uint64(count))
			if err != nil {
				return nil, "", fmt.Errorf("matchup %d game %d: %w", matchUp.ID, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Matchup:    matchUp.ID,
				GameMetric: metric,
			})

			switch {
			case res.Draw:
				summary.Draws++
			case res.Winner == game.Player1:
				summary.Wins1++
			default:
				summary.Wins2++
			}
			summary.MeanScore1 += float64(metric.Score1.Total)
			summary.MeanScore2 += float64(metric.Score2.Total)
		}
		summary.MeanScore1 /= float64(matchUp.Games)
		summary.MeanScore2 /= float64(matchUp.Games)
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: %d-%d with %d draws", mi+1, len(matchUps), summary.Wins1, summary.Wins2, summary.Draws)
	}

	log.Info().Msgf("completed %s experiment", p.Name)

	writer, err := metrics.NewWriter(p.OutputDir, p.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteMatchups(matchUps); err != nil {
		return nil, "", fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	return summaries, writer.Dir(), nil
}

// matchUps pairs every strategy with every other one in both seat orders. A single
// strategy plays itself.
func matchUps(p Params) []metrics.MatchupConfig {
	var configs []metrics.MatchupConfig
	add := func(s1, s2 string) {
		configs = append(configs, metrics.MatchupConfig{
			ID:        len(configs) + 1,
			Strategy1: s1,
			Strategy2: s2,
			Games:     p.Games,
			Rounds:    p.Rounds,
		})
	}
	if len(p.Strategies) == 1 {
		add(p.Strategies[0], p.Strategies[0])
		return configs
	}
	for i, s1 := range p.Strategies {
		for j, s2 := range p.Strategies {
			if i != j {
				add(s1, s2)
			}
		}
	}
	return configs
}

// runGame plays one game in process on a fresh game master.
func runGame(ctx context.Context, matchUp metrics.MatchupConfig, seed uint64) (gamemaster.Result, metrics.GameMetric, error) {
	options := []gamemaster.Option{gamemaster.WithSeed(seed)}
	if matchUp.Rounds > 0 {
		options = append(options, gamemaster.WithRounds(matchUp.Rounds))
	}
	gm, err := gamemaster.NewGameMaster(game.NewStandardRules(), options...)
	if err != nil {
		return gamemaster.Result{}, metrics.GameMetric{}, err
	}
	comm := communication.NewLocal(gm)

	s1, err := player.NewStrategy(matchUp.Strategy1, seed*2+1)
	if err != nil {
		return gamemaster.Result{}, metrics.GameMetric{}, err
	}
	s2, err := player.NewStrategy(matchUp.Strategy2, seed*2+2)
	if err != nil {
		return gamemaster.Result{}, metrics.GameMetric{}, err
	}
	players := []*player.Player{
		player.NewPlayer(game.Player1, s1, comm),
		player.NewPlayer(game.Player2, s2, comm),
	}

	m := engine.NewMatch(comm, players, matchUp.Rounds, engine.WithCollector(metrics.NewCollector()))
	return m.Run(ctx)
}
