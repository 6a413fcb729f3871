package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dicegrid/communication"
	"dicegrid/communication/client"
	"dicegrid/communication/server"
	"dicegrid/config"
	"dicegrid/engine"
	"dicegrid/experiments"
	"dicegrid/experiments/metrics"
	"dicegrid/game"
	"dicegrid/gamemaster"
	"dicegrid/player"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "simulate", "One of serve, simulate or play")
	addr := flag.String("addr", "", "Address the game server listens on")
	url := flag.String("url", "http://localhost:5000", "Game server to play against in play mode")
	rounds := flag.Int("rounds", -1, "Rounds per game")
	seed := flag.Uint64("seed", 0, "Seed for dice and strategies, 0 for the clock")
	games := flag.Int("games", -1, "Games per matchup in simulate mode")
	strategy1 := flag.String("p1", "firstfit", "Strategy of player 1 in play mode")
	strategy2 := flag.String("p2", "random", "Strategy of player 2 in play mode")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = *addr
		case "rounds":
			cfg.Game.Rounds = *rounds
		case "seed":
			cfg.Game.Seed = *seed
		case "games":
			cfg.Simulate.Games = *games
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "serve":
		err = serve(ctx, cfg)
	case "simulate":
		err = simulate(ctx, cfg)
	case "play":
		err = play(ctx, cfg, *url, *strategy1, *strategy2)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	level, _ := cfg.LogLevel()
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	options := []gamemaster.Option{gamemaster.WithRounds(cfg.Game.Rounds)}
	if cfg.Game.Seed != 0 {
		options = append(options, gamemaster.WithSeed(cfg.Game.Seed))
	}
	gm, err := gamemaster.NewGameMaster(game.NewStandardRules(), options...)
	if err != nil {
		return err
	}
	s := server.NewServer(gm)

	errc := make(chan error, 1)
	go func() {
		errc <- s.ListenAndServe(cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func simulate(ctx context.Context, cfg *config.Config) error {
	summaries, dir, err := experiments.Run(ctx, experiments.ParamsFromConfig("simulate", cfg))
	if err != nil {
		return err
	}

	data := pterm.TableData{{"Matchup", "Player 1", "Player 2", "P1 wins", "P2 wins", "Draws", "P1 mean", "P2 mean"}}
	for _, s := range summaries {
		data = append(data, []string{
			strconv.Itoa(s.Matchup.ID),
			s.Matchup.Strategy1,
			s.Matchup.Strategy2,
			strconv.Itoa(s.Wins1),
			strconv.Itoa(s.Wins2),
			strconv.Itoa(s.Draws),
			strconv.FormatFloat(s.MeanScore1, 'f', 2, 64),
			strconv.FormatFloat(s.MeanScore2, 'f', 2, 64),
		})
	}
	pterm.DefaultSection.Println("Simulation")
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("records written to %s", dir)
	return nil
}

func play(ctx context.Context, cfg *config.Config, url, strategy1, strategy2 string) error {
	s1, err := player.NewStrategy(strategy1, cfg.Game.Seed+1)
	if err != nil {
		return err
	}
	s2, err := player.NewStrategy(strategy2, cfg.Game.Seed+2)
	if err != nil {
		return err
	}

	var comm communication.Communicator = client.NewClientCommunicator(url, &http.Client{Timeout: 10 * time.Second})
	players := []*player.Player{
		player.NewPlayer(game.Player1, s1, comm),
		player.NewPlayer(game.Player2, s2, comm),
	}
	res, metric, err := engine.NewMatch(comm, players, cfg.Game.Rounds, engine.WithCollector(metrics.NewCollector())).Run(ctx)
	if err != nil {
		return err
	}

	gs, err := comm.State(ctx)
	if err != nil {
		return err
	}
	for _, p := range []game.PlayerID{game.Player1, game.Player2} {
		pterm.DefaultSection.Printfln("%s (%s)", p, res.Colors[p])
		if err := pterm.DefaultTable.WithBoxed().WithData(boardTable(gs.Boards[p])).Render(); err != nil {
			return err
		}
		card := res.Scores[p]
		pterm.Printfln("rows %d, columns %d, color bonus %d, total %d", card.CompletedRows, card.CompletedColumns, card.ColorBonus, card.Total)
	}
	pterm.Success.Printfln("winner: %s after %d rounds (%d placements, %d skipped turns)", res.WinnerName(), metric.Rounds, metric.Placements, metric.SkippedTurns)
	return nil
}

func boardTable(board game.Board) pterm.TableData {
	data := make(pterm.TableData, game.Rows)
	for r := range data {
		data[r] = make([]string, game.Cols)
		for c := range data[r] {
			data[r][c] = "."
		}
	}
	for _, pd := range board {
		data[pd.Position.Row][pd.Position.Col] = pd.Die.String()
	}
	return data
}
