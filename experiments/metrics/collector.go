package metrics

import (
	"sync/atomic"
	"time"

	"dicegrid/game"
	"dicegrid/gamemaster"
)

// GameMetric summarizes one finished game.
type GameMetric struct {
	GameID       string
	Strategy1    string
	Strategy2    string
	Rounds       int
	Placements   int
	SkippedTurns int
	Score1       game.ScoreCard
	Score2       game.ScoreCard
	Winner       string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

type Collector interface {
	Start(gameID, strategy1, strategy2 string)
	AddRound()
	AddPlacement()
	AddSkippedTurn()
	Complete(result gamemaster.Result) GameMetric
}

type collector struct {
	gameID       string
	strategy1    string
	strategy2    string
	startTime    time.Time
	rounds       atomic.Int32
	placements   atomic.Int32
	skippedTurns atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID, strategy1, strategy2 string) {
	m.startTime = time.Now()
	m.gameID = gameID
	m.strategy1 = strategy1
	m.strategy2 = strategy2
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) AddPlacement() {
	m.placements.Add(1)
}

func (m *collector) AddSkippedTurn() {
	m.skippedTurns.Add(1)
}

func (m *collector) Complete(result gamemaster.Result) GameMetric {
	end := time.Now()
	return GameMetric{
		GameID:       m.gameID,
		Strategy1:    m.strategy1,
		Strategy2:    m.strategy2,
		Rounds:       int(m.rounds.Load()),
		Placements:   int(m.placements.Load()),
		SkippedTurns: int(m.skippedTurns.Load()),
		Score1:       result.Scores[game.Player1],
		Score2:       result.Scores[game.Player2],
		Winner:       result.WinnerName(),
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID, strategy1, strategy2 string) {}
func (m *dummyCollector) AddRound()                                 {}
func (m *dummyCollector) AddPlacement()                             {}
func (m *dummyCollector) AddSkippedTurn()                           {}
func (m *dummyCollector) Complete(gamemaster.Result) GameMetric     { return GameMetric{} }
