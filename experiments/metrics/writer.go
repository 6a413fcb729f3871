package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchupConfig is one pairing of strategies, player 1 first.
type MatchupConfig struct {
	ID        int
	Strategy1 string
	Strategy2 string
	Games     int
	Rounds    int
}

type GameRecord struct {
	ID      int
	Matchup int // MatchupConfig.ID
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/name/<timestamp> to hold the CSV files of one experiment.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchups(configs []MatchupConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy1,
			config.Strategy2,
			strconv.Itoa(config.Games),
			strconv.Itoa(config.Rounds),
		})
	}
	header := []string{"id", "strategy1", "strategy2", "games", "rounds"}
	return w.write("matchups.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Matchup),
			record.GameID,
			record.Strategy1,
			record.Strategy2,
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Placements),
			strconv.Itoa(record.SkippedTurns),
			strconv.Itoa(record.Score1.Total),
			strconv.Itoa(record.Score2.Total),
			strconv.Itoa(record.Score1.ColorValueSum),
			strconv.Itoa(record.Score2.ColorValueSum),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{
		"id", "matchup", "game_id", "strategy1", "strategy2", "rounds", "placements", "skipped_turns",
		"score1", "score2", "color_sum1", "color_sum2", "winner", "start_time", "duration",
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	return writeCSV(f, file, header, rows)
}

// writeCSV writes and closes out. A failed close is reported like a failed write.
func writeCSV(out io.WriteCloser, file string, header []string, rows [][]string) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", file, err)
	}
	return nil
}
