package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type TrialRecord struct {
	ID      int
	Seats   []string  // Strategy kind per seat
	Credits []float64 // Win credit per declared strategy
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteWinRates(strategies []string, winRates []float64, trials int) error {
	if len(strategies) != len(winRates) {
		return fmt.Errorf("failed to write win rates: %d strategies but %d rates", len(strategies), len(winRates))
	}

	rows := [][]string{{"id", "strategy", "win_rate", "trials"}}
	for i, strategy := range strategies {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strategy,
			strconv.FormatFloat(winRates[i], 'f', 6, 64),
			strconv.Itoa(trials),
		})
	}
	return w.write("win_rates.csv", rows)
}

func (w *Writer) WriteTrialRecords(records []TrialRecord) error {
	rows := [][]string{{"trial", "seats", "scores", "credits", "turns", "skipped", "pickups", "oxygen_left", "returned", "duration"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strings.Join(record.Seats, ";"),
			joinInts(record.Scores),
			joinFloats(record.Credits),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Skipped),
			strconv.Itoa(record.Pickups),
			strconv.Itoa(record.OxygenLeft),
			strconv.Itoa(record.Returned),
			record.Duration.String(),
		})
	}
	return w.write("trial_records.csv", rows)
}

func (w *Writer) write(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ";")
}
