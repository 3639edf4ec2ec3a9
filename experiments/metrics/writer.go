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

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID      int
	Kind    string // "minimax" or "random"
	Depth   int
	Pruning bool
	Seed    uint64
}

type GameRecord struct {
	AgentA int // AgentConfig.ID playing A
	AgentB int // AgentConfig.ID playing B
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<timestamp>/ and writes records into it.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "pruning", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatBool(config.Pruning),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent_a", "agent_b", "starting_player", "winner", "state", "finished",
		"start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.AgentA),
			strconv.Itoa(record.AgentB),
			record.StartingPlayer,
			record.Winner,
			record.State,
			strconv.FormatBool(record.Finished),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "pruning", "duration",
		"nodes", "leaves", "cutoffs", "score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.Pruning),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Score),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}

	err = writeCSV(f, header, rows)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", file, err)
	}
	return nil
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}
