package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder for one experiment run
// under root and returns a writer bound to it.
func NewWriter(root, experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// BaseDir returns the directory this writer's files land in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "max_ply", "seed"}
	rows := make([][]string, len(configs))
	for i, c := range configs {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.MaxPly),
			strconv.FormatUint(c.Seed, 10),
		}
	}
	return w.writeFile("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "dark_count",
		"light_count", "turns", "deadlocked", "duration_ms"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.Winner,
			strconv.Itoa(r.DarkCount),
			strconv.Itoa(r.LightCount),
			strconv.Itoa(r.Turns),
			strconv.FormatBool(r.Deadlocked),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
	}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "turn", "player", "max_ply", "nodes",
		"prunes", "pool_hits", "duration_us"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Turn),
			r.Player,
			strconv.Itoa(r.MaxPly),
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.Prunes, 10),
			strconv.FormatInt(r.PoolHits, 10),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		}
	}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
