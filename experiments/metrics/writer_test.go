package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rbnim/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(w.Dir(), filepath.Join(root, "depth")))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Kind: RandomAgent, Seed: 9},
			{ID: 1, Kind: MinimaxAgent, Depth: 3, Pruning: true},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "pruning", "seed"},
			{"0", "random", "0", "false", "9"},
			{"1", "minimax", "3", "true", "0"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 0, Agent2: 1,
			GameMetric: GameMetric{
				StartingPlayer: "computer",
				Winner:         "human",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     4,
				Red:            0,
				Blue:           2,
				Score:          6,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "0", "1", "computer", "human", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "4", "0", "2", "6"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "computer",
				Move:   "2 red",
				SearchMetrics: searcher.SearchMetrics{
					Depth:   searcher.Unbounded,
					Pruning: true,
					Nodes:   40,
					Leaves:  20,
					Cutoffs: 5,
					MaxPly:  6,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "computer", "2 red", "0s", "unbounded", "true", "40", "20", "5", "6"}, rows[1])
	})
}
