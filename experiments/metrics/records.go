package metrics

import (
	"time"

	"rbnim/searcher"
)

const (
	MinimaxAgent = "minimax"
	RandomAgent  = "random"
)

type AgentConfig struct {
	ID      int
	Kind    string // MinimaxAgent or RandomAgent
	Depth   int    // 0 searches to the end of the game
	Pruning bool
	Seed    uint64
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Red            int
	Blue           int
	Score          int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	searcher.SearchMetrics
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID seated as human
	Agent2 int // AgentConfig.ID seated as computer
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
