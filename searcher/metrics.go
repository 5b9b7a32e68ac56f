package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     Depth
	Pruning   bool
	Nodes     int64
	Leaves    int64
	Cutoffs   int64
	MaxPly    int
}

type MetricsCollector interface {
	Start(depth Depth, pruning bool)
	AddNode(ply int)
	AddLeaf()
	AddCutoff()
	Complete() SearchMetrics
}

// Searches run on a single goroutine, so the counters are plain fields.
type metricsCollector struct {
	startTime time.Time
	depth     Depth
	pruning   bool
	nodes     int64
	leaves    int64
	cutoffs   int64
	maxPly    int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth Depth, pruning bool) {
	*m = metricsCollector{
		startTime: time.Now(),
		depth:     depth,
		pruning:   pruning,
	}
}

func (m *metricsCollector) AddNode(ply int) {
	m.nodes++
	if ply > m.maxPly {
		m.maxPly = ply
	}
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     m.depth,
		Pruning:   m.pruning,
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
		MaxPly:    m.maxPly,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(Depth, bool)       {}
func (m *noMetricsCollector) AddNode(int)             {}
func (m *noMetricsCollector) AddLeaf()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
