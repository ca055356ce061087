package searcher

import (
	"time"
)

// SearchMetrics summarizes the cost of a single FindBestMove call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	MaxPly    int
	Nodes     int64 // applied move trials
	Prunes    int64 // alpha-beta cutoffs taken
	PoolHits  int64 // chain allocations served from the pool
}

// MetricsCollector gathers search statistics. The search is strictly
// single-threaded, so the counters need no synchronization.
type MetricsCollector interface {
	Start(maxPly int)
	AddNode()
	AddPrune()
	SetPoolHits(hits int64)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	maxPly    int
	nodes     int64
	prunes    int64
	poolHits  int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(maxPly int) {
	m.startTime = time.Now()
	m.maxPly = maxPly
	m.nodes = 0
	m.prunes = 0
	m.poolHits = 0
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddPrune() {
	m.prunes++
}

func (m *metricsCollector) SetPoolHits(hits int64) {
	m.poolHits = hits
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		MaxPly:    m.maxPly,
		Nodes:     m.nodes,
		Prunes:    m.prunes,
		PoolHits:  m.poolHits,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(maxPly int)          {}
func (m *noMetricsCollector) AddNode()                  {}
func (m *noMetricsCollector) AddPrune()                 {}
func (m *noMetricsCollector) SetPoolHits(hits int64)    {}
func (m *noMetricsCollector) Complete() SearchMetrics   { return SearchMetrics{} }
