package metrics

import "time"

type SearchMetric struct {
	Depth    int
	Pruning  bool
	Duration time.Duration
	Nodes    int // positions reached by make/undo
	Leaves   int // static evaluations
	Cutoffs  int
	Score    int
}

type MoveMetric struct {
	Step   int
	Player string // color of the mover
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             string // match id
	StartingPlayer string
	Winner         string // "" for a draw or an unfinished game
	State          string
	Finished       bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the counters of one search. Search is single-threaded, so
// there is no synchronisation.
type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(score int) SearchMetric
}

type collector struct {
	metric    SearchMetric
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.metric = SearchMetric{Depth: depth, Pruning: pruning}
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddLeaf() {
	m.metric.Leaves++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) Complete(score int) SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	m.metric.Score = score
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool)  {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddLeaf()                       {}
func (m *dummyCollector) AddCutoff()                     {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }
