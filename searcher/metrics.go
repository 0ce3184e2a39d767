package searcher

import "sync/atomic"

// SearchMetric is a snapshot of the work done by a search: interior and leaf
// nodes visited, and sibling iterations cut short by the pruning window.
type SearchMetric struct {
	Nodes   int64
	Leaves  int64
	Cutoffs int64
}

type Collector interface {
	AddNode()
	AddLeaf()
	AddCutoff()
	Reset()
	Complete() SearchMetric
}

type collector struct {
	nodes   atomic.Int64
	leaves  atomic.Int64
	cutoffs atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Reset() {
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Nodes:   c.nodes.Load(),
		Leaves:  c.leaves.Load(),
		Cutoffs: c.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddNode()               {}
func (c *dummyCollector) AddLeaf()               {}
func (c *dummyCollector) AddCutoff()             {}
func (c *dummyCollector) Reset()                 {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
