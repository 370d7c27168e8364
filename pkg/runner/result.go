// Package runner drives batches of Z80 images to completion, one
// independently-constructed cpu.System per task, and collects the outcome
// of each into a Table.
package runner

import (
	"sort"
	"sync"
)

// Result is the outcome of running a single Image to completion, to a
// MaxInstructions cutoff, or to a panic.
type Result struct {
	Name             string
	InitialPC        uint16
	InstructionCount uint64
	Output           string
	TimedOut         bool
	Panicked         bool
	PanicValue       string
}

// Table collects Results from concurrent workers, mirroring how the
// optimizer's rule table collects discovered rules from concurrent search
// workers.
type Table struct {
	mu      sync.Mutex
	results []Result
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a result into the table.
func (t *Table) Add(r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, r)
}

// Results returns a copy of all results, sorted by image name.
func (t *Table) Results() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Result, len(t.results))
	copy(out, t.results)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of results recorded so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.results)
}
