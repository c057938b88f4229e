package slice4d

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit  Category = iota // ray hit a primitive
	Miss                 // ray fell through to the background
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// TraceStats counts traced rays per category; only fed when Debug is set.
type TraceStats struct {
	mu     sync.Mutex
	counts map[Category]int
}

var stats = &TraceStats{counts: make(map[Category]int)}

func (ts *TraceStats) record(c Category) {
	ts.mu.Lock()
	ts.counts[c]++
	ts.mu.Unlock()
}

// reset returns the counts gathered so far and starts over.
func (ts *TraceStats) reset() map[Category]int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := ts.counts
	ts.counts = make(map[Category]int)
	return out
}

func raysStats() {
	counts := stats.reset()
	keys := make([]Category, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Printf("Ray type %s: %d rays\n", k, counts[k])
	}
}
