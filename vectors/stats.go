package vectors

import (
	"strconv"

	"github.com/fpverif/go-fp-golden/golden"
	"github.com/fpverif/go-fp-golden/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Stats counts flags, classifications and operations over a run
type Stats struct {
	Records int
	Skipped int
	Flags   map[string]int
	Classes map[golden.Class]int
	Ops     map[types.Operation]int
	// Patterns counts distinct five character flag vectors
	Patterns map[string]int
}

func NewStats() *Stats {
	return &Stats{
		Flags:    make(map[string]int),
		Classes:  make(map[golden.Class]int),
		Ops:      make(map[types.Operation]int),
		Patterns: make(map[string]int),
	}
}

// Add tallies one outcome. Failed outcomes only count as skipped.
func (s *Stats) Add(o Outcome) {
	if o.Err != nil {
		s.Skipped++
		return
	}
	s.Records++
	s.Classes[o.Class]++
	s.Ops[o.Op]++
	s.Patterns[o.Result.Flags.String()]++
	for i, set := range o.Result.Flags.Slice() {
		if set {
			s.Flags[types.FlagNames[i]]++
		}
	}
}

// Merge adds the counts of o into s
func (s *Stats) Merge(o *Stats) {
	s.Records += o.Records
	s.Skipped += o.Skipped
	for k, v := range o.Flags {
		s.Flags[k] += v
	}
	for k, v := range o.Classes {
		s.Classes[k] += v
	}
	for k, v := range o.Ops {
		s.Ops[k] += v
	}
	for k, v := range o.Patterns {
		s.Patterns[k] += v
	}
}

// Rows renders the counts as (section, key, count) rows: flags in wire
// order, every class including unseen ones, then operations and flag
// vectors in sorted order.
func (s *Stats) Rows() [][]string {
	rows := [][]string{
		{"records", "valid", strconv.Itoa(s.Records)},
		{"records", "skipped", strconv.Itoa(s.Skipped)},
	}
	for _, name := range types.FlagNames {
		rows = append(rows, []string{"flag", name, strconv.Itoa(s.Flags[name])})
	}

	for _, c := range golden.Classes {
		rows = append(rows, []string{"class", c.String(), strconv.Itoa(s.Classes[c])})
	}

	ops := maps.Keys(s.Ops)
	slices.Sort(ops)
	for _, op := range ops {
		rows = append(rows, []string{"op", op.String(), strconv.Itoa(s.Ops[op])})
	}

	patterns := maps.Keys(s.Patterns)
	slices.Sort(patterns)
	for _, p := range patterns {
		rows = append(rows, []string{"flags", p, strconv.Itoa(s.Patterns[p])})
	}
	return rows
}
