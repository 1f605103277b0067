// Package skills turns static skill tags into animated progress bars.
package skills

import (
	"fmt"
	"sort"
)

const DefaultPercent = 75

// Table maps a skill label to its percentage. Lookups are exact.
type Table struct {
	percents       map[string]int
	defaultPercent int
}

// NewTable copies entries and rejects percentages outside 0-100.
func NewTable(entries map[string]int, defaultPercent int) (*Table, error) {
	if defaultPercent < 0 || defaultPercent > 100 {
		return nil, fmt.Errorf("default percent %d out of range", defaultPercent)
	}
	percents := make(map[string]int, len(entries))
	for label, pct := range entries {
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("skill %q: percent %d out of range", label, pct)
		}
		percents[label] = pct
	}
	return &Table{percents: percents, defaultPercent: defaultPercent}, nil
}

// Lookup returns the percentage for label and whether it was listed.
func (t *Table) Lookup(label string) (int, bool) {
	if pct, ok := t.percents[label]; ok {
		return pct, true
	}
	return t.defaultPercent, false
}

func (t *Table) Percent(label string) int {
	pct, _ := t.Lookup(label)
	return pct
}

func (t *Table) Default() int { return t.defaultPercent }

func (t *Table) Len() int { return len(t.percents) }

// Entry is one row of a table.
type Entry struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// Entries lists the table sorted by label.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.percents))
	for label, pct := range t.percents {
		out = append(out, Entry{Label: label, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
