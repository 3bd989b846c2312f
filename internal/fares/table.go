// Package fares holds the stop-to-stop fare table used to charge trips.
package fares

import (
	"errors"
	"fmt"
	"strings"
)

// Entry prices travel between two stops in either direction.
type Entry struct {
	StopA  string
	StopB  string
	Amount float64
}

// Touches reports whether stop is one end of the entry.
func (e Entry) Touches(stop string) bool {
	return e.StopA == stop || e.StopB == stop
}

// Connects reports whether the entry's unordered pair is {a, b}.
func (e Entry) Connects(a, b string) bool {
	return (e.StopA == a && e.StopB == b) || (e.StopA == b && e.StopB == a)
}

// Table is an immutable fare table. It is safe for concurrent reads.
type Table struct {
	entries []Entry
}

// NewTable validates entries and builds a Table. A pair listed twice with the
// same amount is kept once; with different amounts it is rejected.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("fare table must have at least one entry")
	}

	table := &Table{entries: make([]Entry, 0, len(entries))}
	for i, entry := range entries {
		entry.StopA = strings.TrimSpace(entry.StopA)
		entry.StopB = strings.TrimSpace(entry.StopB)

		switch {
		case entry.StopA == "" || entry.StopB == "":
			return nil, fmt.Errorf("fare entry %d: stop ids cannot be empty", i)
		case entry.StopA == entry.StopB:
			return nil, fmt.Errorf("fare entry %d: stops must differ, got %q twice", i, entry.StopA)
		case entry.Amount < 0:
			return nil, fmt.Errorf("fare entry %d: amount cannot be negative, got %.2f", i, entry.Amount)
		}

		if existing, ok := table.find(entry.StopA, entry.StopB); ok {
			if existing.Amount != entry.Amount {
				return nil, fmt.Errorf("fare entry %d: %s-%s listed with both %.2f and %.2f",
					i, entry.StopA, entry.StopB, existing.Amount, entry.Amount)
			}
			continue
		}
		table.entries = append(table.entries, entry)
	}

	return table, nil
}

// DefaultEntries is the built-in fare table.
func DefaultEntries() []Entry {
	return []Entry{
		{StopA: "Stop1", StopB: "Stop2", Amount: 3.25},
		{StopA: "Stop2", StopB: "Stop3", Amount: 5.50},
		{StopA: "Stop1", StopB: "Stop3", Amount: 7.30},
	}
}

// DefaultTable builds the table from DefaultEntries.
func DefaultTable() *Table {
	table, err := NewTable(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return table
}

// FareBetween returns the fare of the entry connecting a and b, in either order.
func (t *Table) FareBetween(a, b string) (float64, error) {
	entry, ok := t.find(a, b)
	if !ok {
		return 0, &FareNotFoundError{FromStopID: a, ToStopID: b}
	}
	return entry.Amount, nil
}

// MaxFareFrom returns the highest fare among entries touching stop.
func (t *Table) MaxFareFrom(stop string) (float64, error) {
	found := false
	var highest float64
	for _, entry := range t.entries {
		if !entry.Touches(stop) {
			continue
		}
		if !found || entry.Amount > highest {
			highest = entry.Amount
			found = true
		}
	}
	if !found {
		return 0, &FareNotFoundError{FromStopID: stop}
	}
	return highest, nil
}

// Entries returns a copy of the table's entries in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Stops lists every stop id the table prices, in order of first appearance.
func (t *Table) Stops() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, entry := range t.entries {
		for _, id := range []string{entry.StopA, entry.StopB} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Len is the number of distinct stop pairs.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) find(a, b string) (Entry, bool) {
	for _, entry := range t.entries {
		if entry.Connects(a, b) {
			return entry, true
		}
	}
	return Entry{}, false
}
