// Package nutrition holds the static food reference table.
// Entries carry energy and macronutrient values per 100 g of product and
// are loaded once at startup; the table is read-only afterwards.
package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// Entry describes a single food product. All values are per 100 g.
type Entry struct {
	// Name is the canonical, lowercase product name. Unique within a table.
	Name string
	// Calories is the energy value in kcal per 100 g.
	Calories float64
	// Protein, Fat and Carbs are grams per 100 g of product.
	Protein float64
	Fat     float64
	Carbs   float64
}

// CaloriesFor returns the rounded energy value for the given quantity in
// grams. Rounding is half-up, matching how totals are displayed to users.
func (e *Entry) CaloriesFor(grams float64) int {
	return int(math.Round(e.Calories * grams / 100))
}

// ProteinFor, FatFor and CarbsFor scale macronutrients the same way but
// keep one decimal of precision.
func (e *Entry) ProteinFor(grams float64) float64 { return scale(e.Protein, grams) }
func (e *Entry) FatFor(grams float64) float64     { return scale(e.Fat, grams) }
func (e *Entry) CarbsFor(grams float64) float64   { return scale(e.Carbs, grams) }

func scale(per100 float64, grams float64) float64 {
	return math.Round(per100*grams/10) / 10
}

// Table is an insertion-ordered collection of entries. Order matters:
// lookup tie-breaks are defined as "first entry in the table wins", so
// iteration must be deterministic.
type Table struct {
	byName map[string]*Entry
	names  []string
}

// NewTable builds a table from the given entries.
// Duplicate names or negative values are rejected.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{byName: make(map[string]*Entry, len(entries))}
	for i := range entries {
		e := entries[i]
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name == "" {
			return nil, fmt.Errorf("entry %d: empty name", i)
		}
		if e.Calories < 0 || e.Protein < 0 || e.Fat < 0 || e.Carbs < 0 {
			return nil, fmt.Errorf("entry %q: negative nutrition value", name)
		}
		if _, ok := t.byName[name]; ok {
			return nil, fmt.Errorf("entry %q: duplicate name", name)
		}
		e.Name = name
		t.byName[name] = &e
		t.names = append(t.names, name)
	}
	return t, nil
}

// Default returns the built-in table. It panics on an invalid data set,
// which can only happen through a programming error in defaultEntries.
func Default() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(fmt.Sprintf("nutrition: invalid built-in table: %v", err))
	}
	return t
}

// Get returns the entry with the exact canonical name, or nil.
func (t *Table) Get(name string) *Entry {
	return t.byName[strings.ToLower(name)]
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.names) }

// Names returns entry names in insertion order. The returned slice must
// not be modified.
func (t *Table) Names() []string { return t.names }

// Each calls fn for every entry in insertion order until fn returns false.
func (t *Table) Each(fn func(*Entry) bool) {
	for _, name := range t.names {
		if !fn(t.byName[name]) {
			return
		}
	}
}
