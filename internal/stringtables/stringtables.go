// Package stringtables is a minimal stand-in for the demo's string-table
// maintenance, the collaborator spec.md §6 names as the producer of
// instance baselines: "a string table named 'instancebaseline'". Real
// string tables also carry class names, user info, and similar
// replay-global metadata; only the name->(string, blob) shape
// internal/instancebaseline consumes is modeled here.
package stringtables

// Entry is one string-table row: a display string plus an optional
// associated byte blob.
type Entry struct {
	String string
	Blob   []byte
}

// Table is a named collection of string-keyed entries.
type Table struct {
	Name    string
	entries map[string]Entry
}

// New returns an empty table with the given name.
func New(name string) *Table {
	return &Table{Name: name, entries: make(map[string]Entry)}
}

// Update inserts or overwrites the entry at key.
func (t *Table) Update(key string, entry Entry) {
	t.entries[key] = entry
}

// Get looks up the entry at key.
func (t *Table) Get(key string) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Iter calls fn for every entry, in unspecified order, stopping early if
// fn returns false.
func (t *Table) Iter(fn func(key string, entry Entry) bool) {
	for k, e := range t.entries {
		if !fn(k, e) {
			return
		}
	}
}

// Len reports how many entries the table holds.
func (t *Table) Len() int {
	return len(t.entries)
}
