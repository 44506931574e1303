// Package journal provides the work-log entry model, the interactive
// collector, markdown rendering, and the append-only month-file store.
package journal

import "time"

// Item is one logged bullet under a category. An item with no sub-items
// renders as a single bullet; sub-items render as second-level bullets
// beneath it, in collection order.
type Item struct {
	Text     string
	SubItems []string
}

// Section holds the items collected for one category. Section order and
// item order are preserved exactly as collected.
type Section struct {
	Category string
	Items    []Item
}

// Entry is the full set of categorized items logged for one calendar date.
// Entries are transient: only the rendered markdown persists.
type Entry struct {
	Date     time.Time
	Sections []Section
}
