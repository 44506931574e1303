package journal

import (
	"bufio"
	"io"
	"strings"
	"time"
)

// PromptFunc writes a prompt to the user. It matches the signature of
// output.Printer.Print so commands can pass the printer straight through.
type PromptFunc func(format string, args ...any)

// collectState identifies which level of the entry the collector is reading.
type collectState int

const (
	collectingItems collectState = iota
	collectingSubItems
)

// Collector reads categorized items from a line source. It is a two-state
// machine with a single transition rule per state: a blank line pops the
// state, a non-blank line appends and stays. Tests drive it with a fixed
// reader instead of a terminal.
type Collector struct {
	scanner *bufio.Scanner
	promptf PromptFunc
}

// NewCollector creates a Collector reading lines from r. A nil promptf
// disables prompts.
func NewCollector(r io.Reader, promptf PromptFunc) *Collector {
	if promptf == nil {
		promptf = func(string, ...any) {}
	}
	return &Collector{
		scanner: bufio.NewScanner(r),
		promptf: promptf,
	}
}

// Collect runs the prompt loop for each category in order and returns the
// entry for date. Categories with no items are omitted entirely, so section
// order in the result matches the configured category order.
func (c *Collector) Collect(date time.Time, categories []string) *Entry {
	entry := &Entry{Date: date}
	for _, category := range categories {
		items := c.collectItems(category)
		if len(items) > 0 {
			entry.Sections = append(entry.Sections, Section{Category: category, Items: items})
		}
	}
	return entry
}

// collectItems reads the items (and their sub-items) for one category until
// a blank line at the item level. Input is trimmed before the blank check,
// so a whitespace-only line terminates a list. Exhausted input ends the
// category like a blank line would.
func (c *Collector) collectItems(category string) []Item {
	c.promptf("\n%s:\n", category)

	var items []Item
	state := collectingItems
	for {
		switch state {
		case collectingItems:
			c.promptf("> ")
		case collectingSubItems:
			c.promptf("  - ")
		}

		line, ok := c.readLine()
		if !ok {
			return items
		}

		switch state {
		case collectingItems:
			if line == "" {
				return items
			}
			items = append(items, Item{Text: line})
			state = collectingSubItems
		case collectingSubItems:
			if line == "" {
				state = collectingItems
				continue
			}
			last := &items[len(items)-1]
			last.SubItems = append(last.SubItems, line)
		}
	}
}

// readLine returns the next trimmed line, or ok=false when input is
// exhausted.
func (c *Collector) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}
