package journal

import (
	"fmt"
	"strings"
)

// Render formats an entry as the markdown block appended to its month file.
// Deterministic: the same entry always yields the same bytes.
//
// Layout: a blank line, the "## YYYY-MM-DD" day header, a blank line, then
// one "### <category>" heading per non-empty section with its bullets, each
// section followed by a blank line. Sub-items are indented four spaces.
func Render(entry *Entry) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\n## %s\n\n", entry.Date.Format("2006-01-02"))

	for _, section := range entry.Sections {
		if len(section.Items) == 0 {
			continue
		}
		fmt.Fprintf(&builder, "### %s\n", section.Category)
		for _, item := range section.Items {
			fmt.Fprintf(&builder, "* %s\n", item.Text)
			for _, sub := range item.SubItems {
				fmt.Fprintf(&builder, "    * %s\n", sub)
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
