package rawtext

import (
	"fmt"
	"strings"
)

// separatorLine is the fixed 80 character report separator.
var separatorLine = strings.Repeat("+-", 40)

// A TextRenderer renders a collected field mapping into the fixed,
// sectioned plain text report layout. Rendering iterates fields sorted by
// name, so output is deterministic regardless of insertion order.
type TextRenderer struct{}

// Render produces the report text for one field mapping, ending with a
// trailing blank line. Render is total for any mapping produced by a
// Collector; a mapping without the reserved timestamp key violates the
// collector/renderer contract and panics.
func (TextRenderer) Render(m *FieldMapping) string {
	timestamp, ok := m.Get(timestampKey)
	if !ok {
		panic("rawtext: field mapping has no timestamp")
	}

	var reserved, additional []string
	for _, name := range m.Names() {
		switch name {
		case identifierKey, tagLabelsKey, timestampKey, pathSpecKey:
			continue
		}
		value, _ := m.Get(name)
		line := fmt.Sprintf("  {%s} %s", name, value)
		if isReservedAttribute(name) {
			reserved = append(reserved, line)
		} else {
			additional = append(additional, line)
		}
	}

	lines := []string{
		separatorLine,
		"[Timestamp]:",
		"  " + timestamp,
	}

	if ps := m.PathSpec(); ps != nil {
		lines = append(lines, "", "[Pathspec]:")
		for _, line := range strings.Split(ps.Comparable(), "\n") {
			lines = append(lines, "  "+line)
		}
		// The comparable form ends with a newline; drop the blank line it
		// produces so the next section is not preceded by two blanks.
		lines = lines[:len(lines)-1]
	}

	lines = append(lines, "", "[Reserved attributes]:")
	lines = append(lines, reserved...)

	lines = append(lines, "", "[Additional attributes]:")
	lines = append(lines, additional...)

	if labels := m.Labels(); len(labels) > 0 {
		quoted := make([]string, 0, len(labels))
		for _, label := range labels {
			quoted = append(quoted, "'"+label+"'")
		}
		lines = append(lines, "", "[Tag]:",
			fmt.Sprintf("  {labels} [%s]", strings.Join(quoted, ", ")))
	}

	lines = append(lines, "")

	return strings.Join(lines, "\n") + "\n"
}
