package rawtext

import (
	"fmt"
	"strings"
)

// PathSpec is an opaque structured locator for a file or data stream. The
// renderer relies only on its comparable multi-line string form, which ends
// with a newline.
type PathSpec interface {
	Comparable() string
}

// FSPathSpec locates a path within a file system, optionally layered on a
// parent specification (e.g. a partition inside an image).
type FSPathSpec struct {
	Type     string
	Location string
	Parent   PathSpec
}

var _ PathSpec = FSPathSpec{}

// Comparable returns one "type: ..., location: ..." line per layer, parent
// layers first.
func (p FSPathSpec) Comparable() string {
	var sb strings.Builder
	if p.Parent != nil {
		sb.WriteString(p.Parent.Comparable())
	}
	fmt.Fprintf(&sb, "type: %s, location: %s\n", p.Type, p.Location)
	return sb.String()
}
