package rawtext

import (
	"sort"

	"github.com/hashicorp/go-secure-stdlib/strutil"
)

// Reserved internal keys. The identifier and timestamp keys hold mandatory
// display strings; the tag labels and path spec keys mark values the
// renderer consumes structurally rather than as attribute lines.
const (
	identifierKey = "_event_identifier"
	tagLabelsKey  = "_event_tag_labels"
	timestampKey  = "_timestamp"
	pathSpecKey   = "path_spec"
)

// ReservedAttributeNames are the field names rendered under the reserved
// attributes section of a report. Every other field is an additional
// attribute.
var ReservedAttributeNames = []string{
	"body", "data_type", "display_name", "filename", "hostname",
	"http_headers", "inode", "mapped_files", "metadata", "offset",
	"parser", "path_spec", "query", "source_long", "source_short",
	"tag", "text_prepended", "timestamp", "timestamp_desc", "timezone",
	"user_sid", "username", "version",
}

func isReservedAttribute(name string) bool {
	return strutil.StrListContains(ReservedAttributeNames, name)
}

// A FieldMapping is the intermediate artifact between collection and
// rendering: display strings per unique field name, plus the structural
// values only the renderer consumes. A mapping is built fresh per record,
// owned by the single rendering call that consumes it, and is not safe for
// concurrent use.
type FieldMapping struct {
	values   map[string]string
	labels   []string
	pathSpec PathSpec
}

func newFieldMapping() *FieldMapping {
	return &FieldMapping{values: make(map[string]string)}
}

// Set stores a display string, overwriting any earlier write for the name.
func (m *FieldMapping) Set(name, value string) {
	m.values[name] = value
}

// Get returns the display string stored for name.
func (m *FieldMapping) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether a display string is stored for name.
func (m *FieldMapping) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Names returns the stored field names sorted by name, independent of
// insertion order.
func (m *FieldMapping) Names() []string {
	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Labels returns the tag labels, or nil when the record carried no tag.
func (m *FieldMapping) Labels() []string {
	return m.labels
}

func (m *FieldMapping) setLabels(labels []string) {
	m.labels = labels
}

// PathSpec returns the record's path specification, or nil.
func (m *FieldMapping) PathSpec() PathSpec {
	return m.pathSpec
}

func (m *FieldMapping) setPathSpec(ps PathSpec) {
	m.pathSpec = ps
}
