package rawtext

import (
	"fmt"

	"github.com/hashicorp/go-uuid"
)

// Identifier is an opaque record identifier that can be materialized as a
// stable string.
type Identifier interface {
	String() string
}

// StoreIdentifier identifies a record by its position within a storage file.
type StoreIdentifier struct {
	Store int
	Index int
}

func (id StoreIdentifier) String() string {
	return fmt.Sprintf("%d/%d", id.Store, id.Index)
}

// UUIDIdentifier identifies a record that did not come out of a storage
// file.
type UUIDIdentifier string

func (id UUIDIdentifier) String() string {
	return string(id)
}

// NewUUIDIdentifier mints a random record identifier.
func NewUUIDIdentifier() (UUIDIdentifier, error) {
	const op = "rawtext.NewUUIDIdentifier"
	s, err := uuid.GenerateUUID()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return UUIDIdentifier(s), nil
}

// An EventRecord is one observed, timestamped occurrence. Timestamp is a
// POSIX timestamp in microseconds; a nil Timestamp means the record carries
// no materializable time, which is fatal to collection.
type EventRecord struct {
	Identifier Identifier
	Timestamp  *int64
}

// EventData carries an event's data type and its open, per record attribute
// set.
type EventData struct {
	DataType   string
	Attributes []Attribute
}

// EventDataStream is an optional companion to EventData. When present its
// attributes are merged into the same field space as EventData's and are
// processed after them, so they win on name collisions.
type EventDataStream struct {
	Attributes []Attribute
}

// EventTag carries the ordered labels attached to an event.
type EventTag struct {
	Labels []string
}

// Attribute is a named value attached to event data or its data stream.
type Attribute struct {
	Name  string
	Value Value
}
