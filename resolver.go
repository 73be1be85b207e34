package rawtext

import "fmt"

// wellKnownFields are resolved through the fallback resolver when absent
// from raw attributes.
var wellKnownFields = []string{"display_name", "filename", "inode"}

// FallbackFieldResolver computes a display value for a well known field
// that is absent from a record's raw attributes. Implementations must be
// total: an unknown or uncomputable field resolves to an empty or best
// effort string, never an error. Resolution must not mutate the record and
// must be safe to call multiple times per record.
type FallbackFieldResolver interface {
	ResolveField(record *EventRecord, data *EventData, stream *EventDataStream, tag *EventTag, fieldName string) string
}

// FallbackFieldResolverFunc adapts a function to the FallbackFieldResolver
// interface.
type FallbackFieldResolverFunc func(record *EventRecord, data *EventData, stream *EventDataStream, tag *EventTag, fieldName string) string

func (f FallbackFieldResolverFunc) ResolveField(record *EventRecord, data *EventData, stream *EventDataStream, tag *EventTag, fieldName string) string {
	return f(record, data, stream, tag, fieldName)
}

// DisplayFieldResolver derives display_name and filename from the path
// specification attached to a record's raw attributes, when one is present.
// Everything else resolves empty.
type DisplayFieldResolver struct{}

var _ FallbackFieldResolver = DisplayFieldResolver{}

func (DisplayFieldResolver) ResolveField(record *EventRecord, data *EventData, stream *EventDataStream, tag *EventTag, fieldName string) string {
	switch fieldName {
	case "display_name":
		if ps, ok := attachedPathSpec(data, stream).(FSPathSpec); ok {
			return fmt.Sprintf("%s:%s", ps.Type, ps.Location)
		}
	case "filename":
		if ps, ok := attachedPathSpec(data, stream).(FSPathSpec); ok {
			return ps.Location
		}
	}
	return ""
}

// attachedPathSpec finds a path specification among raw attributes, data
// stream first since its attributes take precedence.
func attachedPathSpec(data *EventData, stream *EventDataStream) PathSpec {
	if stream != nil {
		for _, attr := range stream.Attributes {
			if attr.Name == pathSpecKey && attr.Value.Kind == KindPathSpec {
				return attr.Value.PathSpec
			}
		}
	}
	if data != nil {
		for _, attr := range data.Attributes {
			if attr.Name == pathSpecKey && attr.Value.Kind == KindPathSpec {
				return attr.Value.PathSpec
			}
		}
	}
	return nil
}
