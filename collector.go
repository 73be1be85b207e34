package rawtext

import (
	"fmt"
	"sort"
)

// A Collector extracts and normalizes a flat field mapping from an event
// record's raw attributes, resolving a small set of well known fields
// through the fallback resolver when they are absent.
type Collector struct {
	// Resolver computes well known fields absent from raw attributes.
	// Optional; without one absent fields stay absent.
	Resolver FallbackFieldResolver

	// Reporter receives byte decoding warnings. Defaults to NopReporter.
	Reporter WarningReporter
}

// Collect builds the field mapping for one event record. It fails only
// when the record's identifier or timestamp cannot be materialized;
// attribute level anomalies are normalized locally and never abort
// collection.
func (c *Collector) Collect(record *EventRecord, data *EventData, stream *EventDataStream, tag *EventTag) (*FieldMapping, error) {
	const op = "rawtext.(Collector).Collect"
	switch {
	case record == nil:
		return nil, fmt.Errorf("%s: missing event record", op)
	case data == nil:
		return nil, fmt.Errorf("%s: missing event data", op)
	case record.Identifier == nil:
		return nil, fmt.Errorf("%s: event record has no identifier", op)
	case record.Timestamp == nil:
		return nil, fmt.Errorf("%s: event record has no timestamp", op)
	}

	m := newFieldMapping()
	m.Set(identifierKey, record.Identifier.String())
	m.Set(timestampKey, copyToISO8601(*record.Timestamp))

	attributes := make([]Attribute, 0, len(data.Attributes))
	attributes = append(attributes, data.Attributes...)
	if stream != nil {
		attributes = append(attributes, stream.Attributes...)
	}
	// Stable keeps data stream entries after event data entries for equal
	// names, so the stream's write wins.
	sort.SliceStable(attributes, func(i, j int) bool {
		return attributes[i].Name < attributes[j].Name
	})

	for _, attr := range attributes {
		v := attr.Value

		// Ignore attribute container identifiers and date and time values.
		if v.Kind == KindIdentifier || v.timestampLike() {
			continue
		}

		if attr.Name == pathSpecKey && v.Kind == KindPathSpec {
			m.setPathSpec(v.PathSpec)
			continue
		}

		// Some parsers have written bytes values to storage.
		if v.Kind == KindBytes {
			decoded := decodeBytes(v.Bytes)
			c.reporter().ReportWarning(DecodeWarning{
				Attribute: attr.Name,
				DataType:  data.DataType,
				Value:     decoded,
			})
			m.Set(attr.Name, decoded)
			continue
		}

		m.Set(attr.Name, v.String())
	}

	if c.Resolver != nil {
		for _, name := range wellKnownFields {
			if m.Has(name) {
				continue
			}
			m.Set(name, c.Resolver.ResolveField(record, data, stream, tag, name))
		}
	}

	if tag != nil {
		m.setLabels(tag.Labels)
	}

	return m, nil
}

func (c *Collector) reporter() WarningReporter {
	if c.Reporter != nil {
		return c.Reporter
	}
	return NopReporter{}
}
