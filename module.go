package rawtext

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-secure-stdlib/base62"
)

// FormatName is the name this output format registers under.
const FormatName = "rawtext"

// Config configures an OutputModule. Zero values select the defaults: a
// DisplayFieldResolver fallback and a NopReporter.
type Config struct {
	Resolver FallbackFieldResolver
	Reporter WarningReporter
}

// An OutputModule ties a collector, a renderer and a sink into the per
// record write path: collect the field mapping, render it, append one
// report to the sink. Processing is synchronous; the module holds no state
// across records.
type OutputModule struct {
	id        string
	collector *Collector
	renderer  TextRenderer
	sink      Sink
}

// NewOutputModule builds an output module writing to sink. A nil Config
// selects the defaults.
func NewOutputModule(sink Sink, c *Config) (*OutputModule, error) {
	const op = "rawtext.NewOutputModule"
	if sink == nil {
		return nil, fmt.Errorf("%s: missing sink", op)
	}
	if c == nil {
		c = &Config{}
	}

	resolver := c.Resolver
	if resolver == nil {
		resolver = DisplayFieldResolver{}
	}
	reporter := c.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	id, err := base62.Random(8)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m := &OutputModule{
		id:   id,
		sink: sink,
	}
	m.collector = &Collector{
		Resolver: resolver,
		Reporter: stampModule(reporter, m.Name()),
	}
	return m, nil
}

// Name returns the module's format name qualified with its instance ID.
func (m *OutputModule) Name() string {
	return fmt.Sprintf("%s-%s", FormatName, m.id)
}

// WriteEvent processes one record end to end. Record level structural
// violations (missing identifier or timestamp) are returned; attribute
// level anomalies are normalized by the collector and never abort the
// record.
func (m *OutputModule) WriteEvent(ctx context.Context, record *EventRecord, data *EventData, stream *EventDataStream, tag *EventTag) error {
	const op = "rawtext.(OutputModule).WriteEvent"

	fields, err := m.collector.Collect(record, data, stream, tag)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	text := m.renderer.Render(fields)

	if err := m.sink.WriteReport(ctx, text); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// A QueuedEvent bundles one record with its companion containers for batch
// writes.
type QueuedEvent struct {
	Record *EventRecord
	Data   *EventData
	Stream *EventDataStream
	Tag    *EventTag
}

// WriteEvents writes a batch of records, continuing past per record
// failures and returning them aggregated.
func (m *OutputModule) WriteEvents(ctx context.Context, events []*QueuedEvent) error {
	var result *multierror.Error
	for _, qe := range events {
		if err := m.WriteEvent(ctx, qe.Record, qe.Data, qe.Stream, qe.Tag); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// stampModule wraps a reporter so emitted warnings carry the module name.
func stampModule(r WarningReporter, name string) WarningReporter {
	return WarningReporterFunc(func(w DecodeWarning) {
		w.Module = name
		r.ReportWarning(w)
	})
}
