package rawtext

// A DecodeWarning describes a non-fatal attribute normalization: a raw
// bytes value was converted to UTF-8 with replacement of invalid sequences.
type DecodeWarning struct {
	// Attribute is the name of the attribute that carried the bytes value.
	Attribute string

	// DataType is the data type of the event data being collected.
	DataType string

	// Value is the recovered UTF-8 string.
	Value string

	// Module is the name of the output module processing the record, when
	// the warning was emitted through one.
	Module string
}

// WarningReporter receives decode warnings from a Collector. Reporting must
// not fail; collection continues regardless of what the reporter does.
type WarningReporter interface {
	ReportWarning(w DecodeWarning)
}

// WarningReporterFunc adapts a function to the WarningReporter interface.
type WarningReporterFunc func(w DecodeWarning)

func (f WarningReporterFunc) ReportWarning(w DecodeWarning) {
	f(w)
}

// NopReporter discards warnings.
type NopReporter struct{}

var _ WarningReporter = NopReporter{}

func (NopReporter) ReportWarning(DecodeWarning) {}
