// Package logrus bridges decode warnings to a sirupsen/logrus logger for
// hosts that want warnings on a real structured log instead of a custom
// reporter.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/dfirtools/rawtext"
)

// Reporter forwards decode warnings to a logrus logger as structured
// warning entries.
type Reporter struct {
	// Logger receives the warnings. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

var _ rawtext.WarningReporter = (*Reporter)(nil)

func New(logger logrus.FieldLogger) *Reporter {
	return &Reporter{Logger: logger}
}

func (r *Reporter) ReportWarning(w rawtext.DecodeWarning) {
	logger := r.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithFields(logrus.Fields{
		"attribute": w.Attribute,
		"data_type": w.DataType,
		"value":     w.Value,
		"module":    w.Module,
	}).Warn("found bytes value for attribute, converted to UTF-8")
}
