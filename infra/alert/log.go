package alert

import (
	"context"

	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/infra/logger"
)

// LogSink writes alerts through the structured logger, mapping severity to
// log level.
type LogSink struct {
	log logger.Logger
}

// NewLogSink creates a LogSink. A nil logger defaults to the "alerts"
// component.
func NewLogSink(log logger.Logger) *LogSink {
	if log == nil {
		log = logger.New("alerts")
	}
	return &LogSink{log: log}
}

func (s *LogSink) Record(_ context.Context, a model.Alert) {
	switch a.Severity {
	case model.SeverityCritical:
		s.log.Errorf("[%s] %s: %s", a.VehicleID, a.Kind, a.Message)
	case model.SeverityHigh:
		s.log.Warnf("[%s] %s: %s", a.VehicleID, a.Kind, a.Message)
	default:
		s.log.Infof("[%s] %s: %s", a.VehicleID, a.Kind, a.Message)
	}
}
