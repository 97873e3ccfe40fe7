package alert

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/infra/logger"
)

type fakePublisher struct {
	topics   []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(topic string, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakePublisher) Close() {}

func TestMQTTSinkPublishesPerVehicleTopic(t *testing.T) {
	pub := &fakePublisher{}
	s := NewMQTTSink(pub, logger.NopLogger{})
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	s.Record(context.Background(), model.Alert{
		VehicleID: "veh-7",
		Kind:      "Overspeeding",
		Message:   "Vehicle exceeded 100 km/h (Speed: 104.20 km/h)",
		Severity:  model.SeverityHigh,
	})

	if len(pub.topics) != 1 {
		t.Fatalf("published %d messages, want 1", len(pub.topics))
	}
	if pub.topics[0] != "fleet/alerts/veh-7" {
		t.Fatalf("topic = %s", pub.topics[0])
	}
	var msg Message
	if err := json.Unmarshal(pub.payloads[0], &msg); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if msg.Severity != "High" || msg.Kind != "Overspeeding" || msg.AlertID == "" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.Timestamp != 1700000000000 {
		t.Fatalf("timestamp = %d", msg.Timestamp)
	}
}

func TestMQTTSinkSwallowsPublishErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker gone")}
	s := NewMQTTSink(pub, logger.NopLogger{})
	// Must not panic or propagate: alerts are fire-and-forget.
	s.Record(context.Background(), model.Alert{VehicleID: "v1", Kind: "Low Battery", Severity: model.SeverityCritical})
}

func TestLogSinkLevels(t *testing.T) {
	s := NewLogSink(logger.NopLogger{})
	for _, sev := range []model.AlertSeverity{model.SeverityCritical, model.SeverityHigh, model.SeverityMedium} {
		s.Record(context.Background(), model.Alert{VehicleID: "v1", Kind: "k", Severity: sev})
	}
}
