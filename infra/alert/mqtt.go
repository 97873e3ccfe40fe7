package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/infra/logger"
	"github.com/neurofleetx/fleetops/infra/mqtt"
)

// TopicPrefix is the base of the per-vehicle alert topics.
const TopicPrefix = "fleet/alerts"

// Message is the JSON payload published for each alert.
type Message struct {
	AlertID   string `json:"alert_id"`
	VehicleID string `json:"vehicle_id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Timestamp int64  `json:"timestamp"`
}

// MQTTSink publishes alerts to fleet/alerts/<vehicleID>. Publish failures
// are logged, never surfaced; alerts are fire-and-forget.
type MQTTSink struct {
	pub mqtt.Publisher
	log logger.Logger
	now func() time.Time
}

// NewMQTTSink wraps a connected publisher.
func NewMQTTSink(pub mqtt.Publisher, log logger.Logger) *MQTTSink {
	if log == nil {
		log = logger.New("mqtt-alert-sink")
	}
	return &MQTTSink{pub: pub, log: log, now: time.Now}
}

func (s *MQTTSink) Record(_ context.Context, a model.Alert) {
	msg := Message{
		AlertID:   uuid.NewString(),
		VehicleID: a.VehicleID,
		Kind:      a.Kind,
		Message:   a.Message,
		Severity:  a.Severity.String(),
		Timestamp: s.now().UnixMilli(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Errorf("marshal alert: %v", err)
		return
	}
	topic := fmt.Sprintf("%s/%s", TopicPrefix, a.VehicleID)
	if err := s.pub.Publish(topic, payload); err != nil {
		s.log.Errorf("publish alert to %s: %v", topic, err)
	}
}
