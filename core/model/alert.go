package model

// AlertSeverity orders alerts by urgency.
type AlertSeverity int

const (
	SeverityMedium AlertSeverity = iota
	SeverityHigh
	SeverityCritical
)

func (s AlertSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// Alert is a threshold crossing reported by the simulator. Alerts are
// fire-and-forget: they are handed to the configured sinks and never block a
// telemetry pass.
type Alert struct {
	VehicleID string
	Kind      string
	Message   string
	Severity  AlertSeverity
}
