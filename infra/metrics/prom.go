package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/neurofleetx/fleetops/core/metrics"
	"github.com/neurofleetx/fleetops/core/model"
)

// PromSink exposes fleet telemetry as Prometheus metrics.
type PromSink struct {
	battery  *prometheus.GaugeVec
	speed    *prometheus.GaugeVec
	alerts   *prometheus.CounterVec
	tick     prometheus.Histogram
	vehicles prometheus.Gauge
}

// NewPromSink registers fleet metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	battery := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_vehicle_battery_percent",
		Help: "Latest battery level per vehicle",
	}, []string{"vehicle_id"})
	speed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_vehicle_speed_kmh",
		Help: "Latest speed per vehicle",
	}, []string{"vehicle_id"})
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_alerts_total",
		Help: "Total number of telemetry alerts emitted",
	}, []string{"kind", "severity"})
	tick := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "telemetry_tick_duration_seconds",
		Help:    "Duration of a full simulation pass over the fleet",
		Buckets: prometheus.DefBuckets,
	})
	vehicles := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_vehicles_total",
		Help: "Number of vehicles covered by the last tick",
	})

	if err := reg.Register(battery); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			battery = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(speed); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			speed = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(alerts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			alerts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(tick); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			tick = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(vehicles); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			vehicles = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{battery: battery, speed: speed, alerts: alerts, tick: tick, vehicles: vehicles}, nil
}

// RecordVehicleState updates the per-vehicle gauges.
func (s *PromSink) RecordVehicleState(v model.Vehicle) error {
	s.battery.WithLabelValues(v.ID).Set(v.BatteryPct)
	s.speed.WithLabelValues(v.ID).Set(v.SpeedKmh)
	return nil
}

// RecordAlert counts the alert by kind and severity.
func (s *PromSink) RecordAlert(a model.Alert) error {
	s.alerts.WithLabelValues(a.Kind, a.Severity.String()).Inc()
	return nil
}

// RecordTickDuration observes the tick duration and fleet size.
func (s *PromSink) RecordTickDuration(d time.Duration, vehicles int) error {
	s.tick.Observe(d.Seconds())
	s.vehicles.Set(float64(vehicles))
	return nil
}
