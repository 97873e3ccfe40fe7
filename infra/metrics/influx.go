package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/neurofleetx/fleetops/core/metrics"
	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/infra/logger"
)

// InfluxSink writes fleet telemetry to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.TelemetrySink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordVehicleState writes a snapshot of a vehicle.
func (s *InfluxSink) RecordVehicleState(v model.Vehicle) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("vehicle_state").
		AddTag("vehicle_id", v.ID).
		AddTag("status", v.Status.String()).
		AddField("battery_pct", round3(v.BatteryPct)).
		AddField("speed_kmh", round3(v.SpeedKmh)).
		AddField("lat", v.Position.Lat).
		AddField("lng", v.Position.Lng).
		AddField("total_distance_km", round3(v.TotalDistanceKm)).
		AddField("distance_since_service_km", round3(v.DistanceSinceServiceKm)).
		SetTime(v.LastUpdate)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordAlert writes an alert event.
func (s *InfluxSink) RecordAlert(a model.Alert) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("fleet_alert").
		AddTag("vehicle_id", a.VehicleID).
		AddTag("kind", a.Kind).
		AddTag("severity", a.Severity.String()).
		AddField("message", a.Message).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordTickDuration writes the duration of a simulation pass.
func (s *InfluxSink) RecordTickDuration(d time.Duration, vehicles int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("telemetry_tick").
		AddTag("component", "simulator").
		AddField("duration_ms", round3(d.Seconds()*1000)).
		AddField("vehicles", vehicles).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts the underlying client down.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
