package sim

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/neurofleetx/fleetops/core/alert"
	"github.com/neurofleetx/fleetops/core/logger"
	"github.com/neurofleetx/fleetops/core/metrics"
	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/core/store"
)

// Simulation thresholds.
const (
	idleDrainPct      = 0.1
	maxSpeedKmh       = 120
	overspeedKmh      = 100
	serviceDistanceKm = 1000
)

// Simulator advances every vehicle's physical and operational state on a
// fixed period, persisting each vehicle immediately after its own update and
// raising alerts at defined thresholds. It is the only background task in
// the system.
//
// Ticks are serialized: if a pass is still running when the ticker fires
// again, that firing is skipped rather than overlapped, so two passes never
// mutate the same vehicle rows concurrently.
type Simulator struct {
	store  store.VehicleStore
	alerts alert.Sink
	sink   metrics.TelemetrySink
	log    logger.Logger
	period time.Duration

	now func() time.Time
	rng *rand.Rand

	inTick atomic.Bool
}

// New creates a Simulator. Nil alert or metrics sinks become no-ops.
func New(st store.VehicleStore, alerts alert.Sink, sink metrics.TelemetrySink, log logger.Logger, cfg Config) *Simulator {
	if alerts == nil {
		alerts = alert.NopSink{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Simulator{
		store:  st,
		alerts: alerts,
		sink:   sink,
		log:    log,
		period: time.Duration(cfg.PeriodSeconds) * time.Second,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetClock replaces the wall clock, for deterministic tests.
func (s *Simulator) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// SetRand replaces the random source, for deterministic tests.
func (s *Simulator) SetRand(rng *rand.Rand) {
	if rng != nil {
		s.rng = rng
	}
}

// Run ticks until the context is cancelled. A failed or panicking tick is
// contained at this boundary so the next scheduled tick still fires.
func (s *Simulator) Run(ctx context.Context) {
	s.log.Infof("telemetry simulator started, period %s", s.period)
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Infof("telemetry simulator stopped")
			return
		case <-ticker.C:
			if !s.inTick.CompareAndSwap(false, true) {
				s.log.Warnf("previous tick still running, skipping this one")
				continue
			}
			go func() {
				defer s.inTick.Store(false)
				s.safeTick(ctx)
			}()
		}
	}
}

func (s *Simulator) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("tick panicked: %v", r)
		}
	}()
	if err := s.Tick(ctx); err != nil {
		s.log.Errorf("tick failed: %v", err)
	}
}

// Tick performs one full pass over all vehicles. A failure updating a single
// vehicle is logged and does not abort the rest of the pass.
func (s *Simulator) Tick(ctx context.Context) error {
	started := s.now()
	vehicles, err := s.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load vehicles: %w", err)
	}
	for i := range vehicles {
		if err := s.updateVehicle(ctx, vehicles[i]); err != nil {
			s.log.Errorf("update vehicle %s: %v", vehicles[i].ID, err)
		}
	}
	if err := s.sink.RecordTickDuration(s.now().Sub(started), len(vehicles)); err != nil {
		s.log.Warnf("record tick duration: %v", err)
	}
	return nil
}

// updateVehicle runs the per-vehicle state machine and writes the vehicle
// back immediately, not batched at the end of the pass.
func (s *Simulator) updateVehicle(ctx context.Context, v model.Vehicle) error {
	s.updateBattery(ctx, &v)
	s.updateMovement(ctx, &v)
	v.LastUpdate = s.now()

	if err := s.store.Save(ctx, v); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := s.sink.RecordVehicleState(v); err != nil {
		s.log.Warnf("record vehicle state %s: %v", v.ID, err)
	}
	return nil
}

func (s *Simulator) updateBattery(ctx context.Context, v *model.Vehicle) {
	switch v.Status {
	case model.StatusInUse:
		drain := 1.0 + s.rng.Float64() // uniform [1.0, 2.0)
		v.BatteryPct -= drain
		if v.BatteryPct <= 0 {
			v.BatteryPct = 0
			v.Status = model.StatusMaintenance
			s.emit(ctx, *v, "Low Battery", "Battery Depleted. Vehicle moved to Maintenance.", model.SeverityCritical)
		}
	case model.StatusIdle:
		v.BatteryPct -= idleDrainPct
		if v.BatteryPct < 0 {
			v.BatteryPct = 0
		}
	}
	// Maintenance and Needs Service leave the battery untouched; rounding
	// applies regardless of branch.
	v.ClampBattery()
}

func (s *Simulator) updateMovement(ctx context.Context, v *model.Vehicle) {
	if v.Status != model.StatusInUse {
		v.SpeedKmh = 0
		return
	}

	speed := s.rng.Float64() * maxSpeedKmh
	v.SpeedKmh = math.Round(speed*100) / 100
	if speed > overspeedKmh {
		s.emit(ctx, *v, "Overspeeding",
			fmt.Sprintf("Vehicle exceeded 100 km/h (Speed: %.2f km/h)", speed), model.SeverityHigh)
	}

	tickDistance := speed * (s.period.Seconds() / 3600.0)
	v.TotalDistanceKm += tickDistance
	v.DistanceSinceServiceKm += tickDistance

	if v.DistanceSinceServiceKm > serviceDistanceKm &&
		v.Status != model.StatusMaintenance && v.Status != model.StatusNeedsService {
		v.Status = model.StatusNeedsService
		s.emit(ctx, *v, "Maintenance Required",
			"Vehicle has covered 1000km since last service.", model.SeverityMedium)
	}
}

func (s *Simulator) emit(ctx context.Context, v model.Vehicle, kind, msg string, sev model.AlertSeverity) {
	a := model.Alert{VehicleID: v.ID, Kind: kind, Message: msg, Severity: sev}
	s.alerts.Record(ctx, a)
	if err := s.sink.RecordAlert(a); err != nil {
		s.log.Warnf("record alert metric: %v", err)
	}
	s.log.Debugw("alert emitted", map[string]any{
		"vehicle_id": v.ID,
		"kind":       kind,
		"severity":   sev.String(),
	})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
