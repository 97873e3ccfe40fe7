package app

import (
	"context"
	"fmt"

	"github.com/neurofleetx/fleetops/config"
	corealert "github.com/neurofleetx/fleetops/core/alert"
	"github.com/neurofleetx/fleetops/core/geo"
	"github.com/neurofleetx/fleetops/core/loadbalance"
	coremetrics "github.com/neurofleetx/fleetops/core/metrics"
	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/core/routing"
	"github.com/neurofleetx/fleetops/core/sim"
	corestore "github.com/neurofleetx/fleetops/core/store"
	"github.com/neurofleetx/fleetops/infra/alert"
	"github.com/neurofleetx/fleetops/infra/logger"
	"github.com/neurofleetx/fleetops/infra/metrics"
	"github.com/neurofleetx/fleetops/infra/mqtt"
	"github.com/neurofleetx/fleetops/infra/store"
	"github.com/neurofleetx/fleetops/internal/eventbus"
)

// Service wires the simulator, stores and sinks together.
type Service struct {
	Planner   *routing.Planner
	Balancer  loadbalance.Balancer
	Store     corestore.VehicleStore
	Simulator *sim.Simulator
	AlertBus  *eventbus.Bus[model.Alert]

	log         logger.Logger
	mqttClient  *mqtt.PahoClient
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	svc := &Service{
		Planner:  routing.NewPlanner(geo.NewCityGraph(), nil),
		AlertBus: eventbus.New[model.Alert](),
		log:      logg,
	}

	st, err := buildStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	svc.Store = st

	sinks := []corealert.Sink{
		alert.NewLogSink(logger.New("alerts")),
		alert.NewBusSink(svc.AlertBus),
	}
	if cfg.MQTT.Enabled {
		client, err := mqtt.NewPahoClient(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.mqttClient = client
		sinks = append(sinks, alert.NewMQTTSink(client, logger.New("mqtt-alert-sink")))
	}
	alertSink := corealert.NewMultiSink(sinks...)

	var teleSinks []coremetrics.TelemetrySink
	svc.promEnabled = cfg.Metrics.PrometheusEnabled
	svc.promPort = cfg.Metrics.PrometheusPort
	if svc.promEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		teleSinks = append(teleSinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		teleSinks = append(teleSinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var teleSink coremetrics.TelemetrySink
	switch len(teleSinks) {
	case 0:
		teleSink = coremetrics.NopSink{}
	case 1:
		teleSink = teleSinks[0]
	default:
		teleSink = metrics.NewMultiSink(teleSinks...)
	}

	svc.Simulator = sim.New(st, alertSink, teleSink, logger.New("simulator"), cfg.Simulator)
	return svc, nil
}

func buildStore(cfg store.Config) (corestore.VehicleStore, error) {
	switch cfg.Backend {
	case "memory":
		if cfg.SeedDemoFleet {
			return store.NewDemoStore(), nil
		}
		return store.NewMemoryStore(), nil
	case "postgres":
		st, err := store.NewPostgresStore(context.Background(), cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("postgres store: %w", err)
		}
		return st, nil
	case "redis":
		st, err := store.NewRedisStore(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Run starts the simulator and the metrics endpoint, blocking until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.Simulator.Run(ctx)
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, ":"+s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.AlertBus.Close()
	if s.mqttClient != nil {
		s.mqttClient.Close()
	}
	if c, ok := s.Store.(interface{ Close() }); ok {
		c.Close()
	} else if c, ok := s.Store.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}
