package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neurofleetx/fleetops/core/model"
)

const (
	redisIDSet     = "fleet:vehicles"
	redisKeyPrefix = "fleet:vehicle:"
)

// vehicleRecord is the JSON shape stored per vehicle.
type vehicleRecord struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name"`
	Type                   string         `json:"type"`
	FuelType               string         `json:"fuel_type"`
	Status                 string         `json:"status"`
	BatteryPct             float64        `json:"battery_pct"`
	SpeedKmh               float64        `json:"speed_kmh"`
	Position               model.GeoPoint `json:"position"`
	DistanceSinceServiceKm float64        `json:"distance_since_service_km"`
	TotalDistanceKm        float64        `json:"total_distance_km"`
	LastUpdate             time.Time      `json:"last_update"`
}

// RedisStore persists vehicles as JSON values indexed by a sorted ID set.
type RedisStore struct {
	cli *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	cli := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("verify redis connection: %w", err)
	}
	return &RedisStore{cli: cli}, nil
}

// NewRedisStoreFromClient wraps an existing client, used by tests.
func NewRedisStoreFromClient(cli *redis.Client) *RedisStore {
	return &RedisStore{cli: cli}
}

// LoadAll reads every vehicle in ID order.
func (s *RedisStore) LoadAll(ctx context.Context) ([]model.Vehicle, error) {
	ids, err := s.cli.ZRange(ctx, redisIDSet, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list vehicle ids: %w", err)
	}
	out := make([]model.Vehicle, 0, len(ids))
	for _, id := range ids {
		raw, err := s.cli.Get(ctx, redisKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("read vehicle %s: %w", id, err)
		}
		var rec vehicleRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode vehicle %s: %w", id, err)
		}
		v, err := rec.vehicle()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Save writes the vehicle JSON and registers its ID. Last write wins.
func (s *RedisStore) Save(ctx context.Context, v model.Vehicle) error {
	rec := vehicleRecord{
		ID:                     v.ID,
		Name:                   v.Name,
		Type:                   v.Type,
		FuelType:               v.FuelType,
		Status:                 v.Status.String(),
		BatteryPct:             v.BatteryPct,
		SpeedKmh:               v.SpeedKmh,
		Position:               v.Position,
		DistanceSinceServiceKm: v.DistanceSinceServiceKm,
		TotalDistanceKm:        v.TotalDistanceKm,
		LastUpdate:             v.LastUpdate,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode vehicle %s: %w", v.ID, err)
	}
	pipe := s.cli.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+v.ID, raw, 0)
	pipe.ZAdd(ctx, redisIDSet, redis.Z{Score: 0, Member: v.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write vehicle %s: %w", v.ID, err)
	}
	return nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.cli.Close()
}

func (r vehicleRecord) vehicle() (model.Vehicle, error) {
	st, err := model.ParseVehicleStatus(r.Status)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("vehicle %s: %w", r.ID, err)
	}
	return model.Vehicle{
		ID:                     r.ID,
		Name:                   r.Name,
		Type:                   r.Type,
		FuelType:               r.FuelType,
		Status:                 st,
		BatteryPct:             r.BatteryPct,
		SpeedKmh:               r.SpeedKmh,
		Position:               r.Position,
		DistanceSinceServiceKm: r.DistanceSinceServiceKm,
		TotalDistanceKm:        r.TotalDistanceKm,
		LastUpdate:             r.LastUpdate,
	}, nil
}
