package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neurofleetx/fleetops/core/model"
)

// PostgresStore persists vehicles in a PostgreSQL table using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and verifies the connection.
func NewPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// LoadAll reads every vehicle ordered by ID.
func (s *PostgresStore) LoadAll(ctx context.Context) ([]model.Vehicle, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, type, fuel_type, status, battery_pct, speed_kmh,
		       lat, lng, distance_since_service_km, total_distance_km, last_update
		FROM vehicles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var out []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		var status string
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.FuelType, &status,
			&v.BatteryPct, &v.SpeedKmh, &v.Position.Lat, &v.Position.Lng,
			&v.DistanceSinceServiceKm, &v.TotalDistanceKm, &v.LastUpdate); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		st, err := model.ParseVehicleStatus(status)
		if err != nil {
			return nil, fmt.Errorf("vehicle %s: %w", v.ID, err)
		}
		v.Status = st
		out = append(out, v)
	}
	return out, rows.Err()
}

// Save upserts the telemetry columns of a single vehicle.
func (s *PostgresStore) Save(ctx context.Context, v model.Vehicle) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO vehicles (id, name, type, fuel_type, status, battery_pct, speed_kmh,
		                      lat, lng, distance_since_service_km, total_distance_km, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			battery_pct = EXCLUDED.battery_pct,
			speed_kmh = EXCLUDED.speed_kmh,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			distance_since_service_km = EXCLUDED.distance_since_service_km,
			total_distance_km = EXCLUDED.total_distance_km,
			last_update = EXCLUDED.last_update`,
		v.ID, v.Name, v.Type, v.FuelType, v.Status.String(), v.BatteryPct, v.SpeedKmh,
		v.Position.Lat, v.Position.Lng, v.DistanceSinceServiceKm, v.TotalDistanceKm, v.LastUpdate)
	if err != nil {
		return fmt.Errorf("upsert vehicle %s: %w", v.ID, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
