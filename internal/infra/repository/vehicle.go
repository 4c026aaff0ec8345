package repository

import (
	"context"
	"time"

	"parklot/internal/domain/vehicle"
	"parklot/internal/infra/db"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, plate, model, color, created_at
		 FROM vehicles
		 WHERE plate = upper(trim($1))`,
		plate,
	)

	var (
		id           uuid.UUID
		dbPlate      string
		model, color string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &dbPlate, &model, &color, &createdAt); err != nil {
		return nil, wrapReadErr("vehicle not found", err)
	}

	return vehicle.ReconstructVehicle(id, dbPlate, model, color, createdAt), nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vehicles (id, plate, model, color)
		 VALUES ($1, $2, $3, $4)`,
		v.ID(), v.Plate(), v.Model(), v.Color(),
	)
	if err != nil {
		return wrapWriteErr("failed to create vehicle", err)
	}
	return nil
}
