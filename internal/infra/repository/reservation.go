package repository

import (
	"context"
	"time"

	"parklot/internal/domain/reservation"
	"parklot/internal/infra"
	"parklot/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const reservationColumns = `id, vehicle_id, stall, starts_at, ends_at, status, reserved_at, updated_at`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`,
		id,
	)
	res, err := scanReservation(row)
	if err != nil {
		return nil, wrapReadErr("reservation not found", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindActiveForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reservationColumns+`
		 FROM reservations
		 WHERE vehicle_id = $1 AND status = $2
		 ORDER BY starts_at`,
		vehicleID, reservation.StatusActive.String(),
	)
	if err != nil {
		return nil, wrapReadErr("failed to list active reservations for vehicle", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) ExistsActiveOverlap(ctx context.Context, stall string, window reservation.Window) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM reservations
		   WHERE stall = $1 AND status = $2
		     AND $3 < ends_at AND starts_at < $4
		 )`,
		stall, reservation.StatusActive.String(), window.Start(), window.End(),
	).Scan(&exists)
	if err != nil {
		return false, wrapReadErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) FindActiveEndedBefore(ctx context.Context, t time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reservationColumns+`
		 FROM reservations
		 WHERE status = $1 AND ends_at < $2
		 ORDER BY ends_at`,
		reservation.StatusActive.String(), t,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list expired reservations", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) ListActive(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reservationColumns+`
		 FROM reservations
		 WHERE status = $1
		 ORDER BY starts_at`,
		reservation.StatusActive.String(),
	)
	if err != nil {
		return nil, wrapReadErr("failed to list active reservations", err)
	}
	return collectReservations(rows)
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reservations
		   (id, vehicle_id, stall, starts_at, ends_at, status, reserved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID(), res.VehicleID(), res.Stall(),
		res.Window().Start(), res.Window().End(),
		res.Status().String(), res.ReservedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to create reservation", err)
	}
	return nil
}

// Update commits a status transition. Every transition leaves ACTIVE, so the
// status guard makes a lost race match zero rows instead of overwriting a
// terminal status written by a concurrent cancel, use or expire.
func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now()
		 WHERE id = $1 AND status = $3`,
		res.ID(), res.Status().String(), reservation.StatusActive.String(),
	)
	if err != nil {
		return wrapWriteErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation is no longer active", nil, infra.KindConflict)
	}
	return nil
}

func collectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, wrapReadErr("failed to scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate reservations", err)
	}
	return reservations, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, vehicleID         uuid.UUID
		stall                 string
		startsAt, endsAt      time.Time
		status                string
		reservedAt, updatedAt time.Time
	)
	err := row.Scan(&id, &vehicleID, &stall, &startsAt, &endsAt, &status, &reservedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, vehicleID, stall,
		reservation.ReconstructWindow(startsAt, endsAt),
		reservation.Status(status),
		reservedAt, updatedAt,
	), nil
}
