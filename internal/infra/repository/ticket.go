package repository

import (
	"context"
	"time"

	"parklot/internal/domain/billing"
	"parklot/internal/domain/ticket"
	"parklot/internal/infra"
	"parklot/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

const ticketColumns = `id, vehicle_id, stall, entry_at, exit_at, status,
	tariff_kind, reservation_id, charge_cents, updated_at`

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`,
		id,
	)
	t, err := scanTicket(row)
	if err != nil {
		return nil, wrapReadErr("ticket not found", err)
	}
	return t, nil
}

func (r *TicketRepository) CountOpen(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM tickets WHERE status = $1`,
		ticket.StatusOpen.String(),
	).Scan(&count)
	if err != nil {
		return 0, wrapReadErr("failed to count open tickets", err)
	}
	return count, nil
}

func (r *TicketRepository) ExistsOpenForVehicle(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM tickets WHERE vehicle_id = $1 AND status = $2
		 )`,
		vehicleID, ticket.StatusOpen.String(),
	).Scan(&exists)
	if err != nil {
		return false, wrapReadErr("failed to check open ticket", err)
	}
	return exists, nil
}

func (r *TicketRepository) ListOpen(ctx context.Context) ([]*ticket.Ticket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+ticketColumns+`
		 FROM tickets
		 WHERE status = $1
		 ORDER BY entry_at`,
		ticket.StatusOpen.String(),
	)
	if err != nil {
		return nil, wrapReadErr("failed to list open tickets", err)
	}
	defer rows.Close()

	var tickets []*ticket.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, wrapReadErr("failed to scan ticket", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate tickets", err)
	}
	return tickets, nil
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tickets
		   (id, vehicle_id, stall, entry_at, status, tariff_kind, reservation_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID(), t.VehicleID(), t.Stall(), t.EntryAt(),
		t.Status().String(), t.TariffKind().String(), t.ReservationID(),
	)
	if err != nil {
		return wrapWriteErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	var chargeCents *int64
	if c := t.Charge(); c != nil {
		cents := c.Cents()
		chargeCents = &cents
	}

	// Guard on OPEN so a concurrent close wins and this write matches nothing.
	tag, err := r.db.Exec(ctx,
		`UPDATE tickets
		 SET exit_at = $2, status = $3, charge_cents = $4, updated_at = now()
		 WHERE id = $1 AND status = $5`,
		t.ID(), t.ExitAt(), t.Status().String(), chargeCents,
		ticket.StatusOpen.String(),
	)
	if err != nil {
		return wrapWriteErr("failed to update ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket is no longer open", nil, infra.KindConflict)
	}
	return nil
}

func scanTicket(row pgx.Row) (*ticket.Ticket, error) {
	var (
		id, vehicleID uuid.UUID
		stall         string
		entryAt       time.Time
		exitAt        *time.Time
		status        string
		tariffKind    string
		reservationID *uuid.UUID
		chargeCents   *int64
		updatedAt     time.Time
	)
	err := row.Scan(&id, &vehicleID, &stall, &entryAt, &exitAt, &status,
		&tariffKind, &reservationID, &chargeCents, &updatedAt)
	if err != nil {
		return nil, err
	}

	var charge *billing.Money
	if chargeCents != nil {
		m := billing.MustMoney(*chargeCents)
		charge = &m
	}

	return ticket.ReconstructTicket(
		id, vehicleID, stall, entryAt, exitAt,
		ticket.Status(status), billing.TariffKind(tariffKind),
		reservationID, charge, updatedAt,
	), nil
}
