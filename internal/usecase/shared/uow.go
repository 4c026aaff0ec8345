package shared

import "context"

// UnitOfWork scopes repository work to one atomic unit. Within runs fn inside
// a ReadCommitted transaction; WithDB hands out autocommit repositories for
// reads and single-statement writes that must not hold a transaction open.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the repositories bound to one transaction (or to the pool for
// autocommit access).
type Tx interface {
	Configs() ConfigRepository
	Vehicles() VehicleRepository
	Tickets() TicketRepository
	Reservations() ReservationRepository
}
