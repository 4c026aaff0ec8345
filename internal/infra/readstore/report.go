// Package readstore holds query-side SQL that aggregates directly over the
// tables and bypasses the write-side entities.
package readstore

import (
	"context"
	"time"

	"parklot/internal/domain/ticket"
	"parklot/internal/infra"
	"parklot/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportReadStore struct {
	pool *pgxpool.Pool
}

func NewReportReadStore(pool *pgxpool.Pool) *ReportReadStore {
	return &ReportReadStore{pool: pool}
}

// RevenueBetween aggregates closed tickets whose exit falls in [from, to).
func (s *ReportReadStore) RevenueBetween(ctx context.Context, from, to time.Time) (*queries.RevenueReport, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT count(*), coalesce(sum(charge_cents), 0)
		 FROM tickets
		 WHERE status = $1 AND exit_at >= $2 AND exit_at < $3`,
		ticket.StatusClosed.String(), from, to,
	)

	report := &queries.RevenueReport{From: from, To: to}
	if err := row.Scan(&report.TicketCount, &report.RevenueCents); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue", err)
	}

	if report.TicketCount > 0 {
		report.AverageCharge = float64(report.RevenueCents) / float64(report.TicketCount) / 100
	}
	return report, nil
}

func (s *ReportReadStore) StallUsageBetween(ctx context.Context, from, to time.Time) ([]*queries.StallUsage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT stall, count(*)
		 FROM tickets
		 WHERE entry_at >= $1 AND entry_at < $2
		 GROUP BY stall
		 ORDER BY count(*) DESC, stall`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate stall usage", err)
	}
	defer rows.Close()

	var usage []*queries.StallUsage
	for rows.Next() {
		u := &queries.StallUsage{}
		if err := rows.Scan(&u.Stall, &u.TicketCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stall usage", err)
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stall usage", err)
	}
	return usage, nil
}
