package queries

import (
	"context"
	"time"

	"parklot/internal/pkg/errs"
)

// Read-side report views. These aggregate closed tickets directly in SQL and
// never touch the write-side entities.

type RevenueReport struct {
	From          time.Time
	To            time.Time
	TicketCount   int64
	RevenueCents  int64
	AverageCharge float64
}

type StallUsage struct {
	Stall       string
	TicketCount int64
}

type ReportReadStore interface {
	RevenueBetween(ctx context.Context, from, to time.Time) (*RevenueReport, error)
	StallUsageBetween(ctx context.Context, from, to time.Time) ([]*StallUsage, error)
}

type ReportQueries interface {
	GetRevenueReport(ctx context.Context, from, to time.Time) (*RevenueReport, error)
	GetStallUsageReport(ctx context.Context, from, to time.Time) ([]*StallUsage, error)
}

var ErrInvalidReportPeriod = errs.New("report period end must be after start")

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) GetRevenueReport(ctx context.Context, from, to time.Time) (*RevenueReport, error) {
	if !to.After(from) {
		return nil, ErrInvalidReportPeriod
	}
	report, err := q.store.RevenueBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate revenue")
	}
	return report, nil
}

func (q *reportQueriesImpl) GetStallUsageReport(ctx context.Context, from, to time.Time) ([]*StallUsage, error) {
	if !to.After(from) {
		return nil, ErrInvalidReportPeriod
	}
	usage, err := q.store.StallUsageBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate stall usage")
	}
	return usage, nil
}
