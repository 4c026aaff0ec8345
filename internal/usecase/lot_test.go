//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"parklot/internal/domain/billing"
	"parklot/internal/pkg/clock"
	"parklot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lotEnv struct {
	uow    *fakeUoW
	lot    usecase.LotUseCase
	ticket usecase.TicketUseCase
}

func newLotEnv() *lotEnv {
	uow := newFakeUoW()
	calc := billing.NewCalculator()
	clk := clock.NewMockClock(testNow)
	return &lotEnv{
		uow:    uow,
		lot:    usecase.NewLotUseCase(uow, calc),
		ticket: usecase.NewTicketUseCase(uow, calc, clk),
	}
}

func saveParams(totalStalls int32) usecase.SaveConfigurationParams {
	return usecase.SaveConfigurationParams{
		TotalStalls:    totalStalls,
		Fraction30Rate: 500,
		HourlyRate:     800,
		DailyRate:      4000,
		MonthlyRate:    60000,
	}
}

func TestLotUseCase_SaveConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("first save becomes the active configuration", func(t *testing.T) {
		env := newLotEnv()

		saved, err := env.lot.SaveConfiguration(ctx, saveParams(50))
		require.NoError(t, err)
		assert.True(t, saved.IsActive())

		active, err := env.lot.GetActiveConfiguration(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved.ID(), active.ID())
	})

	t.Run("saving again replaces the active configuration", func(t *testing.T) {
		env := newLotEnv()

		first, err := env.lot.SaveConfiguration(ctx, saveParams(50))
		require.NoError(t, err)

		second, err := env.lot.SaveConfiguration(ctx, saveParams(80))
		require.NoError(t, err)

		active, err := env.lot.GetActiveConfiguration(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.ID(), active.ID())
		assert.Equal(t, int32(80), active.TotalStalls())
		assert.False(t, first.IsActive())
	})

	t.Run("non-positive stall count", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.SaveConfiguration(ctx, saveParams(0))
		assert.ErrorIs(t, err, usecase.ErrInvalidConfiguration)
	})

	t.Run("negative rate", func(t *testing.T) {
		env := newLotEnv()
		params := saveParams(50)
		params.HourlyRate = -800
		_, err := env.lot.SaveConfiguration(ctx, params)
		assert.ErrorIs(t, err, usecase.ErrInvalidConfiguration)
	})
}

func TestLotUseCase_GetOccupancy(t *testing.T) {
	ctx := context.Background()

	t.Run("no configuration", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.GetOccupancy(ctx)
		assert.ErrorIs(t, err, usecase.ErrConfigurationMissing)
	})

	t.Run("counts open tickets against the configured total", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.SaveConfiguration(ctx, saveParams(3))
		require.NoError(t, err)

		_, err = env.ticket.CheckIn(ctx, usecase.CheckInParams{Plate: "abc1d23", Stall: "A-01"})
		require.NoError(t, err)
		opened, err := env.ticket.CheckIn(ctx, usecase.CheckInParams{Plate: "xyz9k88", Stall: "A-02"})
		require.NoError(t, err)

		occ, err := env.lot.GetOccupancy(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(2), occ.Occupied())
		assert.Equal(t, int32(1), occ.Free())
		assert.False(t, occ.IsFull())

		_, err = env.ticket.CheckOut(ctx, opened.ID())
		require.NoError(t, err)

		occ, err = env.lot.GetOccupancy(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(1), occ.Occupied())
	})
}

func TestLotUseCase_CalculateTariff(t *testing.T) {
	ctx := context.Background()
	entry := testNow
	exit := testNow.Add(90 * time.Minute)

	t.Run("prices against the active rates", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.SaveConfiguration(ctx, saveParams(50))
		require.NoError(t, err)

		charge, err := env.lot.CalculateTariff(ctx, entry, exit, billing.KindFraction30)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), charge.Cents())
	})

	t.Run("invalid kind", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.CalculateTariff(ctx, entry, exit, billing.TariffKind("WEEKLY"))
		assert.ErrorIs(t, err, usecase.ErrInvalidTariffKind)
	})

	t.Run("exit equal to entry", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.SaveConfiguration(ctx, saveParams(50))
		require.NoError(t, err)

		_, err = env.lot.CalculateTariff(ctx, entry, entry, billing.KindHourly)
		assert.ErrorIs(t, err, usecase.ErrInvalidStayPeriod)
	})

	t.Run("exit before entry", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.SaveConfiguration(ctx, saveParams(50))
		require.NoError(t, err)

		_, err = env.lot.CalculateTariff(ctx, exit, entry, billing.KindHourly)
		assert.ErrorIs(t, err, usecase.ErrInvalidStayPeriod)
	})

	t.Run("no configuration", func(t *testing.T) {
		env := newLotEnv()
		_, err := env.lot.CalculateTariff(ctx, entry, exit, billing.KindHourly)
		assert.ErrorIs(t, err, usecase.ErrConfigurationMissing)
	})
}

func TestLotUseCase_SuggestTariff(t *testing.T) {
	env := newLotEnv()
	assert.Equal(t, billing.KindFraction30, env.lot.SuggestTariff(45*time.Minute))
	assert.Equal(t, billing.KindHourly, env.lot.SuggestTariff(4*time.Hour))
	assert.Equal(t, billing.KindDaily, env.lot.SuggestTariff(26*time.Hour))
}
