//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"parklot/internal/domain/reservation"
	"parklot/internal/domain/vehicle"
	"parklot/internal/pkg/clock"
	"parklot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationEnv struct {
	uow         *fakeUoW
	clock       *clock.MockClock
	reservation usecase.ReservationUseCase
}

func newReservationEnv() *reservationEnv {
	uow := newFakeUoW()
	clk := clock.NewMockClock(testNow)
	return &reservationEnv{
		uow:         uow,
		clock:       clk,
		reservation: usecase.NewReservationUseCase(uow, clk),
	}
}

func (e *reservationEnv) seedVehicle(t *testing.T, plate string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(plate, "Corolla", "silver")
	require.NoError(t, err)
	e.uow.tx.vehicles.byPlate[v.Plate()] = v
	return v
}

func createParams(plate, stall string, start, end time.Time) usecase.CreateReservationParams {
	return usecase.CreateReservationParams{Plate: plate, Stall: stall, Start: start, End: end}
}

func TestReservationUseCase_CreateReservation(t *testing.T) {
	ctx := context.Background()
	start := testNow.Add(time.Hour)
	end := testNow.Add(3 * time.Hour)

	t.Run("books a free stall", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		created, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusActive, created.Status())
		assert.Equal(t, "A-01", created.Stall())
		assert.Equal(t, start, created.Window().Start())
		assert.Equal(t, end, created.Window().End())
	})

	t.Run("requires a registered vehicle", func(t *testing.T) {
		env := newReservationEnv()

		_, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		assert.ErrorIs(t, err, usecase.ErrVehicleNotFound)
	})

	t.Run("rejects a window starting in the past", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		_, err := env.reservation.CreateReservation(ctx,
			createParams("abc1d23", "A-01", testNow.Add(-time.Minute), end))
		assert.ErrorIs(t, err, usecase.ErrInvalidReservationWindow)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		_, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", end, start))
		assert.ErrorIs(t, err, usecase.ErrInvalidReservationWindow)
	})

	t.Run("rejects an overlap on the same stall", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")
		env.seedVehicle(t, "xyz9k88")

		_, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		_, err = env.reservation.CreateReservation(ctx,
			createParams("xyz9k88", "A-01", start.Add(time.Hour), end.Add(time.Hour)))
		assert.ErrorIs(t, err, usecase.ErrReservationConflict)
	})

	t.Run("back-to-back windows on the same stall do not conflict", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")
		env.seedVehicle(t, "xyz9k88")

		_, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		_, err = env.reservation.CreateReservation(ctx,
			createParams("xyz9k88", "A-01", end, end.Add(2*time.Hour)))
		assert.NoError(t, err)
	})

	t.Run("same window on another stall does not conflict", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")
		env.seedVehicle(t, "xyz9k88")

		_, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		_, err = env.reservation.CreateReservation(ctx, createParams("xyz9k88", "A-02", start, end))
		assert.NoError(t, err)
	})

	t.Run("a cancelled reservation frees its window", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")
		env.seedVehicle(t, "xyz9k88")

		first, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)
		require.NoError(t, env.reservation.CancelReservation(ctx, first.ID()))

		_, err = env.reservation.CreateReservation(ctx, createParams("xyz9k88", "A-01", start, end))
		assert.NoError(t, err)
	})
}

func TestReservationUseCase_Transitions(t *testing.T) {
	ctx := context.Background()
	start := testNow.Add(time.Hour)
	end := testNow.Add(3 * time.Hour)

	t.Run("cancel", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		created, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		require.NoError(t, env.reservation.CancelReservation(ctx, created.ID()))

		stored, err := env.reservation.GetReservation(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, stored.Status())
	})

	t.Run("cancel twice", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		created, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)
		require.NoError(t, env.reservation.CancelReservation(ctx, created.ID()))

		err = env.reservation.CancelReservation(ctx, created.ID())
		assert.ErrorIs(t, err, usecase.ErrReservationNotActive)
	})

	t.Run("cancel losing a race to a concurrent transition", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		created, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)
		env.uow.tx.reservations.conflictUpdate = map[uuid.UUID]bool{created.ID(): true}

		err = env.reservation.CancelReservation(ctx, created.ID())
		assert.ErrorIs(t, err, usecase.ErrReservationNotActive)
	})

	t.Run("cancel unknown reservation", func(t *testing.T) {
		env := newReservationEnv()
		err := env.reservation.CancelReservation(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})

	t.Run("mark used inside the window", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		created, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		env.clock.Set(start.Add(time.Minute))
		require.NoError(t, env.reservation.MarkReservationUsed(ctx, created.ID()))

		stored, err := env.reservation.GetReservation(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusUsed, stored.Status())
	})

	t.Run("mark used before the window opens", func(t *testing.T) {
		env := newReservationEnv()
		env.seedVehicle(t, "abc1d23")

		created, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
		require.NoError(t, err)

		err = env.reservation.MarkReservationUsed(ctx, created.ID())
		assert.ErrorIs(t, err, usecase.ErrOutOfReservationWindow)
	})
}

func TestReservationUseCase_Listing(t *testing.T) {
	ctx := context.Background()
	start := testNow.Add(time.Hour)
	end := testNow.Add(3 * time.Hour)

	env := newReservationEnv()
	env.seedVehicle(t, "abc1d23")
	env.seedVehicle(t, "xyz9k88")

	first, err := env.reservation.CreateReservation(ctx, createParams("abc1d23", "A-01", start, end))
	require.NoError(t, err)
	_, err = env.reservation.CreateReservation(ctx, createParams("xyz9k88", "A-02", start, end))
	require.NoError(t, err)

	t.Run("all active", func(t *testing.T) {
		active, err := env.reservation.ListActiveReservations(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 2)
	})

	t.Run("filtered by plate", func(t *testing.T) {
		mine, err := env.reservation.ListReservationsForPlate(ctx, "abc1d23")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, first.ID(), mine[0].ID())
	})

	t.Run("unknown plate", func(t *testing.T) {
		_, err := env.reservation.ListReservationsForPlate(ctx, "nope000")
		assert.ErrorIs(t, err, usecase.ErrVehicleNotFound)
	})
}
