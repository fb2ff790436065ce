package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	booker := createTestUser(t, db, "Booker", "booker@example.com")
	item := createTestItem(t, db, owner.ID, "Дрель", true)

	t.Run("CreateAndGet", func(t *testing.T) {
		booking := createTestBooking(t, db, item.ID, booker.ID, now.Add(time.Hour), now.Add(2*time.Hour), models.StatusWaiting)
		assert.NotZero(t, booking.ID)

		got, err := db.GetBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusWaiting, got.Status)
		assert.Equal(t, item.ID, got.ItemID)
		assert.Equal(t, "Дрель", got.ItemName)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.True(t, got.Start.Equal(now.Add(time.Hour)))
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := db.GetBooking(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		booking := createTestBooking(t, db, item.ID, booker.ID, now.Add(3*time.Hour), now.Add(4*time.Hour), models.StatusWaiting)
		require.NoError(t, db.UpdateBookingStatus(ctx, booking.ID, models.StatusApproved))

		got, err := db.GetBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got.Status)
	})

	t.Run("UpdateStatusMissing", func(t *testing.T) {
		err := db.UpdateBookingStatus(ctx, 9999, models.StatusApproved)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingsFiltered(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	booker := createTestUser(t, db, "Booker", "booker@example.com")
	item := createTestItem(t, db, owner.ID, "Дрель", true)

	past := createTestBooking(t, db, item.ID, booker.ID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), models.StatusApproved)
	current := createTestBooking(t, db, item.ID, booker.ID, now.Add(-time.Hour), now.Add(time.Hour), models.StatusApproved)
	future := createTestBooking(t, db, item.ID, booker.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusWaiting)
	rejected := createTestBooking(t, db, item.ID, booker.ID, now.Add(72*time.Hour), now.Add(96*time.Hour), models.StatusRejected)

	page := func(f models.BookingFilter) models.BookingFilter {
		f.Limit = 50
		return f
	}

	t.Run("AllNewestFirst", func(t *testing.T) {
		got, err := db.GetBookerBookings(ctx, booker.ID, page(models.BookingFilter{}))
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, rejected.ID, got[0].ID)
		assert.Equal(t, future.ID, got[1].ID)
		assert.Equal(t, current.ID, got[2].ID)
		assert.Equal(t, past.ID, got[3].ID)
	})

	t.Run("Current", func(t *testing.T) {
		filter, err := models.FilterForState(models.StateCurrent, now)
		require.NoError(t, err)

		got, err := db.GetBookerBookings(ctx, booker.ID, page(filter))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, current.ID, got[0].ID)
	})

	t.Run("Past", func(t *testing.T) {
		filter, err := models.FilterForState(models.StatePast, now)
		require.NoError(t, err)

		got, err := db.GetBookerBookings(ctx, booker.ID, page(filter))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, past.ID, got[0].ID)
	})

	t.Run("Future", func(t *testing.T) {
		filter, err := models.FilterForState(models.StateFuture, now)
		require.NoError(t, err)

		got, err := db.GetBookerBookings(ctx, booker.ID, page(filter))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, rejected.ID, got[0].ID)
		assert.Equal(t, future.ID, got[1].ID)
	})

	t.Run("Waiting", func(t *testing.T) {
		filter, err := models.FilterForState(models.StateWaiting, now)
		require.NoError(t, err)

		got, err := db.GetBookerBookings(ctx, booker.ID, page(filter))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, future.ID, got[0].ID)
	})

	t.Run("Rejected", func(t *testing.T) {
		filter, err := models.FilterForState(models.StateRejected, now)
		require.NoError(t, err)

		got, err := db.GetBookerBookings(ctx, booker.ID, page(filter))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rejected.ID, got[0].ID)
	})

	t.Run("OwnerSide", func(t *testing.T) {
		got, err := db.GetOwnerBookings(ctx, owner.ID, page(models.BookingFilter{}))
		require.NoError(t, err)
		assert.Len(t, got, 4)

		got, err = db.GetOwnerBookings(ctx, booker.ID, page(models.BookingFilter{}))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Pagination", func(t *testing.T) {
		got, err := db.GetBookerBookings(ctx, booker.ID, models.BookingFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, current.ID, got[0].ID)
		assert.Equal(t, past.ID, got[1].ID)
	})

	t.Run("LastBooking", func(t *testing.T) {
		got, err := db.GetLastBooking(ctx, item.ID, owner.ID, now)
		require.NoError(t, err)
		assert.Equal(t, past.ID, got.ID)

		// Чужой просмотрщик последнего бронирования не видит
		_, err = db.GetLastBooking(ctx, item.ID, booker.ID, now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("NextBooking", func(t *testing.T) {
		got, err := db.GetNextBooking(ctx, item.ID, owner.ID, now)
		require.NoError(t, err)
		assert.Equal(t, future.ID, got.ID)
	})

	t.Run("PastBookingByBooker", func(t *testing.T) {
		got, err := db.FindPastBookingByBooker(ctx, booker.ID, now)
		require.NoError(t, err)
		assert.Equal(t, past.ID, got.ID)

		_, err = db.FindPastBookingByBooker(ctx, owner.ID, now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("GetAllBookings", func(t *testing.T) {
		got, err := db.GetAllBookings(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})
}
