package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	logger := zerolog.Nop()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func createTestItem(t *testing.T, db *DB, ownerID int64, name string, available bool) *models.Item {
	t.Helper()

	item := &models.Item{Name: name, Description: name + " description", Available: available, OwnerID: ownerID}
	require.NoError(t, db.CreateItem(context.Background(), item))
	return item
}

func createTestRequest(t *testing.T, db *DB, requesterID int64, description string) *models.ItemRequest {
	t.Helper()

	request := &models.ItemRequest{Description: description, RequesterID: requesterID, Created: time.Now()}
	require.NoError(t, db.CreateRequest(context.Background(), request))
	return request
}

func createTestBooking(t *testing.T, db *DB, itemID, bookerID int64, start, end time.Time, status string) *models.Booking {
	t.Helper()

	booking := &models.Booking{Start: start, End: end, Status: status, ItemID: itemID, BookerID: bookerID}
	require.NoError(t, db.CreateBooking(context.Background(), booking))
	return booking
}
