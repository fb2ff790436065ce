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

func TestRequests(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	t.Run("CreateAndGet", func(t *testing.T) {
		request := createTestRequest(t, db, alice.ID, "Нужна дрель")
		assert.NotZero(t, request.ID)

		got, err := db.GetRequest(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, "Нужна дрель", got.Description)
		assert.Equal(t, alice.ID, got.RequesterID)
		assert.False(t, got.Created.IsZero())
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := db.GetRequest(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ByRequesterOldestFirst", func(t *testing.T) {
		// Метки времени хранятся с точностью до секунды, разносим явно
		base := time.Now().UTC().Truncate(time.Second)
		first := &models.ItemRequest{Description: "Первый запрос", RequesterID: bob.ID, Created: base.Add(-time.Hour)}
		second := &models.ItemRequest{Description: "Второй запрос", RequesterID: bob.ID, Created: base}
		require.NoError(t, db.CreateRequest(ctx, first))
		require.NoError(t, db.CreateRequest(ctx, second))

		got, err := db.GetRequestsByRequester(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})

	t.Run("OtherRequestsExcludeOwn", func(t *testing.T) {
		got, err := db.GetOtherRequests(ctx, bob.ID, 50, 0)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, r := range got {
			assert.NotEqual(t, bob.ID, r.RequesterID)
		}
	})
}
