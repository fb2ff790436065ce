package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterForState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ALL leaves the window open", func(t *testing.T) {
		f, err := FilterForState(StateAll, now)
		require.NoError(t, err)
		assert.Empty(t, f.Status)
		assert.Nil(t, f.StartBefore)
		assert.Nil(t, f.StartAfter)
		assert.Nil(t, f.EndBefore)
		assert.Nil(t, f.EndAfter)
	})

	t.Run("CURRENT bounds both ends", func(t *testing.T) {
		f, err := FilterForState(StateCurrent, now)
		require.NoError(t, err)
		require.NotNil(t, f.StartBefore)
		require.NotNil(t, f.EndAfter)
		assert.Equal(t, now, *f.StartBefore)
		assert.Equal(t, now, *f.EndAfter)
		assert.Empty(t, f.Status)
	})

	t.Run("PAST bounds the end only", func(t *testing.T) {
		f, err := FilterForState(StatePast, now)
		require.NoError(t, err)
		require.NotNil(t, f.EndBefore)
		assert.Equal(t, now, *f.EndBefore)
		assert.Nil(t, f.StartBefore)
	})

	t.Run("FUTURE bounds the start only", func(t *testing.T) {
		f, err := FilterForState(StateFuture, now)
		require.NoError(t, err)
		require.NotNil(t, f.StartAfter)
		assert.Equal(t, now, *f.StartAfter)
	})

	t.Run("status states never touch the time window", func(t *testing.T) {
		for state, status := range map[string]string{
			StateWaiting:  StatusWaiting,
			StateRejected: StatusRejected,
		} {
			f, err := FilterForState(state, now)
			require.NoError(t, err)
			assert.Equal(t, status, f.Status)
			assert.Nil(t, f.StartBefore)
			assert.Nil(t, f.StartAfter)
			assert.Nil(t, f.EndBefore)
			assert.Nil(t, f.EndAfter)
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := FilterForState("SOMEDAY", now)
		assert.ErrorContains(t, err, "unknown state: SOMEDAY")
	})
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name string
		from int
		size int
		want int
	}{
		{"first page", 0, 20, 0},
		{"from below size collapses to page zero", 19, 20, 0},
		{"exact page boundary", 20, 20, 20},
		{"sub-page offset is lost", 25, 20, 20},
		{"third page", 40, 20, 40},
		{"small size", 7, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageOffset(tt.from, tt.size))
		})
	}
}
