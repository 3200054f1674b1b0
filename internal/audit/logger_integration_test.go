package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	"github.com/BruksfildServices01/plantoes/internal/db/dbtest"
)

func TestLoggerListFiltersAndPages(t *testing.T) {
	db := dbtest.Open(t)
	owner := dbtest.Professional(t, db)
	other := dbtest.Professional(t, db)

	logger := audit.New(db)
	shiftID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, logger.Log(owner.ID, "shift_recorded", "shift", &shiftID, map[string]any{"n": i}))
	}
	require.NoError(t, logger.Log(owner.ID, "receipt_recorded", "shift", &shiftID, nil))
	require.NoError(t, logger.Log(owner.ID, "hospital_created", "hospital", nil, nil))
	require.NoError(t, logger.Log(other.ID, "shift_recorded", "shift", nil, nil))

	ctx := context.Background()

	t.Run("scoped to the professional", func(t *testing.T) {
		logs, total, err := logger.List(ctx, owner.ID, audit.Query{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, logs, 5)
		for _, l := range logs {
			assert.Equal(t, owner.ID, l.ProfessionalID)
		}
	})

	t.Run("action filter with paging", func(t *testing.T) {
		page1, total, err := logger.List(ctx, owner.ID, audit.Query{Action: "shift_recorded", Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, page1, 2)
		assert.False(t, page1[0].CreatedAt.Before(page1[1].CreatedAt))

		page2, total, err := logger.List(ctx, owner.ID, audit.Query{Action: "shift_recorded", Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, page2, 1)
		assert.NotEqual(t, page1[0].ID, page2[0].ID)
		assert.NotEqual(t, page1[1].ID, page2[0].ID)
	})

	t.Run("entity filter", func(t *testing.T) {
		logs, total, err := logger.List(ctx, owner.ID, audit.Query{Entity: "hospital"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, logs, 1)
		assert.Equal(t, "hospital_created", logs[0].Action)
	})

	t.Run("date window", func(t *testing.T) {
		tomorrow := time.Now().AddDate(0, 0, 1)
		_, total, err := logger.List(ctx, owner.ID, audit.Query{From: &tomorrow})
		require.NoError(t, err)
		assert.Zero(t, total)

		// To is inclusive of its whole day
		twoDaysAgo := time.Now().AddDate(0, 0, -2)
		_, total, err = logger.List(ctx, owner.ID, audit.Query{To: &twoDaysAgo})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestQueryNormalized(t *testing.T) {
	q := audit.Query{Page: 0, Limit: 500}.Normalized()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Limit)

	q = audit.Query{Page: 3, Limit: 20}.Normalized()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.Limit)
}
