package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/BruksfildServices01/plantoes/internal/db"
	"github.com/BruksfildServices01/plantoes/internal/db/dbtest"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

func TestNormalizeStatuses(t *testing.T) {
	db := dbtest.Open(t)
	owner := dbtest.Professional(t, db)
	h := dbtest.Hospital(t, db, owner)

	stored := map[string]string{
		"lançado":    "LANCADO",
		"Lancado":    "LANCADO",
		"previsto":   "PREVISTO",
		"recebido":   "RECEBIDO",
		"Conciliado": "CONCILIADO",
		"":           "LANCADO",
		"PREVISTO":   "PREVISTO",
		"pago":       "pago",
	}

	ids := make(map[string]string, len(stored))
	for raw := range stored {
		s := dbtest.Shift(t, db, h, "2023-08-05", "LANCADO")
		require.NoError(t, db.Exec("UPDATE shifts SET status = ? WHERE id = ?", raw, s.ID).Error)
		ids[raw] = s.ID.String()
	}

	require.NoError(t, dbpkg.NormalizeStatuses(db))

	for raw, want := range stored {
		var s models.Shift
		require.NoError(t, db.First(&s, "id = ?", ids[raw]).Error)
		assert.Equal(t, want, s.Status, "stored %q", raw)
	}
}
