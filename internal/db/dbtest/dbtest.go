// Package dbtest opens the Postgres used by the opt-in integration tests.
package dbtest

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/plantoes/internal/db"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

// Open returns a fresh connection pool, so callbacks registered by one
// test never leak into another. Integration tests are opt-in: set
// PLANTOES_DB_TEST=1 and DATABASE_URL to run them.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	if os.Getenv("PLANTOES_DB_TEST") != "1" {
		t.Skip("integration tests are disabled; set PLANTOES_DB_TEST=1 to enable")
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set")
	}

	db, err := dbpkg.Open(dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Professional inserts an owner and removes everything it owns when the
// test ends.
func Professional(t testing.TB, db *gorm.DB) models.Professional {
	t.Helper()

	p := models.Professional{
		Name:         "Dra. Teste",
		Email:        uuid.NewString() + "@plantoes.test",
		PasswordHash: "x",
		Active:       true,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create professional: %v", err)
	}

	t.Cleanup(func() {
		db.Where("professional_id = ?", p.ID).Delete(&models.Receipt{})
		db.Where("professional_id = ?", p.ID).Delete(&models.Shift{})
		db.Where("professional_id = ?", p.ID).Delete(&models.Hospital{})
		db.Where("professional_id = ?", p.ID).Delete(&models.AuditLog{})
		db.Delete(&p)
	})
	return p
}

func Hospital(t testing.TB, db *gorm.DB, owner models.Professional) models.Hospital {
	t.Helper()

	h := models.Hospital{
		ProfessionalID:  owner.ID,
		Name:            "Hospital São Lucas",
		PaymentTermDays: 30,
	}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("create hospital: %v", err)
	}
	return h
}

func Shift(t testing.TB, db *gorm.DB, h models.Hospital, day, status string) models.Shift {
	t.Helper()

	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("parse %q: %v", day, err)
	}

	s := models.Shift{
		ProfessionalID: h.ProfessionalID,
		HospitalID:     h.ID,
		Date:           d,
		GrossValue:     decimal.NewFromInt(1200),
		Status:         status,
	}
	if err := db.Omit("Hospital", "Receipts").Create(&s).Error; err != nil {
		t.Fatalf("create shift: %v", err)
	}
	return s
}
