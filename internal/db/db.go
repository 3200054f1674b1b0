package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/plantoes/internal/config"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := NormalizeStatuses(db); err != nil {
		log.Printf("failed to normalize shift status: %v", err)
	}

	return db
}

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Professional{},
		&models.Hospital{},
		&models.Shift{},
		&models.Receipt{},
		&models.AuditLog{},
	)
}

// NormalizeStatuses rewrites statuses left by older clients (empty, or
// lowercase with accents such as 'lançado') to the uppercase enum.
// Anything else unknown is kept and shows as "Desconhecido".
func NormalizeStatuses(db *gorm.DB) error {
	return db.Exec(`
        UPDATE shifts
        SET status = CASE
            WHEN status IS NULL OR btrim(status) = '' THEN 'LANCADO'
            WHEN lower(btrim(status)) IN ('lançado', 'lancado') THEN 'LANCADO'
            WHEN lower(btrim(status)) = 'previsto' THEN 'PREVISTO'
            WHEN lower(btrim(status)) = 'recebido' THEN 'RECEBIDO'
            WHEN lower(btrim(status)) = 'conciliado' THEN 'CONCILIADO'
            ELSE status
        END
        WHERE status IS NULL
           OR status NOT IN ('LANCADO', 'PREVISTO', 'RECEBIDO', 'CONCILIADO')
    `).Error
}
