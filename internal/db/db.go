package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/matheusvf/barber-agenda/internal/config"
	"github.com/matheusvf/barber-agenda/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.DaySchedule{},
		&models.ScheduleBreak{},
		&models.ScheduleException{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Backstop for the exact-same-slot race: at most one live appointment
	// per barber per start instant.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_live_appointment_start
        ON appointments (barber_id, start_time)
        WHERE status IN ('scheduled', 'rescheduled')
    `)

	return db
}
