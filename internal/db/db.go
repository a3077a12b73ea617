package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/config"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Error.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Error.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE shops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone)

	return db
}

// Migrate também é usado pelos testes com sqlite em memória.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Shop{},
		&models.ShopSettings{},
		&models.User{},
		&models.Customer{},
		&models.Booking{},
		&models.Expense{},
		&models.EquipmentItem{},
		&models.SupplyItem{},
		&models.IncidentReport{},
		&models.ManualTask{},
		&models.ManualTaskCompletion{},
		&models.AuditLog{},
	)
}
