package database

import (
	"log"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Festival{},
		&models.Venue{},
		&models.VenueArea{},
		&models.Booth{},
		&models.LayoutElement{},
		&models.VendorApplication{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: a vendor application can hold at most one booth
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booth_active_vendor
		ON booths (vendor_application_id)
		WHERE vendor_application_id IS NOT NULL
	`)

	return db
}
