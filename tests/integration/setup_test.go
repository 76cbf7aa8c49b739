//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/matsuri-platform/venue-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "venue_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	dropTables()

	if err := testDB.AutoMigrate(
		&models.Festival{},
		&models.VendorApplication{},
		&models.Venue{},
		&models.VenueArea{},
		&models.Booth{},
		&models.LayoutElement{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booth_active_vendor
		ON booths (vendor_application_id)
		WHERE vendor_application_id IS NOT NULL
	`)

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	testDB.Exec("DROP TABLE IF EXISTS booths")
	testDB.Exec("DROP TABLE IF EXISTS layout_elements")
	testDB.Exec("DROP TABLE IF EXISTS venue_areas")
	testDB.Exec("DROP TABLE IF EXISTS venues")
	testDB.Exec("DROP TABLE IF EXISTS vendor_applications")
	testDB.Exec("DROP TABLE IF EXISTS festivals")
}

func cleanTables() {
	testDB.Exec("DELETE FROM booths")
	testDB.Exec("DELETE FROM layout_elements")
	testDB.Exec("DELETE FROM venue_areas")
	testDB.Exec("DELETE FROM venues")
	testDB.Exec("DELETE FROM vendor_applications")
	testDB.Exec("DELETE FROM festivals")
	testDB.Exec("ALTER SEQUENCE IF EXISTS venues_id_seq RESTART WITH 1")
	testDB.Exec("ALTER SEQUENCE IF EXISTS venue_areas_id_seq RESTART WITH 1")
	testDB.Exec("ALTER SEQUENCE IF EXISTS booths_id_seq RESTART WITH 1")
	testDB.Exec("ALTER SEQUENCE IF EXISTS layout_elements_id_seq RESTART WITH 1")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
