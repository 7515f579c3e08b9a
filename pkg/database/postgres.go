package database

import (
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate")
	}

	return db
}

// Migrate creates or updates the directory schema. Venues and artists are
// migrated before shows so the cascading foreign keys can be attached.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Venue{},
		&models.Artist{},
		&models.Show{},
		&models.Activity{},
	)
}
