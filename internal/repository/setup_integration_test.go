//go:build integration

package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
	"github.com/stretchr/testify/require"
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
		getEnv("TEST_DB_NAME", "directory_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	dropTables()
	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	dropTables()
	os.Exit(code)
}

func dropTables() {
	testDB.Exec("DROP TABLE IF EXISTS shows")
	testDB.Exec("DROP TABLE IF EXISTS venues")
	testDB.Exec("DROP TABLE IF EXISTS artists")
	testDB.Exec("DROP TABLE IF EXISTS activities")
}

func cleanTables() {
	testDB.Exec("TRUNCATE shows, venues, artists, activities RESTART IDENTITY CASCADE")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func insertVenue(t *testing.T, name, city, state string) *models.Venue {
	t.Helper()
	v := &models.Venue{Name: name, City: city, State: state, Address: "1 Main St", Genres: "Jazz"}
	require.NoError(t, NewVenueRepository(testDB).Create(context.Background(), v))
	return v
}

func insertArtist(t *testing.T, name string) *models.Artist {
	t.Helper()
	a := &models.Artist{Name: name, City: "San Francisco", State: "CA", Genres: "Rock n Roll"}
	require.NoError(t, NewArtistRepository(testDB).Create(context.Background(), a))
	return a
}

func insertShow(t *testing.T, venueID, artistID uint, start time.Time) *models.Show {
	t.Helper()
	s := &models.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
	require.NoError(t, NewShowRepository(testDB).Create(context.Background(), testDB, s))
	return s
}
