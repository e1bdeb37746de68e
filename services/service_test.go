package services

import (
	"fmt"
	"testing"
	"time"

	"hostel-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database for one test. The shared-cache
// DSN keeps all pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.HostelSetting{},
		&models.Property{},
		&models.Room{},
		&models.Student{},
		&models.Bed{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
	))

	return db
}

// seedRoomWithBeds provisions a property, one room and n beds, the way staff
// would ahead of occupancy.
func seedRoomWithBeds(t *testing.T, db *gorm.DB, capacity, n int) (models.Room, []models.Bed) {
	t.Helper()

	property := models.Property{Name: "Sunrise PG", Address: "12 MG Road", TotalFloors: 2}
	require.NoError(t, db.Create(&property).Error)

	room := models.Room{
		PropertyID:  property.ID,
		RoomNumber:  "101",
		FloorNumber: 1,
		Type:        models.RoomTypeNonAC,
		Capacity:    capacity,
	}
	require.NoError(t, db.Create(&room).Error)

	beds := make([]models.Bed, 0, n)
	for i := 1; i <= n; i++ {
		bed := models.Bed{
			RoomID: room.ID,
			Label:  fmt.Sprintf("B%d", i),
			Status: models.BedAvailable,
		}
		require.NoError(t, db.Create(&bed).Error)
		beds = append(beds, bed)
	}
	return room, beds
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
