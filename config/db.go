package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hostel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase creates the default admin account and hostel settings row if
// they are missing. Demo floor-map data is seeded only when SEED_DEMO_DATA=true.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username: "admin@hostel.local",
				Password: string(hash),
				Name:     "Admin User",
				Role:     models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var settingCount int64
	DB.Model(&models.HostelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HostelSetting{Name: "My Hostel"}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hostel settings: %v", err)
		}
	}

	if !strings.EqualFold(envOrDefault("SEED_DEMO_DATA", "false"), "true") {
		return
	}

	var propCount int64
	DB.Model(&models.Property{}).Count(&propCount)
	if propCount > 0 {
		log.Println("Demo data already seeded")
		return
	}

	property := models.Property{
		Name:        "Sunrise PG",
		Address:     "12 MG Road",
		TotalFloors: 2,
		Amenities:   []byte(`["wifi","laundry","mess"]`),
	}
	if err := DB.Create(&property).Error; err != nil {
		log.Printf("warning: failed to seed demo property: %v", err)
		return
	}

	rooms := []models.Room{
		{PropertyID: property.ID, RoomNumber: "101", FloorNumber: 1, Type: models.RoomTypeNonAC, Capacity: 3},
		{PropertyID: property.ID, RoomNumber: "102", FloorNumber: 1, Type: models.RoomTypeAC, Capacity: 2},
		{PropertyID: property.ID, RoomNumber: "201", FloorNumber: 2, Type: models.RoomTypeNonAC, Capacity: 4},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed demo rooms: %v", err)
		return
	}

	var beds []models.Bed
	for _, room := range rooms {
		for i := 1; i <= room.Capacity; i++ {
			beds = append(beds, models.Bed{
				RoomID: room.ID,
				Label:  fmt.Sprintf("B%d", i),
				Status: models.BedAvailable,
			})
		}
	}
	if err := DB.Create(&beds).Error; err != nil {
		log.Printf("warning: failed to seed demo beds: %v", err)
		return
	}
	log.Println("Demo data seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order so FKs resolve.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.HostelSetting{},
		&models.Property{},
		&models.Room{},
		&models.Student{},
		&models.Bed{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
