package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"hostel-backend/models"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		phoneRe := regexp.MustCompile(`^\+?[0-9]{10,15}$`)
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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

// newTestRouter mounts the routes under test without the auth middleware;
// token handling has its own coverage.
func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	onc := NewOnboardingController(services.NewOnboardingService(db))
	pyc := NewPaymentController(services.NewPaymentService(db))

	r.POST("/api/onboarding", onc.Onboard)
	r.POST("/api/payments", pyc.CreatePayment)
	return r
}

func seedBed(t *testing.T, db *gorm.DB) models.Bed {
	t.Helper()

	property := models.Property{Name: "Sunrise PG", Address: "12 MG Road", TotalFloors: 2}
	require.NoError(t, db.Create(&property).Error)
	room := models.Room{
		PropertyID:  property.ID,
		RoomNumber:  "101",
		FloorNumber: 1,
		Type:        models.RoomTypeNonAC,
		Capacity:    2,
	}
	require.NoError(t, db.Create(&room).Error)
	bed := models.Bed{RoomID: room.ID, Label: "B1", Status: models.BedAvailable}
	require.NoError(t, db.Create(&bed).Error)
	return bed
}

func postJSON(t *testing.T, r *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
