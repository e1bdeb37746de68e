package routes

import (
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// registerValidators adds the custom rules the request structs reference to
// gin's binding engine.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
	}
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller into the gin engine.
func SetupRouter(
	auc *controllers.AuthController,
	prc *controllers.PropertyController,
	rc *controllers.RoomController,
	bdc *controllers.BedController,
	stc *controllers.StudentController,
	bkc *controllers.BookingController,
	pyc *controllers.PaymentController,
	cmc *controllers.ComplaintController,
	dbc *controllers.DashboardController,
	onc *controllers.OnboardingController,
	sec *controllers.SettingsController,
) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", auc.Login)
		auth.POST("/register", auc.Register)
		auth.GET("/me", middleware.RequireAuth(), auc.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth())

	properties := protected.Group("/properties")
	{
		properties.GET("", prc.GetProperties)
		properties.GET("/:id", prc.GetPropertyByID)
		properties.POST("", prc.CreateProperty)
		properties.PUT("/:id", prc.UpdateProperty)
		properties.DELETE("/:id", prc.DeleteProperty)
	}

	rooms := protected.Group("/rooms")
	{
		rooms.GET("", rc.GetRooms)
		rooms.GET("/:id", rc.GetRoomByID)
		rooms.POST("", rc.CreateRoom)
		rooms.PUT("/:id", rc.UpdateRoom)
		rooms.DELETE("/:id", rc.DeleteRoom)
	}

	beds := protected.Group("/beds")
	{
		beds.GET("", bdc.GetBeds)
		beds.GET("/:id", bdc.GetBedByID)
		beds.POST("", bdc.CreateBed)
		beds.PUT("/:id", bdc.UpdateBed)
		beds.DELETE("/:id", bdc.DeleteBed)
	}

	students := protected.Group("/students")
	{
		students.GET("", stc.GetStudents)
		students.GET("/:id", stc.GetStudentByID)
		students.POST("", stc.CreateStudent)
		students.PUT("/:id", stc.UpdateStudent)
		students.DELETE("/:id", stc.DeleteStudent)
	}

	bookings := protected.Group("/bookings")
	{
		bookings.GET("", bkc.GetBookings)
		bookings.GET("/:id", bkc.GetBookingByID)
		bookings.POST("", bkc.CreateBooking)
		bookings.PUT("/:id", bkc.UpdateBooking)
		bookings.DELETE("/:id", bkc.DeleteBooking)
	}

	payments := protected.Group("/payments")
	{
		payments.GET("", pyc.GetPayments)
		payments.GET("/:id", pyc.GetPaymentByID)
		payments.POST("", pyc.CreatePayment)
		payments.PUT("/:id", pyc.UpdatePayment)
		payments.DELETE("/:id", pyc.DeletePayment)
	}

	complaints := protected.Group("/complaints")
	{
		complaints.GET("", cmc.GetComplaints)
		complaints.GET("/:id", cmc.GetComplaintByID)
		complaints.POST("", cmc.CreateComplaint)
		complaints.PUT("/:id", cmc.UpdateComplaint)
		complaints.DELETE("/:id", cmc.DeleteComplaint)
	}

	protected.GET("/dashboard/stats", dbc.GetStats)
	protected.POST("/onboarding", onc.Onboard)

	settings := protected.Group("/settings")
	{
		settings.GET("", sec.GetSettings)
		settings.PUT("", sec.UpdateSettings)
	}

	return r
}
