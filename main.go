package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
	"hostel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}
	utils.InitJWT(jwtSecret)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	authService := services.NewAuthService(db)
	propertyService := services.NewPropertyService(db)
	roomService := services.NewRoomService(db)
	bedService := services.NewBedService(db)
	studentService := services.NewStudentService(db)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db)
	complaintService := services.NewComplaintService(db)
	dashboardService := services.NewDashboardService(db)
	onboardingService := services.NewOnboardingService(db)
	settingsService := services.NewSettingsService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	propertyController := controllers.NewPropertyController(propertyService)
	roomController := controllers.NewRoomController(roomService)
	bedController := controllers.NewBedController(bedService)
	studentController := controllers.NewStudentController(studentService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	complaintController := controllers.NewComplaintController(complaintService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	onboardingController := controllers.NewOnboardingController(onboardingService)
	settingsController := controllers.NewSettingsController(settingsService)

	router := routes.SetupRouter(
		authController,
		propertyController,
		roomController,
		bedController,
		studentController,
		bookingController,
		paymentController,
		complaintController,
		dashboardController,
		onboardingController,
		settingsController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
