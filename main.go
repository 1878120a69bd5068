package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"frontdesk/config"
	"frontdesk/controllers"
	"frontdesk/routes"
	"frontdesk/services"
	"frontdesk/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	store, err := config.ConnectStorage()
	if err != nil {
		log.Fatalf("❌ Storage connect failed: %v", err)
	}
	log.Println("✅ Storage connected")

	// Initialize services
	roomService := services.NewRoomService(store)
	bookingService := services.NewBookingService(store)
	integrityService := services.NewIntegrityService(roomService, bookingService)
	reminderService := services.NewCheckoutReminderService(
		roomService,
		bookingService,
		&services.LogReminderScheduler{Hour: 10},
	)
	smsService := services.NewSMSService(roomService, bookingService, services.LogMessenger{})

	// Starter rooms on first launch, matching the mobile app's behavior.
	if !strings.EqualFold(utils.EnvOrDefault("SEED_ROOMS", "true"), "false") {
		if _, err := roomService.SeedIfEmpty(context.Background()); err != nil {
			log.Printf("⚠️  Room seeding failed: %v", err)
		}
	}

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, bookingService, integrityService)
	bookingController := controllers.NewBookingController(bookingService, reminderService, smsService)
	uploadDir := utils.EnvOrDefault("UPLOAD_DIR", "./uploads")
	photoController := controllers.NewPhotoController(bookingService, uploadDir)

	router := routes.SetupRouter(roomController, bookingController, photoController, uploadDir)

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

	// Wait for interrupt signal to gracefully shutdown the server
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
