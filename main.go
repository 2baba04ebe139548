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

	"room-reservation-backend/config"
	"room-reservation-backend/controllers"
	"room-reservation-backend/repository"
	"room-reservation-backend/routes"
	"room-reservation-backend/services"
	"room-reservation-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.TokenKey == "" {
		log.Fatal("ERROR: TOKEN_KEY environment variable is not set. Cannot sign login tokens.")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	log.Println("Database connection established and migrations applied.")

	// One unit of work per request, built from this factory
	repos := repository.NewFactory(db)

	// Initialize services
	mailer := utils.NewSMTPMailer()
	availabilityService := services.NewAvailabilityService(repos)
	fileService := services.NewFileService(repos, cfg.ResourcesDir)
	roomService := services.NewRoomService(repos, fileService)
	reservationService := services.NewReservationService(repos, availabilityService, mailer, cfg.HotelEmail)
	authService := services.NewAuthService(repos, []byte(cfg.TokenKey))

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, availabilityService)
	reservationController := controllers.NewReservationController(reservationService)
	imageController := controllers.NewImageController(fileService)
	authController := controllers.NewAuthController(authService)

	router := routes.SetupRouter(
		roomController,
		reservationController,
		imageController,
		authController,
		[]byte(cfg.TokenKey),
		fileService.UploadsDir(),
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
