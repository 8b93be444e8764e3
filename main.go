package main

import (
	"log"
	"net/http"
	"os"

	"jatomogu/config"
	"jatomogu/jobs"
	"jatomogu/models"
	"jatomogu/routes"
	"jatomogu/services"
	"jatomogu/services/logger"
	"jatomogu/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrate() {
	if err := config.DB.AutoMigrate(
		&models.User{}, &models.Country{}, &models.Region{}, &models.City{},
		&models.LocationAvailability{}, &models.Accommodation{}, &models.SeasonalPrice{},
		&models.Booking{}, &models.Review{}, &models.Payment{}, &models.Setting{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrate()

	dispatcher := notification.NewDispatcher(
		notification.NewSMTPSender(),
		notification.NewBroadcaster(m),
	)
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:         config.DB,
		Dispatcher: dispatcher,
		Logger:     logger.NewDefaultLogger(logger.InfoLevel),
	})

	jobs.SetReservationExpirer(bookingService)
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, bookingService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
