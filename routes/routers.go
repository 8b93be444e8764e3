package routes

import (
	"jatomogu/constants"
	"jatomogu/controllers"
	middlewares "jatomogu/middleware"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, bookingService *services.BookingService) {

	locationService := services.NewLocationService(db, redisCli)
	accommodationService := services.NewAccommodationService(db)
	reviewService := services.NewReviewService(db)
	paymentService := services.NewPaymentService(db)
	settingService := services.NewSettingService(db, redisCli)
	userService := services.NewUserService(services.UserServiceOptions{DB: db})

	bookingController := controllers.NewBookingController(bookingService)
	accommodationController := controllers.NewAccommodationController(accommodationService, locationService)
	reviewController := controllers.NewReviewController(reviewService)
	locationController := controllers.NewLocationController(locationService)
	paymentController := controllers.NewPaymentController(paymentService)
	settingController := controllers.NewSettingController(settingService)
	userController := controllers.NewUserController(userService)

	v1 := router.Group("/api/v1")

	// auth
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/verify-email", controllers.VerifyEmail)
	v1.POST("/resend-code", controllers.ResendCode)

	// public browsing
	v1.GET("/destinations", locationController.Tree)
	v1.GET("/destinations/search", locationController.Search)
	v1.GET("/accommodations", accommodationController.ListForCity)
	v1.GET("/accommodations/:id", accommodationController.GetDetail)
	v1.GET("/accommodations/:id/reviews", reviewController.ListForAccommodation)
	v1.GET("/settings", settingController.List)

	// profile
	v1.GET("/profile", middlewares.AuthMiddleware(), userController.GetProfile)

	// bookings
	v1.POST("/bookings/quote", middlewares.AuthMiddleware(constants.RoleClient), bookingController.Quote)
	v1.POST("/bookings", middlewares.AuthMiddleware(constants.RoleClient), bookingController.Create)
	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetMyBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(constants.RoleClient, constants.RoleOwner, constants.RoleAdmin), bookingController.ChangeStatus)
	v1.PUT("/journeyStatus", middlewares.AuthMiddleware(constants.RoleClient, constants.RoleGuide, constants.RoleAdmin), bookingController.UpdateJourneyStatus)
	v1.PUT("/assignGuide", middlewares.AuthMiddleware(constants.RoleAdmin), bookingController.AssignGuide)

	// reviews
	v1.POST("/reviews", middlewares.AuthMiddleware(constants.RoleClient), reviewController.Create)

	// owner accommodation management
	v1.POST("/accommodations", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), accommodationController.Create)
	v1.GET("/myAccommodations", middlewares.AuthMiddleware(constants.RoleOwner), accommodationController.ListMine)
	v1.PUT("/accommodationUpdate", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), accommodationController.Update)
	v1.PUT("/accommodationStatus", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), accommodationController.ChangeStatus)
	v1.PUT("/seasonalPrice", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), accommodationController.UpsertSeasonalPrice)

	// payments
	v1.POST("/payments", middlewares.AuthMiddleware(constants.RoleClient), paymentController.Create)
	v1.GET("/bookings/:id/payments", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), paymentController.ListForBooking)
	v1.PUT("/paymentStatus", middlewares.AuthMiddleware(constants.RoleAdmin), paymentController.ChangeStatus)

	// admin destination and platform management
	v1.POST("/countries", middlewares.AuthMiddleware(constants.RoleAdmin), locationController.CreateCountry)
	v1.POST("/regions", middlewares.AuthMiddleware(constants.RoleAdmin), locationController.CreateRegion)
	v1.POST("/cities", middlewares.AuthMiddleware(constants.RoleAdmin), locationController.CreateCity)
	v1.PUT("/cityUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), locationController.UpdateCity)
	v1.DELETE("/cities/:id", middlewares.AuthMiddleware(constants.RoleAdmin), locationController.DeleteCity)
	v1.PUT("/locationAvailability", middlewares.AuthMiddleware(constants.RoleAdmin), locationController.SetAvailability)
	v1.PUT("/settings", middlewares.AuthMiddleware(constants.RoleAdmin), settingController.Update)

	// admin user management
	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleAdmin), userController.GetUsers)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleAdmin), userController.ChangeUserStatus)
	v1.PUT("/userRole", middlewares.AuthMiddleware(constants.RoleAdmin), userController.ChangeUserRole)
	v1.PUT("/guideLanguages", middlewares.AuthMiddleware(constants.RoleAdmin), userController.SetGuideLanguages)
}
