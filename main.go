package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aerovoice/config"
	"aerovoice/database"
	bookingRepo "aerovoice/database/repository/booking"
	profileRepo "aerovoice/database/repository/profile"
	"aerovoice/handlers"
	"aerovoice/middleware"
	"aerovoice/routes"
	"aerovoice/services/dialogue"
	"aerovoice/services/flights"
	"aerovoice/services/profile"
	"aerovoice/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Session storage: process-local by default, Redis when configured.
	var sessionStore dialogue.SessionStore
	var redisClients []*redis.Client
	if config.AppConfig.SessionStore == "redis" {
		client := utils.GetSessionCacheClient()
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		sessionStore = dialogue.NewRedisSessionStore(client, ttl)
		redisClients = append(redisClients, client)
	} else {
		sessionStore = dialogue.NewMemorySessionStore()
	}

	// Repositories.
	profiles := profileRepo.NewMongoProfileRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// Services.
	lookupService := flights.NewDefaultLookupService(
		config.AppConfig.FlightAPIURL,
		time.Duration(config.AppConfig.FlightAPITimeoutMS)*time.Millisecond,
	)
	profileService := &profile.DefaultProfileService{Repo: profiles}
	engine := dialogue.NewDefaultDialogueEngine(sessionStore, lookupService, bookings)

	dialogueHandler := handlers.NewDialogueHandler(engine, profileService, logger)
	bookingHandler := handlers.NewBookingHandler(bookings, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProcessInput:  dialogueHandler.ProcessHandler,
		SessionStatus: dialogueHandler.StatusHandler,
		ResetSession:  dialogueHandler.ResetHandler,
		SaveProfile:   dialogueHandler.SaveProfileHandler,
		Identify:      dialogueHandler.IdentifyHandler,
		GetProfile:    dialogueHandler.GetProfileHandler,
		FlightsLookup: handlers.FlightsLookupHandler,
		GetBooking:    bookingHandler.GetBookingHandler,
		ListBookings:  bookingHandler.ListBookingsHandler,
		CancelBooking: bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(redisClients, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
