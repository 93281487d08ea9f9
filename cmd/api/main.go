package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"powerlink/internal/config"
	"powerlink/internal/database"
	"powerlink/internal/domain"
	"powerlink/internal/middleware"
	"powerlink/internal/modules/auth"
	"powerlink/internal/modules/booking"
	"powerlink/internal/modules/catalog"
	"powerlink/internal/modules/notification"
	"powerlink/internal/modules/worker"
	jwtsvc "powerlink/internal/pkg/jwt"
	"powerlink/internal/pkg/sms"
	"powerlink/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Worker{},
		&domain.WorkerRating{},
		&domain.Service{},
		&domain.Booking{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	smsSender := sms.NewDevConsoleSender(cfg.DevMode())

	hub := notification.NewHub()
	defer hub.Close()
	notifier := notification.NewNotifier(hub)
	wsHandler := notification.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j, smsSender, cfg.OTPPepper, cfg.OTPTTL)
	authHandler := auth.NewHandler(authService, cfg.DevMode())

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	workerService := worker.NewService(workerRepo)
	workerHandler := worker.NewHandler(workerService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, workerRepo, userRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	if !cfg.DevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// websocket handshake authenticates via ?token= inside the handler
		api.GET("/ws", wsHandler.HandleWebSocket)

		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		workerHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterAdminRoutes(protected)
			workerHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
