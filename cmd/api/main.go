package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"classifieds/internal/config"
	"classifieds/internal/database"
	"classifieds/internal/domain"
	"classifieds/internal/middleware"
	"classifieds/internal/modules/account"
	"classifieds/internal/modules/admin"
	"classifieds/internal/modules/auth"
	"classifieds/internal/modules/message"
	"classifieds/internal/modules/offer"
	"classifieds/internal/modules/report"
	"classifieds/internal/pkg/token"
	"classifieds/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAuthConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.VehicleOffer{},
		&domain.RealEstateOffer{},
		&domain.CommercialOffer{},
		&domain.Report{},
		&domain.Message{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	reportRepo := repository.NewReportRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	codec := token.NewCodec(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	cookies := auth.NewCookieWriter(cfg)
	sessions := auth.NewSessionController(codec)

	authService := auth.NewService(userRepo, companyRepo, codec)
	authHandler := auth.NewHandler(authService, sessions, cookies)

	accountService := account.NewService(userRepo, companyRepo)
	accountHandler := account.NewHandler(accountService)

	offerService := offer.NewService(offerRepo)
	offerHandler := offer.NewHandler(offerService)

	reportService := report.NewService(reportRepo)
	reportHandler := report.NewHandler(reportService)

	hub := message.NewHub()
	defer hub.Close()
	messageService := message.NewService(messageRepo, userRepo, companyRepo)
	messageHandler := message.NewHandler(messageService, hub)

	adminService := admin.NewService(userRepo, companyRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		accountHandler.RegisterRoutes(api, nil)
		offerHandler.RegisterRoutes(api, nil)

		// protected (valid session cookie, refreshed on the fly)
		protected := api.Group("/")
		protected.Use(middleware.Session(sessions, cookies))
		{
			offerHandler.RegisterRoutes(nil, protected)
			reportHandler.RegisterRoutes(protected, nil)
			messageHandler.RegisterRoutes(protected)

			// admin
			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			{
				reportHandler.RegisterRoutes(nil, adminGroup)
				accountHandler.RegisterRoutes(nil, adminGroup)
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
