package main

import (
	"context"
	"log"

	"nexustech/config"
	"nexustech/constants"
	"nexustech/jobs"
	"nexustech/middleware"
	"nexustech/response"
	"nexustech/routes"
	"nexustech/services"
	"nexustech/services/logger"
	"nexustech/services/notification"
	"nexustech/validator"
)

func main() {
	cfg := config.Load()

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	response.SetLogger(appLogger)

	if err := validator.RegisterBindings(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	app, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	app.Router.Use(middleware.RequestID(), middleware.ErrorHandler())

	cache := services.NewCache(app.Redis)
	tokens := services.NewTokenService(cfg.TokenSecret, constants.TokenTTL)

	userService := services.NewUserService(services.UserServiceOptions{
		DB:     app.DB,
		Logger: appLogger,
		Cache:  cache,
	})
	workService := services.NewWorkService(services.WorkServiceOptions{
		DB:     app.DB,
		Logger: appLogger,
		Cache:  cache,
	})
	reportService := services.NewReportService(services.ReportServiceOptions{
		DB:     app.DB,
		Logger: appLogger,
		Cache:  cache,
	})
	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:        app.DB,
		Logger:    appLogger,
		Cache:     cache,
		Charger:   services.NewStripeCharger(cfg.StripeKey),
		Locker:    services.NewLocker(app.Redis),
		Directory: userService,
		Notifier:  notification.NewMelodyService(app.Melody),
	})

	var generator services.TextGenerator
	if cfg.GeminiKey != "" {
		gemini, err := services.NewGeminiGenerator(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	}

	var uploader services.Uploader
	if app.Cloudinary != nil {
		uploader = services.NewCloudinaryUploader(app.Cloudinary)
	}

	var google services.GoogleVerifier
	if cfg.GoogleClient != "" {
		google = services.NewIDTokenVerifier(cfg.GoogleClient)
	}

	routes.SetupRoutes(app.Router, routes.Dependencies{
		Users:    userService,
		Work:     workService,
		Payroll:  payrollService,
		Reports:  reportService,
		Contacts: services.NewContactService(app.DB, appLogger),
		AI:       services.NewAIService(generator),
		Avatars:  services.NewAvatarService(uploader, userService),
		Auth: services.NewAuthService(services.AuthServiceOptions{
			Tokens: tokens,
			Dir:    userService,
			Google: google,
			Secure: cfg.IsProduction(),
		}),
		Tokens: tokens,
		Melody: app.Melody,
	})

	if err := jobs.InitCronJobs(app.Cron, cfg.StatsCronSpec, reportService); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer app.Cron.Stop()

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := app.Router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
