package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kevanghobadi/windsurf-hotel/app"
	"github.com/kevanghobadi/windsurf-hotel/app/handlers"
	appmiddleware "github.com/kevanghobadi/windsurf-hotel/app/middleware"
	"github.com/kevanghobadi/windsurf-hotel/app/repositories"
	"github.com/kevanghobadi/windsurf-hotel/app/usecases"
	"github.com/kevanghobadi/windsurf-hotel/config"
	"github.com/kevanghobadi/windsurf-hotel/server"
)

// @title Hotel Booking API
// @version 1.0
// @description Booking requests and admin dashboard backend for the hotel site.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using system environment variables")
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:  logFile,
			MaxSize:   10, // MB
			LocalTime: true,
		})
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logrus.Info("config.yaml not found, using defaults: ", err)
		cfg = config.DefaultConfig()
	}
	if cfg.Admin.Secret == "" {
		logrus.Warn("admin secret is not configured, admin login is disabled")
	}

	bookingRepo := repositories.NewFileBookingRepository(cfg.Storage.DataDir, cfg.Storage.DataFile)

	bookingUsecase := usecases.NewBookingUsecase(bookingRepo)
	authUsecase := usecases.NewAuthUsecase(cfg.Admin.Secret)

	bookingHandler := handlers.NewBookingHandler(bookingUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(srv.GetEcho(), authHandler, bookingHandler, appmiddleware.AdminAuth(cfg.Admin.Secret))

	logrus.Info("server starting on port ", cfg.Server.Port)
	if err := srv.Start(); err != nil {
		logrus.Fatal("server stopped: ", err)
	}
}
