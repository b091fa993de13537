// File: legalform/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalform/config"
	"legalform/database"
	consultationRepo "legalform/database/repository/consultation"
	"legalform/handlers"
	"legalform/middleware"
	"legalform/routes"
	"legalform/services/consultation"
	"legalform/services/notification"
	"legalform/utils"

	"github.com/gin-gonic/gin"
)

// buildSender picks the messaging provider adapter from configuration.
func buildSender() notification.Sender {
	cfg := config.AppConfig
	if cfg.MessagingProvider == "whatsapp" {
		return notification.NewWhatsAppSender(cfg.WhatsAppAPIBase, cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneNumberID)
	}
	return notification.NewTelegramSender(cfg.TelegramAPIBase, cfg.TelegramBotToken)
}

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

	// repositories.
	repo := consultationRepo.NewMongoConsultationRepo()

	// services.
	dispatcher := notification.NewDispatcher(
		buildSender(),
		[]string{config.AppConfig.NotifyRecipients},
		logger,
	)

	consultationService := &consultation.DefaultConsultationService{
		Repo:     repo,
		Notifier: dispatcher,
		Logger:   logger,
	}
	consultationHandler := handlers.NewConsultationHandler(consultationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateConsultationHandler: consultationHandler.CreateConsultationHandler,
		ListConsultationsHandler:  consultationHandler.ListConsultationsHandler,
		ServiceTypesHandler:       consultationHandler.ServiceTypesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
