package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wayfare-app/wayfare/internal/pkg/config"
	"github.com/wayfare-app/wayfare/internal/pkg/database"
	"github.com/wayfare-app/wayfare/internal/pkg/health"
	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/middleware"
	nsqpkg "github.com/wayfare-app/wayfare/internal/pkg/nsq"
	"github.com/wayfare-app/wayfare/internal/pkg/server"
	"github.com/wayfare-app/wayfare/internal/utils"
	bookingHandler "github.com/wayfare-app/wayfare/services/bookings/handler"
	bookingHTTP "github.com/wayfare-app/wayfare/services/bookings/handler/http"
	bookingRepo "github.com/wayfare-app/wayfare/services/bookings/repository"
	bookingUsecase "github.com/wayfare-app/wayfare/services/bookings/usecase"
	notifyNSQ "github.com/wayfare-app/wayfare/services/notifications/handler/nsq"
	"github.com/wayfare-app/wayfare/services/notifications/mailer"
	notifyRepo "github.com/wayfare-app/wayfare/services/notifications/repository"
	notifyUsecase "github.com/wayfare-app/wayfare/services/notifications/usecase"
	"github.com/wayfare-app/wayfare/services/payments/gateway"
	paymentHandler "github.com/wayfare-app/wayfare/services/payments/handler"
	paymentHTTP "github.com/wayfare-app/wayfare/services/payments/handler/http"
	paymentNSQ "github.com/wayfare-app/wayfare/services/payments/handler/nsq"
	paymentRepo "github.com/wayfare-app/wayfare/services/payments/repository"
	paymentUsecase "github.com/wayfare-app/wayfare/services/payments/usecase"
)

const appName = "wayfare"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/wayfare.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Payments wiring
	lockTTL := time.Duration(configs.Gateway.LockTTLSeconds) * time.Second
	txRepo := paymentRepo.NewPaymentRepository(configs, postgresClient.GetDB())
	refLock := paymentRepo.NewReferenceLock(redisClient, lockTTL)
	chapaGW := gateway.NewChapaClient(configs.Gateway)
	eventsGW := gateway.NewEventsGW(producer, configs.NSQ)
	paymentUC := paymentUsecase.NewPaymentUC(configs, txRepo, refLock, chapaGW, eventsGW)

	// Bookings wiring
	bkRepo := bookingRepo.NewBookingRepository(configs, postgresClient.GetDB())
	bookingUC := bookingUsecase.NewBookingUC(configs, bkRepo)

	// Notifications wiring
	nfRepo := notifyRepo.NewNotificationRepository(configs, postgresClient.GetDB())
	smtpMailer := mailer.NewGomailMailer(configs.SMTP)
	notificationUC := notifyUsecase.NewNotificationUC(configs, nfRepo, smtpMailer, zapLogger)

	// NSQ consumers: webhook reconciliation and notification dispatch
	webhookConsumer, err := nsqpkg.NewConsumer(
		configs.NSQ.WebhookTopic,
		configs.NSQ.WebhookChannel,
		configs.NSQ.Address,
		paymentNSQ.NewWebhookConsumer(paymentUC).HandleMessage,
	)
	if err != nil {
		zapLogger.Fatal("Failed to start webhook consumer", logger.Err(err))
	}
	defer webhookConsumer.Stop()

	notifyConsumer, err := nsqpkg.NewConsumer(
		configs.NSQ.NotifyTopic,
		configs.NSQ.NotifyChannel,
		configs.NSQ.Address,
		notifyNSQ.NewNotifyConsumer(notificationUC).HandleMessage,
	)
	if err != nil {
		zapLogger.Fatal("Failed to start notification consumer", logger.Err(err))
	}
	defer notifyConsumer.Stop()

	// HTTP handlers
	payHandler := paymentHandler.NewHandler(
		paymentHTTP.NewPaymentHandler(paymentUC, chapaGW, eventsGW))
	bkHandler := bookingHandler.NewHandler(
		bookingHTTP.NewBookingHandler(bookingUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	payHandler.RegisterRoutes(e)
	bkHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
