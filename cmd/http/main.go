package main

import (
	"context"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/delivery/http/controllers"
	"glamslot-service/internal/app/delivery/http/middlewares"
	"glamslot-service/internal/app/delivery/http/routers"
	"glamslot-service/internal/app/drivers/database"
	"glamslot-service/internal/app/drivers/logger"
	"glamslot-service/internal/app/drivers/messaging"
	"glamslot-service/internal/app/drivers/storage"
	"glamslot-service/internal/app/services/core/appointments"
	"glamslot-service/internal/app/services/core/auth"
	"glamslot-service/internal/app/services/core/session"
	"glamslot-service/internal/app/services/core/slot"
	"glamslot-service/internal/app/services/shared/locker"
	"glamslot-service/internal/app/services/shared/publisher"
	"glamslot-service/internal/app/services/shared/redis"
	minioStorage "glamslot-service/internal/app/services/shared/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are set at build time with -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := config.Validate(driverConfig, internalConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Configuration loaded",
		append(config.LogFields(driverConfig, internalConfig),
			zap.String("build_version", Version),
			zap.String("build_tag", Tag),
		)...,
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, zapLogger)
	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, zapLogger)
	minioClient := storage.NewMinio(driverConfig, internalConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	zapLogger := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, zapLogger)
	sessionService := session.NewSessionService(redisRepository)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	eventPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Events.Exchange, zapLogger)
	if err != nil {
		return err
	}
	bootstrap.PublisherStop = eventPublisher.Close

	// Repositories
	slotRepository := slot.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	adminRepository := auth.NewAdminMongoRepository(bootstrap.MongoDB, dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, indexer := range []interface{ EnsureIndexes(context.Context) error }{slotRepository, appointmentRepository, adminRepository} {
		if err := indexer.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	// Usecases
	slotUsecase := slot.NewSlotUsecase(slotRepository, bootstrap.InternalConfig, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		slotRepository,
		lockService,
		eventPublisher,
		objectStorage,
		bootstrap.InternalConfig,
		zapLogger,
	)
	authUsecase := auth.NewAuthUsecase(adminRepository, sessionService, bootstrap.InternalConfig, zapLogger)

	// Workers
	if bootstrap.InternalConfig.Booking.SlotWorkerEnabled {
		slotWorker := slot.NewWorker(zapLogger, bootstrap.InternalConfig, lockService, slotUsecase)
		slotWorker.Start(context.Background())
		bootstrap.WorkerStop = slotWorker.Stop
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(zapLogger, sessionService, bootstrap.InternalConfig)

	// Controllers
	healthCheckers := []contracts.HealthChecker{
		&database.MongoHealthChecker{Client: bootstrap.MongoDB},
		&redis.HealthChecker{Repository: redisRepository},
	}
	healthController := controllers.NewHealthController(zapLogger, bootstrap.InternalConfig, healthCheckers...)
	authController := controllers.NewAuthController(zapLogger, authUsecase, bootstrap.InternalConfig)
	slotController := controllers.NewSlotController(zapLogger, slotUsecase, bootstrap.InternalConfig)
	appointmentController := controllers.NewAppointmentController(zapLogger, appointmentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		healthController,
		authController,
		slotController,
		appointmentController,
	)
	return nil
}
