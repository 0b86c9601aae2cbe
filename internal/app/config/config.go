package config

import (
	"errors"
	"fmt"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                    utils.GetEnvString("MONGODB_URI", ""),
			DbName:                 utils.GetEnvString("MONGODB_DB_NAME", "glamslot"),
			ConnectTimeoutInSecond: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECOND", 10),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", ":5000"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:              utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 20),
			MaxBookingRequestsPerMinute: utils.GetEnvInt("APP_MAX_BOOKING_REQUESTS_PER_MINUTE", 10),
			MaxLoginRequestsPerMinute:   utils.GetEnvInt("APP_MAX_LOGIN_REQUESTS_PER_MINUTE", 5),
			ShutdownTimeout:             utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSecond:      utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECOND", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 168),
		},
		Booking: AppBooking{
			AutoSeedDefaultSlots: utils.GetEnvBool("APP_AUTO_SEED_DEFAULT_SLOTS", false),
			LockTTLInSecond:      utils.GetEnvInt("APP_BOOKING_LOCK_TTL_IN_SECOND", 10),
			SlotWorkerEnabled:    utils.GetEnvBool("APP_SLOT_WORKER_ENABLED", false),
			SlotWorkerCronSpec:   utils.GetEnvString("APP_SLOT_WORKER_CRON_SPEC", "@daily"),
			SlotWorkerDaysAhead:  utils.GetEnvInt("APP_SLOT_WORKER_DAYS_AHEAD", 7),
		},
		Admin: AppAdmin{
			DefaultName:     utils.GetEnvString("ADMIN_NAME", constvars.DefaultAdminName),
			DefaultEmail:    utils.GetEnvString("ADMIN_EMAIL", constvars.DefaultAdminEmail),
			DefaultPassword: utils.GetEnvString("ADMIN_PASSWORD", ""),
		},
		Minio: AppMinio{
			LedgerExportBucketName:     utils.GetEnvString("MINIO_LEDGER_EXPORT_BUCKET_NAME", "glamslot-exports"),
			PresignedURLExpiryInMinute: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_MINUTE", 15),
		},
		Events: AppEvents{
			Exchange: utils.GetEnvString("RABBITMQ_EVENTS_EXCHANGE", "glamslot.events"),
		},
	}
}

// Validate fails when a variable the service cannot run without is missing.
func Validate(driverConfig *DriverConfig, internalConfig *InternalConfig) error {
	var missing []string
	if driverConfig.MongoDB.URI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if internalConfig.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if internalConfig.JWT.ExpTimeInHour <= 0 {
		return errors.New("JWT_EXP_TIME_IN_HOUR must be positive")
	}
	if internalConfig.Booking.SlotWorkerEnabled {
		if _, err := cron.ParseStandard(internalConfig.Booking.SlotWorkerCronSpec); err != nil {
			return fmt.Errorf("APP_SLOT_WORKER_CRON_SPEC is invalid: %w", err)
		}
	}
	return nil
}

// LogFields describes the loaded configuration with secrets masked.
func LogFields(driverConfig *DriverConfig, internalConfig *InternalConfig) []zap.Field {
	return []zap.Field{
		zap.String("app_env", internalConfig.App.Env),
		zap.String("app_port", internalConfig.App.Port),
		zap.String("app_version", internalConfig.App.Version),
		zap.Strings("allowed_origins", internalConfig.App.AllowedOrigins),
		zap.String("mongodb_uri", utils.MaskSecret(driverConfig.MongoDB.URI)),
		zap.String("mongodb_db_name", driverConfig.MongoDB.DbName),
		zap.String("redis_address", fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)),
		zap.String("rabbitmq_host", driverConfig.RabbitMQ.Host),
		zap.String("minio_host", driverConfig.Minio.Host),
		zap.String("jwt_secret", utils.MaskSecret(internalConfig.JWT.Secret)),
		zap.Bool("auto_seed_default_slots", internalConfig.Booking.AutoSeedDefaultSlots),
		zap.Bool("slot_worker_enabled", internalConfig.Booking.SlotWorkerEnabled),
		zap.String("slot_worker_cron_spec", internalConfig.Booking.SlotWorkerCronSpec),
	}
}
