package main

import (
	"context"
	"flag"
	"fmt"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/drivers/database"
	"glamslot-service/internal/app/drivers/logger"
	"glamslot-service/internal/app/services/core/appointments"
	"glamslot-service/internal/app/services/core/auth"
	"glamslot-service/internal/app/services/core/slot"
	"glamslot-service/internal/pkg/dto/requests"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const usage = `Usage: admin <command> [flags]

Commands:
  create          create an operator account (defaults from ADMIN_* env)
  seed-slots      insert the default daily slots for a date
  ensure-indexes  create the collection indexes
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, zapLogger)
	defer mongoDB.Disconnect(context.Background())

	dbName := driverConfig.MongoDB.DbName
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "create":
		err = createAdmin(ctx, os.Args[2:], internalConfig, dbName, mongoDB, zapLogger)
	case "seed-slots":
		err = seedSlots(ctx, os.Args[2:], internalConfig, dbName, mongoDB, zapLogger)
	case "ensure-indexes":
		err = ensureIndexes(ctx, dbName, mongoDB)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		zapLogger.Error("Command failed", zap.String("command", os.Args[1]), zap.Error(err))
		os.Exit(1)
	}
}

func createAdmin(ctx context.Context, args []string, internalConfig *config.InternalConfig, dbName string, db *mongo.Client, zapLogger *zap.Logger) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", internalConfig.Admin.DefaultName, "display name")
	email := fs.String("email", internalConfig.Admin.DefaultEmail, "login email")
	password := fs.String("password", internalConfig.Admin.DefaultPassword, "login password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	adminRepository := auth.NewAdminMongoRepository(db, dbName)
	if err := adminRepository.EnsureIndexes(ctx); err != nil {
		return err
	}

	// sessions are not touched when provisioning accounts
	authUsecase := auth.NewAuthUsecase(adminRepository, nil, internalConfig, zapLogger)
	admin, err := authUsecase.CreateAdmin(ctx, &requests.CreateAdmin{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	log.Printf("Admin created: %s (%s)", admin.Email, admin.ID.Hex())
	return nil
}

func seedSlots(ctx context.Context, args []string, internalConfig *config.InternalConfig, dbName string, db *mongo.Client, zapLogger *zap.Logger) error {
	fs := flag.NewFlagSet("seed-slots", flag.ExitOnError)
	date := fs.String("date", time.Now().Format(time.DateOnly), "day to seed, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	slotRepository := slot.NewSlotMongoRepository(db, dbName)
	if err := slotRepository.EnsureIndexes(ctx); err != nil {
		return err
	}

	result, err := slot.NewSlotUsecase(slotRepository, internalConfig, zapLogger).EnsureDefaultSlots(ctx, *date)
	if err != nil {
		return err
	}

	log.Printf("Seeded %d default slots for %s", result.Created, result.Date)
	return nil
}

func ensureIndexes(ctx context.Context, dbName string, db *mongo.Client) error {
	if err := slot.NewSlotMongoRepository(db, dbName).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := appointments.NewAppointmentMongoRepository(db, dbName).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := auth.NewAdminMongoRepository(db, dbName).EnsureIndexes(ctx); err != nil {
		return err
	}
	log.Println("Indexes ensured")
	return nil
}
