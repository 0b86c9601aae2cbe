package database

import (
	"context"
	"glamslot-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	timeout := time.Duration(driverConfig.MongoDB.ConnectTimeoutInSecond) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dbOptions := options.Client().
		ApplyURI(driverConfig.MongoDB.URI).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database", zap.String("db_name", driverConfig.MongoDB.DbName))
	return client
}

// MongoHealthChecker pings the primary of the connected deployment.
type MongoHealthChecker struct {
	Client *mongo.Client
}

func (c *MongoHealthChecker) Name() string {
	return "database"
}

func (c *MongoHealthChecker) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}
