package auth

import (
	"context"
	"errors"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

// Insert stores the admin with a lowercased email. A taken email returns
// ErrAdminAlreadyExists.
func (r *AdminMongoRepository) Insert(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	admin.Email = strings.ToLower(admin.Email)
	admin.SetCreatedAtUpdatedAt()

	result, err := r.Collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrAdminAlreadyExists(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return admin, nil
}

// FindByEmail returns nil without error when no admin has the email.
func (r *AdminMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}
