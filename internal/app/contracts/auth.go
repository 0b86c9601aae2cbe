package contracts

import (
	"context"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error)
}

type AdminRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}
