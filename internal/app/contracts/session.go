package contracts

import (
	"context"
	"glamslot-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, admin *models.Admin, ttl time.Duration) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
