package session

import (
	"context"
	"errors"
	"fmt"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

var ErrSessionExpired = errors.New("session expired")

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
}

func (svc *sessionService) CreateSession(ctx context.Context, admin *models.Admin, ttl time.Duration) (*models.Session, error) {
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		AdminID:   admin.ID.Hex(),
		Email:     admin.Email,
		Name:      admin.Name,
		Role:      admin.Role,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	if session.IsExpired(time.Now().UTC()) {
		return nil, exceptions.ErrInvalidSession(ErrSessionExpired)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
