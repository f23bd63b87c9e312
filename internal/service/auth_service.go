package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MoniqueRon/esim-dashboard/internal/auth"
	"github.com/MoniqueRon/esim-dashboard/internal/config"
	"github.com/MoniqueRon/esim-dashboard/internal/events"
	"github.com/MoniqueRon/esim-dashboard/internal/nexuce"
	apperrors "github.com/MoniqueRon/esim-dashboard/pkg/util"
)

// AuthService coordinates operator login: local credential check, provider
// token exchange, session token minting.
type AuthService struct {
	creds      *auth.CredentialChecker
	tokenMgr   *auth.TokenManager
	client     *nexuce.Client
	session    *nexuce.Session
	dispatcher events.Dispatcher
	nexuceUser string
	nexucePass string
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, client *nexuce.Client, session *nexuce.Session, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		creds:      auth.NewCredentialChecker(cfg.Dashboard),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		client:     client,
		session:    session,
		dispatcher: dispatcher,
		nexuceUser: cfg.Nexuce.Username,
		nexucePass: cfg.Nexuce.Password,
		logger:     logger,
	}
}

// Login authenticates the operator and establishes the provider session.
// The provider token slot is only written after the upstream exchange
// succeeds; a rejected login leaves it untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if err := s.creds.Verify(username, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid dashboard credentials")
	}

	providerToken, err := s.client.Authenticate(ctx, s.nexuceUser, s.nexucePass)
	if err != nil {
		s.logger.Error("provider authentication failed", zap.Error(err))
		return "", time.Time{}, apperrors.NewUpstreamAuthError(err)
	}
	s.session.Set(providerToken)

	token, expiresAt, err := s.tokenMgr.GenerateToken(username)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLoginSucceeded,
		Timestamp: time.Now(),
		Payload:   events.LoginSucceededPayload{Username: username},
	})

	return token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
