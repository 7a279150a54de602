package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	ConfirmAccount(ctx context.Context, req models.ConfirmAccountRequest) error
	ResendConfirmation(ctx context.Context, req models.ForgotPasswordRequest) error
}

// AuthConfig defines how API session tokens are verified.
type AuthConfig struct {
	Secret string
	// MaxAge caps the session lifetime when the token carries no expiry.
	MaxAge time.Duration
}

// Session is an established login.
type Session struct {
	Viewer    *models.Viewer
	User      models.User
	ExpiresAt time.Time
}

// AuthService verifies API session tokens and wraps the account flows of the API.
type AuthService struct {
	api       authAPI
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(api authAPI, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.MaxAge <= 0 {
		config.MaxAge = 24 * time.Hour
	}
	return &AuthService{api: api, validator: validate, logger: logger, config: config, now: time.Now}
}

// ValidateToken parses a session token into the viewer it identifies.
func (s *AuthService) ValidateToken(tokenString string) (*models.Viewer, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &models.Viewer{UserID: claims.UserID, Email: claims.Email, Name: claims.Name, Token: tokenString}, nil
}

func (s *AuthService) parse(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.Wrap(err, appErrors.ErrSessionExpired.Code, appErrors.ErrSessionExpired.Status, appErrors.ErrSessionExpired.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session token")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session claims")
	}
	return claims, nil
}

// Login forwards credentials to the API and verifies the returned session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*Session, error) {
	if err := validatePayload(s.validator, req, "invalid login payload"); err != nil {
		return nil, err
	}
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	claims, err := s.parse(resp.Token)
	if err != nil {
		s.logger.Error("cosyll api issued an unverifiable session token", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "could not establish session")
	}

	expiresAt := s.now().Add(s.config.MaxAge)
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expiresAt) {
		expiresAt = claims.ExpiresAt.Time
	}

	s.logger.Info("user signed in", zap.String("user_id", claims.UserID))
	return &Session{
		Viewer:    &models.Viewer{UserID: claims.UserID, Email: claims.Email, Name: claims.Name, Token: resp.Token},
		User:      resp.User,
		ExpiresAt: expiresAt,
	}, nil
}

// ForgotPassword asks the API to send a recovery mail.
func (s *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := validatePayload(s.validator, req, "invalid forgot password payload"); err != nil {
		return err
	}
	return s.api.ForgotPassword(ctx, req)
}

// ResetPassword sets a new password. Both password fields must match.
func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := validatePayload(s.validator, req, "invalid reset password payload"); err != nil {
		return err
	}
	return s.api.ResetPassword(ctx, req)
}

// ConfirmAccount activates a freshly registered account.
func (s *AuthService) ConfirmAccount(ctx context.Context, req models.ConfirmAccountRequest) error {
	if err := validatePayload(s.validator, req, "invalid confirmation payload"); err != nil {
		return err
	}
	return s.api.ConfirmAccount(ctx, req)
}

// ResendConfirmation mails a new confirmation token.
func (s *AuthService) ResendConfirmation(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := validatePayload(s.validator, req, "invalid confirmation payload"); err != nil {
		return err
	}
	return s.api.ResendConfirmation(ctx, req)
}
