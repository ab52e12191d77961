package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/pkg/events"
	pkghash "github.com/Skotchmaster/vinyl_shop/pkg/hash"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/pkg/tokens"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/auth/internal/repo"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const userEventsTopic = "user_events"

type AuthService struct {
	Repo      *repo.GormRepo
	Producer  *events.Producer
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	hashed, err := pkghash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, HashedPassword: hashed}
	if err := s.Repo.CreateUserIfNotExists(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	event := map[string]any{"type": "user_registered", "user_id": user.ID, "email": user.Email}
	if err := s.Producer.PublishEvent(ctx, userEventsTopic, user.Email, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "type", "user_registered", "error", err)
	}

	return user, nil
}

// Login checks the credentials and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !pkghash.CheckPassword(user.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}

	return tokens.NewAccessToken(user.Email, s.JWTSecret, s.TokenTTL)
}

// CurrentUser resolves a bearer token into the owning account.
func (s *AuthService) CurrentUser(ctx context.Context, tokenStr string) (*models.User, error) {
	claims, err := tokens.AccessClaimsFromToken(tokenStr, s.JWTSecret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
