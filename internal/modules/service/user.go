package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/sitegenie/sitegenie/internal/pkg/secrets"
	"github.com/sitegenie/sitegenie/internal/pkg/tokens"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, in LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Authenticate(ctx context.Context, token string) (*model.User, *model.Session, error)
}

type UserServiceConfig struct {
	TokenTTL   time.Duration
	BcryptCost int
}

type userService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	signer   *tokens.Signer
	cfg      UserServiceConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewUserService(users repo.UserRepo, sessions repo.SessionRepo, signer *tokens.Signer, cfg UserServiceConfig, log *zap.Logger) UserService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 72 * time.Hour
	}
	return &userService{
		users:    users,
		sessions: sessions,
		signer:   signer,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	UserAgent string
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
}

type AuthOutput struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperr.Validation("invalid email address", err)
	}
	return email, nil
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < secrets.MinPasswordLen {
		return nil, apperr.Validation(fmt.Sprintf("password must be at least %d characters", secrets.MinPasswordLen), nil)
	}
	if len(in.Password) > secrets.MaxPasswordLen {
		return nil, apperr.Validation(fmt.Sprintf("password must be at most %d bytes", secrets.MaxPasswordLen), nil)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, apperr.Internal("check email", err)
	}
	if exists {
		return nil, apperr.Conflict("email already registered", nil)
	}

	hash, err := secrets.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email already registered", err)
		}
		return nil, apperr.Internal("create user", err)
	}

	return s.issue(ctx, user, in.UserAgent)
}

func (s *userService) Login(ctx context.Context, in LoginInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("invalid email or password")
		}
		return nil, apperr.Internal("load user", err)
	}

	ok, err := secrets.VerifyPassword(in.Password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal("verify password", err)
	}
	if !ok {
		return nil, apperr.Auth("invalid email or password")
	}

	if n, err := s.sessions.DeleteExpired(ctx, user.ID, s.now()); err != nil {
		s.log.Sugar().Warnw("purge expired sessions", "user_id", user.ID, "err", err)
	} else if n > 0 {
		s.log.Sugar().Debugw("purged expired sessions", "user_id", user.ID, "count", n)
	}

	return s.issue(ctx, user, in.UserAgent)
}

func (s *userService) issue(ctx context.Context, user *model.User, userAgent string) (*AuthOutput, error) {
	now := s.now()
	sess := &model.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserAgent: userAgent,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, apperr.Internal("create session", err)
	}

	token, err := s.signer.Issue(user.ID, sess.ID, now, sess.ExpiresAt)
	if err != nil {
		return nil, apperr.Internal("sign token", err)
	}
	return &AuthOutput{User: user, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

func (s *userService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperr.Internal("delete session", err)
	}
	return nil
}

// Authenticate resolves a bearer token to its user and live session.
func (s *userService) Authenticate(ctx context.Context, token string) (*model.User, *model.Session, error) {
	userID, sessionID, err := s.signer.Parse(token)
	if err != nil {
		return nil, nil, apperr.Auth("invalid or expired token")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.Auth("session not found")
		}
		return nil, nil, apperr.Internal("load session", err)
	}
	if sess.UserID != userID || sess.Expired(s.now()) {
		return nil, nil, apperr.Auth("session expired")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.Auth("user not found")
		}
		return nil, nil, apperr.Internal("load user", err)
	}
	return user, sess, nil
}
