package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/sitegenie/sitegenie/internal/pkg/secrets"
	"github.com/sitegenie/sitegenie/internal/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestUserService(users *MockUserRepo, sessions *MockSessionRepo) UserService {
	signer := tokens.NewSigner("test-secret", "sitegenie")
	return NewUserService(users, sessions, signer, UserServiceConfig{
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, zap.NewNop())
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		in       RegisterInput
		setup    func(*MockUserRepo, *MockSessionRepo)
		wantKind apperr.Kind
		wantErr  bool
	}{
		{
			name: "successful registration",
			in:   RegisterInput{Email: " Ada@Example.com ", Password: "correct horse", Name: "Ada"},
			setup: func(users *MockUserRepo, sessions *MockSessionRepo) {
				users.On("EmailExists", ctx, "ada@example.com").Return(false, nil)
				users.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "ada@example.com" && u.PasswordHash != "correct horse"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = uuid.New()
				}).Return(nil)
				sessions.On("Create", ctx, mock.AnythingOfType("*model.Session")).Return(nil)
			},
		},
		{
			name:     "invalid email",
			in:       RegisterInput{Email: "not-an-email", Password: "correct horse"},
			setup:    func(*MockUserRepo, *MockSessionRepo) {},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:     "short password",
			in:       RegisterInput{Email: "ada@example.com", Password: "short"},
			setup:    func(*MockUserRepo, *MockSessionRepo) {},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:     "password longer than bcrypt accepts",
			in:       RegisterInput{Email: "ada@example.com", Password: strings.Repeat("é", 40)},
			setup:    func(*MockUserRepo, *MockSessionRepo) {},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name: "password at the bcrypt limit",
			in:   RegisterInput{Email: "ada@example.com", Password: strings.Repeat("a", secrets.MaxPasswordLen)},
			setup: func(users *MockUserRepo, sessions *MockSessionRepo) {
				users.On("EmailExists", ctx, "ada@example.com").Return(false, nil)
				users.On("Create", ctx, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = uuid.New()
				}).Return(nil)
				sessions.On("Create", ctx, mock.AnythingOfType("*model.Session")).Return(nil)
			},
		},
		{
			name: "email already registered",
			in:   RegisterInput{Email: "ada@example.com", Password: "correct horse"},
			setup: func(users *MockUserRepo, _ *MockSessionRepo) {
				users.On("EmailExists", ctx, "ada@example.com").Return(true, nil)
			},
			wantErr:  true,
			wantKind: apperr.KindConflict,
		},
		{
			name: "unique index race",
			in:   RegisterInput{Email: "ada@example.com", Password: "correct horse"},
			setup: func(users *MockUserRepo, _ *MockSessionRepo) {
				users.On("EmailExists", ctx, "ada@example.com").Return(false, nil)
				users.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			wantErr:  true,
			wantKind: apperr.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			sessions := &MockSessionRepo{}
			tt.setup(users, sessions)

			out, err := newTestUserService(users, sessions).Register(ctx, tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, out)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, out.Token)
				assert.Equal(t, "ada@example.com", out.User.Email)
				assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, time.Minute)
			}

			users.AssertExpectations(t)
			sessions.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := secrets.HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: hash}

	tests := []struct {
		name     string
		password string
		setup    func(*MockUserRepo, *MockSessionRepo)
		wantErr  bool
	}{
		{
			name:     "successful login purges expired sessions",
			password: "correct horse",
			setup: func(users *MockUserRepo, sessions *MockSessionRepo) {
				users.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
				sessions.On("DeleteExpired", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(int64(2), nil)
				sessions.On("Create", ctx, mock.AnythingOfType("*model.Session")).Return(nil)
			},
		},
		{
			name:     "wrong password",
			password: "wrong horse",
			setup: func(users *MockUserRepo, _ *MockSessionRepo) {
				users.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
			},
			wantErr: true,
		},
		{
			name:     "unknown email",
			password: "correct horse",
			setup: func(users *MockUserRepo, _ *MockSessionRepo) {
				users.On("GetByEmail", ctx, "ada@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			sessions := &MockSessionRepo{}
			tt.setup(users, sessions)

			out, err := newTestUserService(users, sessions).Login(ctx, LoginInput{Email: "ADA@example.com", Password: tt.password})

			if tt.wantErr {
				assert.True(t, apperr.IsKind(err, apperr.KindAuth))
				assert.Equal(t, "invalid email or password", apperr.As(err).Msg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user, out.User)
			}
			users.AssertExpectations(t)
			sessions.AssertExpectations(t)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := &model.User{ID: uuid.New(), Email: "ada@example.com"}

	users := &MockUserRepo{}
	sessions := &MockSessionRepo{}
	var created *model.Session
	sessions.On("Create", ctx, mock.AnythingOfType("*model.Session")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.Session)
	}).Return(nil)

	svc := newTestUserService(users, sessions).(*userService)
	out, err := svc.issue(ctx, user, "test-agent")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "test-agent", created.UserAgent)

	t.Run("valid token", func(t *testing.T) {
		sessions.On("Get", ctx, created.ID).Return(created, nil).Once()
		users.On("GetByID", ctx, user.ID).Return(user, nil).Once()

		gotUser, gotSess, err := svc.Authenticate(ctx, out.Token)
		require.NoError(t, err)
		assert.Equal(t, user, gotUser)
		assert.Equal(t, created.ID, gotSess.ID)
	})

	t.Run("logged out session", func(t *testing.T) {
		sessions.On("Get", ctx, created.ID).Return(nil, gorm.ErrRecordNotFound).Once()

		_, _, err := svc.Authenticate(ctx, out.Token)
		assert.True(t, apperr.IsKind(err, apperr.KindAuth))
	})

	t.Run("expired session", func(t *testing.T) {
		expired := *created
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		sessions.On("Get", ctx, created.ID).Return(&expired, nil).Once()

		_, _, err := svc.Authenticate(ctx, out.Token)
		assert.True(t, apperr.IsKind(err, apperr.KindAuth))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "not.a.token")
		assert.True(t, apperr.IsKind(err, apperr.KindAuth))
	})

	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	sessions := &MockSessionRepo{}
	sessions.On("Delete", ctx, id).Return(nil).Once()
	sessions.On("Delete", ctx, id).Return(errors.New("db down")).Once()
	svc := newTestUserService(&MockUserRepo{}, sessions)

	assert.NoError(t, svc.Logout(ctx, id))
	assert.True(t, apperr.IsKind(svc.Logout(ctx, id), apperr.KindInternal))
	sessions.AssertExpectations(t)
}
