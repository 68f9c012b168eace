package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/sitegenie/sitegenie/internal/modules/service"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setup      func(*MockUserService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: map[string]string{"email": "owner@example.com", "password": "correct horse", "name": "Owner"},
			setup: func(m *MockUserService) {
				m.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
					return in.Email == "owner@example.com" && in.Name == "Owner"
				})).Return(&service.AuthOutput{User: testUser, Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: map[string]string{"email": "owner@example.com", "password": "correct horse"},
			setup: func(m *MockUserService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, apperr.Conflict("email already registered", nil))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
		{
			name:       "missing password",
			body:       map[string]string{"email": "owner@example.com"},
			setup:      func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setup(svc)
			h := NewUserHandler(svc)
			r := setupRouter()
			r.POST("/users/register", h.Register)

			w := doJSON(t, r, http.MethodPost, "/users/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			res := decode(t, w)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, res.ErrorCode)
			} else {
				assert.Equal(t, "tok", res.Data["token"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_Login_Unauthorized(t *testing.T) {
	svc := &MockUserService{}
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, apperr.Auth("invalid email or password"))
	r := setupRouter()
	r.POST("/users/login", NewUserHandler(svc).Login)

	w := doJSON(t, r, http.MethodPost, "/users/login", map[string]string{"email": "a@b.co", "password": "nope-nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid email or password", decode(t, w).Msg)
}

func TestUserHandler_MeAndLogout(t *testing.T) {
	svc := &MockUserService{}
	svc.On("Logout", mock.Anything, testSession.ID).Return(nil)
	h := NewUserHandler(svc)
	r := setupRouter()
	r.GET("/users/me", h.Me)
	r.POST("/users/logout", h.Logout)

	w := doJSON(t, r, http.MethodGet, "/users/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner@example.com", decode(t, w).Data["email"])

	w = doJSON(t, r, http.MethodPost, "/users/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
