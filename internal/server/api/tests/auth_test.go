package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/careermind/internal/server/api"
	"github.com/IvanChernomyrdin/careermind/internal/server/config"
	"github.com/IvanChernomyrdin/careermind/internal/server/crypto"
	"github.com/IvanChernomyrdin/careermind/internal/server/middleware"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	"github.com/IvanChernomyrdin/careermind/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/careermind/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "issuer",
			Audience:  "audience",
			AccessTTL: 1 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 8 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
	}
}

// NewTestHandler создаёт Handler с моками и конфигом через dependency injection
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	users := svcmocks.NewMockUsersRepo(ctrl)
	sessions := svcmocks.NewMockSessionsRepo(ctrl)

	svc := service.NewServices(service.Repositories{Users: users, Sessions: sessions}, testConfig(), logger.NewNop())
	verifier := middleware.NewJWTVerifier(svc.Auth.JWT())

	return api.NewHandler(svc, logger.NewNop(), verifier), users
}

func hashFor(t *testing.T, password string) string {
	t.Helper()

	a := testConfig().Password.Argon2
	hash, err := crypto.HashPassword(password, crypto.Argon2Params{
		Time:      a.Time,
		MemoryKiB: a.MemoryKiB,
		Threads:   a.Threads,
		KeyLen:    a.KeyLen,
		SaltLen:   a.SaltLen,
	})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return hash
}

func TestHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected error body, got empty")
	}
}

func TestHandler_Register_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u models.User) (uuid.UUID, error) {
			if u.Email != "a@x.com" || u.Name != "Ann" {
				t.Fatalf("unexpected user %+v", u)
			}
			if u.PasswordHash == "" || u.PasswordHash == "p1" {
				t.Fatalf("expected password hash, got %q", u.PasswordHash)
			}
			return userID, nil
		})

	body, _ := json.Marshal(shared.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "p1", Confirm: "p1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp shared.RegisterResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != userID.String() {
		t.Fatalf("expected user_id %q, got %q", userID.String(), resp.UserID)
	}
	if resp.Message != "Registration successful. Please login." {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_Register_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  shared.RegisterRequest
	}{
		{"empty fields", shared.RegisterRequest{Email: "a@x.com", Password: "p1", Confirm: "p1"}},
		{"mismatch", shared.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "p1", Confirm: "p2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := NewTestHandler(t)

			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.Register(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestHandler_Register_AlreadyExists(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, serr.ErrAlreadyExists)

	body, _ := json.Marshal(shared.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "p1", Confirm: "p1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestHandler_Register_InternalError(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, serr.ErrUnexpectedError)

	body, _ := json.Marshal(shared.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "p1", Confirm: "p1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestHandler_Login_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_Login_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "a@x.com").
		Return(models.User{ID: uuid.New(), Email: "a@x.com", Name: "Ann", PasswordHash: hashFor(t, "p1")}, nil)

	body, _ := json.Marshal(shared.LoginRequest{Email: "a@x.com", Password: "p1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp shared.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if resp.Name != "Ann" {
		t.Fatalf("expected name Ann, got %q", resp.Name)
	}

	claims, err := crypto.ParseAccessToken(resp.AccessToken, h.Svc.Auth.JWT())
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Subject != "a@x.com" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "a@x.com").
		Return(models.User{Email: "a@x.com", PasswordHash: hashFor(t, "p1")}, nil)

	body, _ := json.Marshal(shared.LoginRequest{Email: "a@x.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
