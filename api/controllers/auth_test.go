package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authsvc "github.com/mvsaqua/aquastore-backend/internal/auth"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

type stubAuthService struct {
	resp   *authsvc.LoginResponse
	err    error
	logout bool
}

func (s *stubAuthService) Login(_ context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubAuthService) Logout(_ context.Context) error {
	s.logout = true
	return s.err
}

func TestLoginSuccess(t *testing.T) {
	svc := &stubAuthService{resp: &authsvc.LoginResponse{
		AccessToken: "token",
		User:        models.User{UID: "1", Email: "admin@mvs.aqua", Role: "admin"},
	}}
	handler := Login(svc, nil)

	body := `{"username":"admin","password":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data authsvc.LoginResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "token" || envelope.Data.User.UID != "1" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	handler := Login(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"admin"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLoginRejected(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := Login(svc, nil)

	body := `{"username":"admin","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestLogout(t *testing.T) {
	svc := &stubAuthService{}
	handler := Logout(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !svc.logout {
		t.Fatalf("logout not forwarded")
	}
}
