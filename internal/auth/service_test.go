package auth

import (
	"context"
	"testing"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

type stubSessions struct {
	loggedIn  *models.User
	loggedOut bool
}

func (s *stubSessions) Login(_ context.Context, user models.User) error {
	s.loggedIn = &user
	return nil
}

func (s *stubSessions) Logout(context.Context) error {
	s.loggedOut = true
	return nil
}

func newTestService(t *testing.T, sessions *stubSessions) Service {
	t.Helper()
	adminCfg := config.AdminConfig{Username: "admin", Password: "admin", Email: "admin@mvs.aqua"}
	svc, err := NewService(ServiceParams{
		Authenticator: NewStaticAuthenticator(adminCfg),
		Sessions:      sessions,
		JWTConfig:     config.JWTConfig{Secret: "test-secret", Issuer: "aquastore", ExpirationMinutes: 30},
		AdminConfig:   adminCfg,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLoginSuccess(t *testing.T) {
	sessions := &stubSessions{}
	svc := newTestService(t, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.Role != enums.RoleAdmin || resp.User.UID != "1" {
		t.Fatalf("unexpected identity: %+v", resp.User)
	}
	if sessions.loggedIn == nil || sessions.loggedIn.Email != "admin@mvs.aqua" {
		t.Fatalf("expected session persisted, got %+v", sessions.loggedIn)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	sessions := &stubSessions{}
	svc := newTestService(t, sessions)

	cases := []LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "wrong", Password: "admin"},
		{Username: "", Password: ""},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected UNAUTHORIZED for %+v, got %v", req, err)
		}
	}
	if sessions.loggedIn != nil {
		t.Fatalf("no session may be written on failed login")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &stubSessions{}
	svc := newTestService(t, sessions)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !sessions.loggedOut {
		t.Fatalf("expected session cleared")
	}
}
