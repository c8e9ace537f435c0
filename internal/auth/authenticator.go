package auth

import (
	"context"
	"crypto/subtle"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
)

const invalidCredentialsMessage = "invalid credentials"

// Credentials is what a caller presents to the gate.
type Credentials struct {
	Username string
	Password string
}

// Authenticator is the pluggable credential check. The shipped
// implementation is a static pair from config; a real credential store can
// replace it without touching any caller.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (enums.Role, error)
}

// StaticAuthenticator checks against the configured admin pair. This is a
// demo-grade gate, not a security boundary: no hashing, no lockout, no
// session expiry beyond the token TTL.
type StaticAuthenticator struct {
	cfg config.AdminConfig
}

func NewStaticAuthenticator(cfg config.AdminConfig) *StaticAuthenticator {
	return &StaticAuthenticator{cfg: cfg}
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, creds Credentials) (enums.Role, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.cfg.Password)) == 1
	if !userOK || !passOK {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return enums.RoleAdmin, nil
}
