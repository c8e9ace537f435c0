package auth

import (
	"context"
	"fmt"
	"time"

	pkgAuth "github.com/mvsaqua/aquastore-backend/pkg/auth"
	"github.com/mvsaqua/aquastore-backend/pkg/config"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// adminUID matches the identity the storefront has always written under the
// user key.
const adminUID = "1"

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context) error
}

// sessionStore persists the signed-in identity under its profile-local key.
type sessionStore interface {
	Login(ctx context.Context, user models.User) error
	Logout(ctx context.Context) error
}

type service struct {
	authenticator Authenticator
	sessions      sessionStore
	jwtCfg        config.JWTConfig
	adminCfg      config.AdminConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Authenticator Authenticator
	Sessions      sessionStore
	JWTConfig     config.JWTConfig
	AdminConfig   config.AdminConfig
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Authenticator == nil {
		return nil, fmt.Errorf("authenticator is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	return &service{
		authenticator: params.Authenticator,
		sessions:      params.Sessions,
		jwtCfg:        params.JWTConfig,
		adminCfg:      params.AdminConfig,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	role, err := s.authenticator.Authenticate(ctx, Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	user := models.User{
		UID:   adminUID,
		Email: s.adminCfg.Email,
		Role:  role,
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now(), pkgAuth.AccessTokenPayload{
		UID:   user.UID,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting session")
	}

	return &LoginResponse{AccessToken: token, User: user}, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}
