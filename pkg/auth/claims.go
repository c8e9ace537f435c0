package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/mvsaqua/aquastore-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UID   string
	Email string
	Role  enums.Role
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UID   string     `json:"uid"`
	Email string     `json:"email"`
	Role  enums.Role `json:"role"`
	jwt.RegisteredClaims
}
