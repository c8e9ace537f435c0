package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/enums"
)

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "aquastore",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := jwtConfig()
	now := time.Now()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UID:   "1",
		Email: "admin@mvs.aqua",
		Role:  enums.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UID != "1" || claims.Role != enums.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti")
	}
}

func TestMintRejectsInvalidRole(t *testing.T) {
	_, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{UID: "1", Role: enums.Role("root")})
	if err == nil || !strings.Contains(err.Error(), "invalid role") {
		t.Fatalf("expected invalid role error, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := jwtConfig()
	past := time.Now().Add(-2 * time.Hour)

	token, err := MintAccessToken(cfg, past, AccessTokenPayload{UID: "1", Role: enums.RoleAdmin})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{UID: "1", Role: enums.RoleAdmin})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := jwtConfig()
	other.Secret = "different"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected signature error")
	}
}
