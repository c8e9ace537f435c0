package auth

import "github.com/mvsaqua/aquastore-backend/pkg/models"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}
