package auth

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents the request payload for creating an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (req *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// LoginRequest represents the request payload for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (req *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// LoginResponse carries the signed token and basic user info
type LoginResponse struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}
