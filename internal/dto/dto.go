package dto

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type CheckoutRequest struct {
	// major units, e.g. 10 for $10.00
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" validate:"omitempty,alpha,len=3"`
}

type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
