package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys under which the auth middleware stores the caller's identity.
const (
	UserContextKey  = "userID"
	EmailContextKey = "userEmail"
)

// Claims are the JWT claims issued by the auth provider.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
