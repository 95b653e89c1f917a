package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued at signup/login. Subject carries the
// user id.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
