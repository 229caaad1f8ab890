package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID uint) (string, error)

	// ValidateToken verifies the signature and expiry of a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
