package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// AccessTokenExpiry is the fixed lifetime of an issued bearer token.
const AccessTokenExpiry = 30 * time.Minute

// GenerateToken mints a JWT for the given user email. The email travels in
// the standard "sub" claim and is how the auth middleware resolves the user.
func GenerateToken(email string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(AccessTokenExpiry).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
