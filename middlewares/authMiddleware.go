package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"cleanify-be/config"
	"cleanify-be/models"
)

// UserKey is the gin context key under which the authenticated user is stored.
const UserKey = "user"

// AuthMiddleware verifies the bearer token and resolves it to a user, which
// is placed in the request context. Any failure terminates the request with
// 401 before a handler runs.
func AuthMiddleware(store *config.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		// Extracting token from "Bearer <token>" format
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		var user models.User
		found := false
		_ = store.With(func() error {
			if u := store.FindUserByEmail(email); u != nil {
				user = *u
				found = true
			}
			return nil
		})
		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
