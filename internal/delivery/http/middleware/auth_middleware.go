package middleware

import (
	"fmt"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/DrekStyler/handypro-api/config"
	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
)

// AuthMiddleware validates bearer tokens and injects the caller's identity into the
// gin context. Firebase ID tokens are the production path; HS256 tokens signed with
// DEV_AUTH_SECRET are accepted for local development when no Firebase project is
// configured.
func AuthMiddleware(authClient *fbauth.Client, cfg *config.Config, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		var uid, email string

		switch {
		case authClient != nil:
			decoded, err := authClient.VerifyIDToken(c.Request.Context(), tokenString)
			if err != nil {
				response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
				c.Abort()
				return
			}
			uid = decoded.UID
			if e, ok := decoded.Claims["email"].(string); ok {
				email = e
			}

		case cfg.DevAuthSecret != "":
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.DevAuthSecret), nil
			})
			if err != nil || !token.Valid {
				response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
				c.Abort()
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
				c.Abort()
				return
			}
			uid, _ = claims["sub"].(string)
			email, _ = claims["email"].(string)

		default:
			response.Error(c, http.StatusUnauthorized, "Authentication is not configured", nil)
			c.Abort()
			return
		}

		if uid == "" {
			response.Error(c, http.StatusUnauthorized, "Token has no subject", nil)
			c.Abort()
			return
		}

		// Role comes from the user document, not token claims. A missing document is
		// allowed here: the first-sign-in endpoint creates it.
		var role string
		if user, err := userRepo.GetByID(c.Request.Context(), uid); err == nil {
			role = user.Role
		}

		c.Set(string(domain.KeyUserID), uid)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimPrefix(bearerToken, "Bearer ")
	}
	return ""
}
