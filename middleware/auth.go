package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"devseva/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// parseClaims verifies an HS256 token issued by the identity service and
// returns its claims. Token issuance is not handled here.
func parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// JWTAuthUserMiddleware requires a valid user token and sets userID in the
// gin context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return authMiddleware("user", "userID")
}

// JWTAuthProviderMiddleware requires a valid provider token and sets
// providerID in the gin context.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return authMiddleware("provider", "providerID")
}

func authMiddleware(role, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if tokenRole, _ := claims["role"].(string); tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token role not permitted for this resource"})
			return
		}
		subject, _ := claims["sub"].(string)
		if subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token missing subject"})
			return
		}

		c.Set(contextKey, subject)
		c.Next()
	}
}
