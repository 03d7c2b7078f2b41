package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ArthurDelaporte/Twitly-Back/internal/utils"
)

func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		refreshToken := c.GetHeader("X-Refresh-Token")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		jwtSecret := []byte(os.Getenv("JWT_SECRET"))

		claims := utils.ParseJWTClaims(tokenStr)
		expFloat, ok := claims["exp"].(float64)
		if !ok {
			c.Next()
			return
		}

		exp := int64(expFloat)
		now := time.Now().Unix()

		// Rafraîchissement si expiré
		if now > exp && refreshToken != "" {
			if newToken, err := refreshAccessToken(refreshToken); err == nil {
				tokenStr = newToken
				c.Set("access_token", newToken)
				c.Header("X-New-Access-Token", newToken)
			}
		}

		// Re-validation avec clé secrète
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("méthode signature invalide")
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if verified, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, ok := verified["sub"].(string); ok {
				c.Set("user_id", userID)
			}
		}

		c.Next()
	}
}
