package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/pkg/auth"
)

const UserIDKey = "userID"

// AuthMiddleware проверяет JWT токен. Если redisClient задан, дополнительно
// проверяет blacklist разлогиненных токенов. Успешный запрос асинхронно
// обновляет last_active пользователя.
func AuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client, db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid token"})
			c.Abort()
			return
		}

		if redisClient != nil {
			exists, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
			if err != nil || exists > 0 {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token is blacklisted"})
				c.Abort()
				return
			}
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid user id"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)

		go db.UpdateLastActive(userID.String())

		c.Next()
	}
}
