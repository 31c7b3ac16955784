package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/handlers/dto"
	"github.com/thereayou/projectconnect/internal/models"
	"github.com/thereayou/projectconnect/pkg/auth"
	"github.com/thereayou/projectconnect/pkg/logger"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, redis: rdb}
}

// Register регистрирует пользователя и сразу выдаёт токен
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if _, err := h.db.FindUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "cannot hash password"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		LastActive:   time.Now(),
		CreatedAt:    time.Now(),
	}

	if err := h.db.SaveUser(user); err != nil {
		logger.Error().Err(err).Msg("failed to create user")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "failed to create user"})
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{
		"token": token,
		"user":  formatUserResponse(user),
	}})
}

// Login выдаёт JWT и обновляет last_active
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.db.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	if err := h.db.UpdateLastActive(user.ID.String()); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not update last active"})
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"token": token,
		"user":  formatUserResponse(user),
	}})
}

// Logout ставит токен в черный список в Redis до истечения
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
		return
	}

	if h.redis != nil {
		ttl := time.Until(exp)
		h.redis.Set(context.Background(), "blacklist:"+rawToken, 1, ttl)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}
