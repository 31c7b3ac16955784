package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/middleware"
	"github.com/thereayou/projectconnect/internal/models"
)

type UserHandler struct {
	db           *database.Database
	onlineWindow time.Duration
}

func NewUserHandler(db *database.Database, onlineWindow time.Duration) *UserHandler {
	return &UserHandler{db: db, onlineWindow: onlineWindow}
}

// GetMe возвращает информацию о текущем пользователе
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": formatUserResponse(user)}})
}

// UpdateMe обновляет профиль текущего пользователя
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req struct {
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		return
	}

	// Обновляем только переданные поля
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}

	if err := h.db.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": formatUserResponse(user)}})
}

// GetUser возвращает публичный профиль пользователя по ID
func (h *UserHandler) GetUser(c *gin.Context) {
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid user id"})
		return
	}

	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"avatar_url": user.AvatarURL,
		"bio":        user.Bio,
		"is_online":  user.IsOnline(h.onlineWindow, time.Now()),
	}}})
}

// SearchUsers поиск пользователей по имени
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "query parameter is required"})
		return
	}

	users, err := h.db.SearchUsersByName(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to search users"})
		return
	}

	result := make([]gin.H, len(users))
	for i, user := range users {
		result[i] = gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"avatar_url": user.AvatarURL,
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"users": result}})
}

// formatUserResponse форматирует ответ для пользователя
func formatUserResponse(user *models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"avatar_url":  user.AvatarURL,
		"bio":         user.Bio,
		"last_active": user.LastActive,
		"created_at":  user.CreatedAt,
	}
}
