package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/middleware"
)

type DashboardHandler struct {
	db *database.Database
}

func NewDashboardHandler(db *database.Database) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// GetStats возвращает счетчики для дашборда текущего пользователя
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	stats, err := h.db.GetDashboardStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"stats": stats}})
}
