package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/handlers/dto"
	"github.com/thereayou/projectconnect/internal/middleware"
	"github.com/thereayou/projectconnect/internal/models"
	"github.com/thereayou/projectconnect/pkg/logger"
	"gorm.io/gorm"
)

type RequestHandler struct {
	db *database.Database
}

func NewRequestHandler(db *database.Database) *RequestHandler {
	return &RequestHandler{db: db}
}

// CreateRequest подает заявку на вступление в проект
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project id"})
		return
	}

	project, err := h.db.GetProject(projectID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	if project.CreatorID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "cannot request to join your own project"})
		return
	}

	request := &models.ProjectRequest{
		ProjectID: projectID,
		UserID:    userID,
		Message:   req.Message,
	}

	if err := h.db.CreateRequest(request); err != nil {
		if errors.Is(err, database.ErrDuplicateRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "request already exists for this project"})
			return
		}
		logger.Error().Err(err).Msg("failed to create request")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"request": formatRequestResponse(request)}})
}

// IncomingRequests возвращает pending заявки на проекты пользователя
func (h *RequestHandler) IncomingRequests(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requests, err := h.db.GetIncomingRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get requests"})
		return
	}

	result := make([]gin.H, len(requests))
	for i := range requests {
		result[i] = formatRequestResponse(&requests[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"requests": result}})
}

// OutgoingRequests возвращает заявки, поданные пользователем
func (h *RequestHandler) OutgoingRequests(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requests, err := h.db.GetOutgoingRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get requests"})
		return
	}

	result := make([]gin.H, len(requests))
	for i := range requests {
		result[i] = formatRequestResponse(&requests[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"requests": result}})
}

// UpdateRequestStatus принимает или отклоняет заявку.
// Не-владельцу отвечаем 404, чтобы не подтверждать существование заявки.
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request id"})
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	request, err := h.db.ResolveRequest(requestID, req.Status, userID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, database.ErrNotProjectOwner):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "request not found"})
		case errors.Is(err, database.ErrRequestResolved):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "request is already resolved"})
		case errors.Is(err, database.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid status"})
		default:
			logger.Error().Err(err).Msg("failed to resolve request")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"request": formatRequestResponse(request)}})
}

// formatRequestResponse форматирует ответ для заявки
func formatRequestResponse(request *models.ProjectRequest) gin.H {
	response := gin.H{
		"id":         request.ID,
		"project_id": request.ProjectID,
		"user_id":    request.UserID,
		"status":     request.Status,
		"message":    request.Message,
		"created_at": request.CreatedAt,
		"updated_at": request.UpdatedAt,
	}

	if request.Project.ID != uuid.Nil {
		response["project"] = gin.H{
			"id":    request.Project.ID,
			"title": request.Project.Title,
		}
	}

	if request.User.ID != uuid.Nil {
		response["user"] = gin.H{
			"id":         request.User.ID,
			"name":       request.User.Name,
			"avatar_url": request.User.AvatarURL,
		}
	}

	return response
}
