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
)

type ProjectHandler struct {
	db *database.Database
}

func NewProjectHandler(db *database.Database) *ProjectHandler {
	return &ProjectHandler{db: db}
}

// CreateProject создает новый проект
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	project := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		SkillsNeeded: req.SkillsNeeded,
		CreatorID:    userID,
	}

	if err := h.db.CreateProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"project": formatProjectResponse(project)}})
}

// ListProjects возвращает все проекты, новые первыми
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.db.GetAllProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"projects": formatProjectList(projects)}})
}

// MyProjects возвращает проекты пользователя: созданные и те, где он участник
func (h *ProjectHandler) MyProjects(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	created, err := h.db.GetUserProjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get projects"})
		return
	}

	joined, err := h.db.GetJoinedProjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"created": formatProjectList(created),
		"joined":  formatProjectList(joined),
	}})
}

// GetProject возвращает проект с участниками
func (h *ProjectHandler) GetProject(c *gin.Context) {
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project id"})
		return
	}

	project, err := h.db.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	response := formatProjectResponse(project)
	members := make([]gin.H, len(project.Members))
	for i, member := range project.Members {
		members[i] = gin.H{
			"id":         member.User.ID,
			"name":       member.User.Name,
			"avatar_url": member.User.AvatarURL,
			"role":       member.Role,
			"joined_at":  member.JoinedAt,
		}
	}
	response["members"] = members

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"project": response}})
}

// UpdateProject обновляет проект. Доступно только создателю.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project id"})
		return
	}

	project, err := h.db.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	if project.CreatorID != userID {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// Обновляем только переданные поля
	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.SkillsNeeded != nil {
		project.SkillsNeeded = req.SkillsNeeded
	}

	if err := h.db.UpdateProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"project": formatProjectResponse(project)}})
}

// DeleteProject удаляет проект. Доступно только создателю.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project id"})
		return
	}

	project, err := h.db.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	if project.CreatorID != userID {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	if err := h.db.DeleteProject(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted"})
}

// JoinProject добавляет пользователя в проект напрямую
func (h *ProjectHandler) JoinProject(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project id"})
		return
	}

	project, err := h.db.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	if project.CreatorID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "cannot join your own project"})
		return
	}

	member, err := h.db.AddMember(projectID, userID, "member")
	if err != nil {
		if errors.Is(err, database.ErrAlreadyMember) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "already a member of this project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to join project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"member": gin.H{
		"project_id": member.ProjectID,
		"user_id":    member.UserID,
		"role":       member.Role,
		"joined_at":  member.JoinedAt,
	}}})
}

// GetProjectMembers возвращает список участников проекта
func (h *ProjectHandler) GetProjectMembers(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project id"})
		return
	}

	if _, err := h.db.GetProject(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	members, err := h.db.GetProjectMembers(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get members"})
		return
	}

	result := make([]gin.H, len(members))
	for i, member := range members {
		result[i] = gin.H{
			"id":         member.User.ID,
			"name":       member.User.Name,
			"avatar_url": member.User.AvatarURL,
			"role":       member.Role,
			"joined_at":  member.JoinedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"members": result}})
}

// formatProjectResponse форматирует ответ для проекта
func formatProjectResponse(project *models.Project) gin.H {
	response := gin.H{
		"id":            project.ID,
		"title":         project.Title,
		"description":   project.Description,
		"skills_needed": project.SkillsNeeded,
		"creator_id":    project.CreatorID,
		"created_at":    project.CreatedAt,
	}

	// Если загружена информация о создателе
	if project.Creator.ID != uuid.Nil {
		response["creator"] = gin.H{
			"id":         project.Creator.ID,
			"name":       project.Creator.Name,
			"avatar_url": project.Creator.AvatarURL,
		}
	}

	return response
}

func formatProjectList(projects []models.Project) []gin.H {
	result := make([]gin.H, len(projects))
	for i := range projects {
		result[i] = formatProjectResponse(&projects[i])
	}
	return result
}
