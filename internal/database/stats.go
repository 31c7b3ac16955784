package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/models"
)

// DashboardStats — счетчики для дашборда пользователя
type DashboardStats struct {
	ProjectsCreated int64 `json:"projects_created"`
	ProjectsJoined  int64 `json:"projects_joined"`
	PendingRequests int64 `json:"pending_requests"`
	UnreadMessages  int64 `json:"unread_messages"`
}

func (d *Database) GetDashboardStats(userID uuid.UUID) (*DashboardStats, error) {
	var stats DashboardStats

	err := d.db.Model(&models.Project{}).
		Where("creator_id = ?", userID).
		Count(&stats.ProjectsCreated).Error
	if err != nil {
		return nil, err
	}

	err = d.db.Model(&models.ProjectMember{}).
		Where("user_id = ?", userID).
		Count(&stats.ProjectsJoined).Error
	if err != nil {
		return nil, err
	}

	err = d.db.Model(&models.ProjectRequest{}).
		Joins("JOIN projects ON projects.id = project_requests.project_id").
		Where("projects.creator_id = ? AND project_requests.status = ?", userID, models.RequestPending).
		Count(&stats.PendingRequests).Error
	if err != nil {
		return nil, err
	}

	stats.UnreadMessages, err = d.UnreadTotal(userID)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
