package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/models"
)

// AddMember добавляет участника в проект. Дубликат — ошибка ErrAlreadyMember.
func (d *Database) AddMember(projectID, userID uuid.UUID, role string) (*models.ProjectMember, error) {
	exists, err := d.IsMember(projectID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyMember
	}

	if role == "" {
		role = "member"
	}

	member := models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}

	if err := d.db.Create(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

func (d *Database) IsMember(projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (d *Database) GetProjectMembers(projectID uuid.UUID) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := d.db.
		Preload("User").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}
