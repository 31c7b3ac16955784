package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateProject(project *models.Project) error {
	return d.db.Create(project).Error
}

func (d *Database) GetProject(id string) (*models.Project, error) {
	var project models.Project
	err := d.db.
		Preload("Creator").
		Preload("Members").
		Preload("Members.User").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (d *Database) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	err := d.db.
		Preload("Creator").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// GetUserProjects возвращает проекты, созданные пользователем
func (d *Database) GetUserProjects(creatorID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := d.db.
		Preload("Creator").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// GetJoinedProjects возвращает проекты, где пользователь участник
func (d *Database) GetJoinedProjects(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := d.db.
		Preload("Creator").
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (d *Database) UpdateProject(project *models.Project) error {
	return d.db.Save(project).Error
}

// DeleteProject удаляет проект вместе с участниками и заявками
func (d *Database) DeleteProject(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProjectMember{}, "project_id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.ProjectRequest{}, "project_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
