package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRequest создает заявку на вступление. На пару (проект, пользователь)
// допускается не больше одной заявки независимо от статуса.
func (d *Database) CreateRequest(request *models.ProjectRequest) error {
	var count int64
	err := d.db.Model(&models.ProjectRequest{}).
		Where("project_id = ? AND user_id = ?", request.ProjectID, request.UserID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateRequest
	}

	request.Status = models.RequestPending

	return d.db.Create(request).Error
}

func (d *Database) GetRequest(id string) (*models.ProjectRequest, error) {
	var request models.ProjectRequest
	err := d.db.
		Preload("Project").
		Preload("User").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetIncomingRequests возвращает pending заявки на проекты, созданные пользователем
func (d *Database) GetIncomingRequests(creatorID uuid.UUID) ([]models.ProjectRequest, error) {
	var requests []models.ProjectRequest
	err := d.db.
		Preload("Project").
		Preload("User").
		Joins("JOIN projects ON projects.id = project_requests.project_id").
		Where("projects.creator_id = ? AND project_requests.status = ?", creatorID, models.RequestPending).
		Order("project_requests.created_at DESC").
		Find(&requests).Error
	return requests, err
}

// GetOutgoingRequests возвращает заявки, поданные пользователем
func (d *Database) GetOutgoingRequests(userID uuid.UUID) ([]models.ProjectRequest, error) {
	var requests []models.ProjectRequest
	err := d.db.
		Preload("Project").
		Preload("Project.Creator").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ResolveRequest переводит заявку из pending в accepted или rejected.
// Право на переход есть только у создателя проекта. Принятие добавляет
// участника и создает два приветственных сообщения — все в одной транзакции.
func (d *Database) ResolveRequest(requestID uuid.UUID, status string, actorID uuid.UUID) (*models.ProjectRequest, error) {
	if status != models.RequestAccepted && status != models.RequestRejected {
		return nil, ErrInvalidStatus
	}

	var request models.ProjectRequest

	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Project").First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}

		if request.Project.CreatorID != actorID {
			return ErrNotProjectOwner
		}

		if request.Status != models.RequestPending {
			return ErrRequestResolved
		}

		if err := tx.Model(&request).Update("status", status).Error; err != nil {
			return err
		}
		request.Status = status

		if status == models.RequestRejected {
			return nil
		}

		// Конфликт по (project_id, user_id) игнорируем: участник уже есть
		member := models.ProjectMember{
			ProjectID: request.ProjectID,
			UserID:    request.UserID,
			Role:      "member",
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
			return err
		}

		welcome := models.Message{
			SenderID:   request.Project.CreatorID,
			ReceiverID: request.UserID,
			Content:    fmt.Sprintf("Welcome to \"%s\"! Glad to have you on the team.", request.Project.Title),
		}
		if err := tx.Create(&welcome).Error; err != nil {
			return err
		}

		ack := models.Message{
			SenderID:   request.UserID,
			ReceiverID: request.Project.CreatorID,
			Content:    fmt.Sprintf("Thanks for accepting me into \"%s\"! Looking forward to working together.", request.Project.Title),
		}
		return tx.Create(&ack).Error
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}
