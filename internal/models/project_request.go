package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы заявки. Из pending заявка уходит только в accepted или rejected.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

type ProjectRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"not null;uniqueIndex:idx_project_request"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_project_request"`
	Status    string    `gorm:"not null;default:'pending';check:status IN ('pending','accepted','rejected')"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Связи
	Project Project `gorm:"foreignKey:ProjectID"`
	User    User    `gorm:"foreignKey:UserID"`
}

func (r *ProjectRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
