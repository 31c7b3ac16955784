package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"not null;uniqueIndex:idx_project_member"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_project_member"`
	Role      string    `gorm:"default:'member'"`
	JoinedAt  time.Time `gorm:"autoCreateTime"`

	// Связи
	Project Project `gorm:"foreignKey:ProjectID"`
	User    User    `gorm:"foreignKey:UserID"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
