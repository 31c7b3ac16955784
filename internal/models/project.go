package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	SkillsNeeded []string  `gorm:"type:text;serializer:json"`
	CreatorID    uuid.UUID `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Связи
	Creator User            `gorm:"foreignKey:CreatorID"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
