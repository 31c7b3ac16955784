package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    // пустой для OAuth-пользователей
	AvatarURL    string
	Bio          string
	LastActive   time.Time
	CreatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsOnline проверяет, был ли пользователь активен в пределах окна
func (u *User) IsOnline(window time.Duration, now time.Time) bool {
	return !u.LastActive.Before(now.Add(-window))
}
