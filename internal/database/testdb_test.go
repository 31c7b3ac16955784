package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/projectconnect/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB поднимает отдельную in-memory базу на каждый тест
func newTestDB(t *testing.T) *Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewDatabase(db)
}

func createTestUser(t *testing.T, d *Database, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:       name,
		Email:      fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		LastActive: time.Now(),
	}
	require.NoError(t, d.SaveUser(user))
	return user
}

func createTestProject(t *testing.T, d *Database, creator *models.User, title string) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:     title,
		CreatorID: creator.ID,
	}
	require.NoError(t, d.CreateProject(project))
	return project
}

func sendTestMessage(t *testing.T, d *Database, sender, receiver *models.User, content string, at time.Time) *models.Message {
	t.Helper()

	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
		CreatedAt:  at,
	}
	require.NoError(t, d.SaveMessage(message))
	return message
}
