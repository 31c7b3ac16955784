package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetConversationMessages возвращает всю переписку двух пользователей по возрастанию времени
func (d *Database) GetConversationMessages(userID, otherID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// UnreadTotal считает все непрочитанные сообщения пользователя
func (d *Database) UnreadTotal(userID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

// UnreadBySender группирует непрочитанные сообщения по отправителю
func (d *Database) UnreadBySender(userID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		SenderID uuid.UUID
		Count    int64
	}

	err := d.db.Model(&models.Message{}).
		Select("sender_id, COUNT(*) as count").
		Where("receiver_id = ? AND read_at IS NULL", userID).
		Group("sender_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.SenderID] = row.Count
	}

	return counts, nil
}

// MarkConversationRead помечает прочитанными все сообщения от sender к receiver.
// Повторный вызов — no-op: условие read_at IS NULL уже ничего не находит.
func (d *Database) MarkConversationRead(senderID, receiverID uuid.UUID) error {
	return d.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read_at IS NULL", senderID, receiverID).
		Update("read_at", time.Now()).Error
}
