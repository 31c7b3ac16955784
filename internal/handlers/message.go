package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/handlers/dto"
	"github.com/thereayou/projectconnect/internal/middleware"
	"github.com/thereayou/projectconnect/internal/models"
	"github.com/thereayou/projectconnect/pkg/logger"
)

type MessageHandler struct {
	db           *database.Database
	onlineWindow time.Duration
}

func NewMessageHandler(db *database.Database, onlineWindow time.Duration) *MessageHandler {
	return &MessageHandler{db: db, onlineWindow: onlineWindow}
}

// SendMessage отправляет личное сообщение
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid receiver id"})
		return
	}

	if receiverID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "cannot send message to yourself"})
		return
	}

	if _, err := h.db.GetUser(receiverID.String()); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "receiver not found"})
		return
	}

	message := &models.Message{
		SenderID:   userID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}

	if err := h.db.SaveMessage(message); err != nil {
		logger.Error().Err(err).Msg("failed to save message")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"message": formatMessageResponse(message)}})
}

// GetConversations возвращает агрегированный список диалогов
func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	conversations, err := h.db.GetUserConversations(userID, h.onlineWindow)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build conversations")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get conversations"})
		return
	}

	result := make([]gin.H, len(conversations))
	for i, conv := range conversations {
		result[i] = gin.H{
			"user_id":         conv.UserID,
			"name":            conv.Name,
			"avatar_url":      conv.AvatarURL,
			"last_message":    conv.LastMessage,
			"last_message_at": conv.LastMessageAt,
			"is_online":       conv.IsOnline,
			"unread_count":    conv.UnreadCount,
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"conversations": result}})
}

// GetConversation возвращает всю переписку с одним собеседником
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid user id"})
		return
	}

	messages, err := h.db.GetConversationMessages(userID, otherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get messages"})
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		result[i] = formatMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"messages": result}})
}

// UnreadCount возвращает общее число непрочитанных сообщений
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	count, err := h.db.UnreadTotal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to get unread count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"unread_count": count}})
}

// MarkRead помечает прочитанными все сообщения от указанного отправителя
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	senderID, err := uuid.Parse(c.Param("senderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid sender id"})
		return
	}

	if err := h.db.MarkConversationRead(senderID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to mark messages as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "messages marked as read"})
}

// formatMessageResponse форматирует ответ для сообщения
func formatMessageResponse(message *models.Message) gin.H {
	response := gin.H{
		"id":          message.ID,
		"sender_id":   message.SenderID,
		"receiver_id": message.ReceiverID,
		"content":     message.Content,
		"created_at":  message.CreatedAt,
	}

	if message.ReadAt != nil {
		response["read_at"] = message.ReadAt
	}

	return response
}
