package database

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderMessage подставляется собеседникам без истории переписки
const PlaceholderMessage = "Available to chat"

// Conversation — агрегированная запись списка диалогов: собеседник,
// последнее сообщение (если есть), онлайн-статус и счетчик непрочитанных.
type Conversation struct {
	UserID        uuid.UUID
	Name          string
	AvatarURL     string
	LastMessage   string
	LastMessageAt *time.Time
	IsOnline      bool
	UnreadCount   int64
}

type contactRow struct {
	ID         uuid.UUID
	Name       string
	AvatarURL  string
	LastActive time.Time
	Content    string
	CreatedAt  time.Time
}

type collaboratorRow struct {
	ID         uuid.UUID
	Name       string
	AvatarURL  string
	LastActive time.Time
}

// GetUserConversations строит список диалогов пользователя:
// собеседники с перепиской (по убыванию времени последнего сообщения),
// затем коллеги по проектам без переписки (по алфавиту). Собеседник,
// попавший в оба набора, остается только в первом.
func (d *Database) GetUserConversations(userID uuid.UUID, onlineWindow time.Duration) ([]Conversation, error) {
	contacts, err := d.messageContacts(userID)
	if err != nil {
		return nil, err
	}

	unread, err := d.UnreadBySender(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	onlineSince := now.Add(-onlineWindow)

	conversations := make([]Conversation, 0, len(contacts))
	seen := make(map[uuid.UUID]bool, len(contacts))

	for _, row := range contacts {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true

		lastAt := row.CreatedAt
		conversations = append(conversations, Conversation{
			UserID:        row.ID,
			Name:          row.Name,
			AvatarURL:     row.AvatarURL,
			LastMessage:   row.Content,
			LastMessageAt: &lastAt,
			IsOnline:      !row.LastActive.Before(onlineSince),
			UnreadCount:   unread[row.ID],
		})
	}

	collaborators, err := d.collaborators(userID)
	if err != nil {
		return nil, err
	}

	var withoutHistory []Conversation
	for _, row := range collaborators {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true

		withoutHistory = append(withoutHistory, Conversation{
			UserID:      row.ID,
			Name:        row.Name,
			AvatarURL:   row.AvatarURL,
			LastMessage: PlaceholderMessage,
			IsOnline:    !row.LastActive.Before(onlineSince),
			UnreadCount: unread[row.ID],
		})
	}

	sort.Slice(withoutHistory, func(i, j int) bool {
		return strings.ToLower(withoutHistory[i].Name) < strings.ToLower(withoutHistory[j].Name)
	})

	return append(conversations, withoutHistory...), nil
}

// messageContacts — собеседники с последним сообщением для каждой пары
func (d *Database) messageContacts(userID uuid.UUID) ([]contactRow, error) {
	var rows []contactRow

	query := `
		SELECT u.id, u.name, u.avatar_url, u.last_active, m.content, m.created_at
		FROM users u
		JOIN (
			SELECT CASE WHEN sender_id = @uid THEN receiver_id ELSE sender_id END AS other_id,
			       MAX(created_at) AS last_at
			FROM messages
			WHERE sender_id = @uid OR receiver_id = @uid
			GROUP BY 1
		) last ON last.other_id = u.id
		JOIN messages m
			ON m.created_at = last.last_at
			AND ((m.sender_id = @uid AND m.receiver_id = u.id) OR (m.sender_id = u.id AND m.receiver_id = @uid))
		ORDER BY m.created_at DESC`

	err := d.db.Raw(query, map[string]interface{}{"uid": userID}).Scan(&rows).Error
	return rows, err
}

// collaborators — участники моих проектов и создатели проектов, где участвую я
func (d *Database) collaborators(userID uuid.UUID) ([]collaboratorRow, error) {
	var rows []collaboratorRow

	query := `
		SELECT DISTINCT u.id, u.name, u.avatar_url, u.last_active
		FROM users u
		JOIN project_members pm ON pm.user_id = u.id
		JOIN projects p ON p.id = pm.project_id
		WHERE p.creator_id = @uid AND u.id <> @uid
		UNION
		SELECT DISTINCT u.id, u.name, u.avatar_url, u.last_active
		FROM users u
		JOIN projects p ON p.creator_id = u.id
		JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.user_id = @uid AND u.id <> @uid`

	err := d.db.Raw(query, map[string]interface{}{"uid": userID}).Scan(&rows).Error
	return rows, err
}
