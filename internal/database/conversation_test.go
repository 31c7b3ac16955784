package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOnlineWindow = 2 * time.Minute

func TestGetUserConversations_Empty(t *testing.T) {
	d := newTestDB(t)
	me := createTestUser(t, d, "Alice")

	conversations, err := d.GetUserConversations(me.ID, testOnlineWindow)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestGetUserConversations_LatestMessagePerCounterpart(t *testing.T) {
	d := newTestDB(t)
	me := createTestUser(t, d, "Alice")
	bob := createTestUser(t, d, "Bob")

	base := time.Now().Add(-time.Hour)
	sendTestMessage(t, d, me, bob, "first", base)
	sendTestMessage(t, d, bob, me, "second", base.Add(10*time.Minute))
	sendTestMessage(t, d, me, bob, "third", base.Add(20*time.Minute))

	conversations, err := d.GetUserConversations(me.ID, testOnlineWindow)
	require.NoError(t, err)
	require.Len(t, conversations, 1)

	conv := conversations[0]
	assert.Equal(t, bob.ID, conv.UserID)
	assert.Equal(t, "third", conv.LastMessage)
	require.NotNil(t, conv.LastMessageAt)
}

// Собеседник с перепиской и общим проектом не должен задваиваться
func TestGetUserConversations_NoDuplicates(t *testing.T) {
	d := newTestDB(t)
	me := createTestUser(t, d, "Alice")
	bob := createTestUser(t, d, "Bob")

	project := createTestProject(t, d, me, "Campus App")
	_, err := d.AddMember(project.ID, bob.ID, "member")
	require.NoError(t, err)

	sendTestMessage(t, d, bob, me, "hello", time.Now().Add(-time.Hour))

	conversations, err := d.GetUserConversations(me.ID, testOnlineWindow)
	require.NoError(t, err)
	require.Len(t, conversations, 1)

	// история переписки имеет приоритет над плейсхолдером
	assert.Equal(t, "hello", conversations[0].LastMessage)
	assert.NotNil(t, conversations[0].LastMessageAt)
}

func TestGetUserConversations_SortOrder(t *testing.T) {
	d := newTestDB(t)
	me := createTestUser(t, d, "Alice")
	c1 := createTestUser(t, d, "Boris")
	c2 := createTestUser(t, d, "Zoe")
	c3 := createTestUser(t, d, "Anton")

	t1 := time.Now().Add(-2 * time.Hour)
	t2 := time.Now().Add(-time.Hour)
	sendTestMessage(t, d, c1, me, "older", t1)
	sendTestMessage(t, d, me, c2, "newer", t2)

	// c3 — коллега без переписки, должен оказаться после всех с сообщениями
	project := createTestProject(t, d, me, "Side Project")
	_, err := d.AddMember(project.ID, c3.ID, "member")
	require.NoError(t, err)

	conversations, err := d.GetUserConversations(me.ID, testOnlineWindow)
	require.NoError(t, err)
	require.Len(t, conversations, 3)

	assert.Equal(t, c2.ID, conversations[0].UserID)
	assert.Equal(t, c1.ID, conversations[1].UserID)
	assert.Equal(t, c3.ID, conversations[2].UserID)
	assert.Nil(t, conversations[2].LastMessageAt)
}

func TestGetUserConversations_CollaboratorsOnly(t *testing.T) {
	d := newTestDB(t)
	me := createTestUser(t, d, "Alice")
	bob := createTestUser(t, d, "Bob")
	carol := createTestUser(t, d, "Carol")

	// bob — участник моего проекта, carol — создатель проекта, где участвую я
	mine := createTestProject(t, d, me, "My Project")
	_, err := d.AddMember(mine.ID, bob.ID, "member")
	require.NoError(t, err)

	theirs := createTestProject(t, d, carol, "Their Project")
	_, err = d.AddMember(theirs.ID, me.ID, "member")
	require.NoError(t, err)

	conversations, err := d.GetUserConversations(me.ID, testOnlineWindow)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// без переписки — по алфавиту
	assert.Equal(t, bob.ID, conversations[0].UserID)
	assert.Equal(t, carol.ID, conversations[1].UserID)

	for _, conv := range conversations {
		assert.Equal(t, PlaceholderMessage, conv.LastMessage)
		assert.Nil(t, conv.LastMessageAt)
		assert.Zero(t, conv.UnreadCount)
	}
}

func TestGetUserConversations_UnreadAndOnline(t *testing.T) {
	d := newTestDB(t)
	me := createTestUser(t, d, "Alice")
	bob := createTestUser(t, d, "Bob")
	carol := createTestUser(t, d, "Carol")

	// carol давно не появлялась
	carol.LastActive = time.Now().Add(-time.Hour)
	require.NoError(t, d.UpdateUser(carol))

	base := time.Now().Add(-30 * time.Minute)
	sendTestMessage(t, d, bob, me, "one", base)
	sendTestMessage(t, d, bob, me, "two", base.Add(time.Minute))
	sendTestMessage(t, d, carol, me, "three", base.Add(2*time.Minute))

	conversations, err := d.GetUserConversations(me.ID, testOnlineWindow)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	byID := map[string]Conversation{}
	for _, conv := range conversations {
		byID[conv.UserID.String()] = conv
	}

	assert.Equal(t, int64(2), byID[bob.ID.String()].UnreadCount)
	assert.True(t, byID[bob.ID.String()].IsOnline)
	assert.Equal(t, int64(1), byID[carol.ID.String()].UnreadCount)
	assert.False(t, byID[carol.ID.String()].IsOnline)
}
