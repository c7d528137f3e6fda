package chat

import (
	"testing"
	"time"

	"drdhobi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatRepo is an in-memory ChatRepository mirroring the store's update
// semantics.
type fakeChatRepo struct {
	convs    map[string]*models.Conversation
	messages []models.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{convs: make(map[string]*models.Conversation)}
}

func (f *fakeChatRepo) CreateConversation(conv *models.Conversation) error {
	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now
	conv.LastMessageAt = now
	// Snapshot by value, as the store serializes the document at insert
	// time. Later mutations of the caller's struct must not leak in.
	copied := *conv
	f.convs[conv.ID] = &copied
	return nil
}

func (f *fakeChatRepo) GetConversation(id string) (*models.Conversation, error) {
	conv, ok := f.convs[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *conv
	return &copied, nil
}

func (f *fakeChatRepo) ListAll(status string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range f.convs {
		if status == "" || c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) ListByUser(userID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range f.convs {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) SetStatus(id, status, adminID, adminName string) error {
	conv, ok := f.convs[id]
	if !ok {
		return ErrNotFound
	}
	conv.Status = status
	conv.AssignedAdminID = adminID
	conv.AssignedAdminName = adminName
	return nil
}

func (f *fakeChatRepo) AddMessage(msg *models.ChatMessage) error {
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeChatRepo) GetMessages(conversationID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) ApplyMessage(conversationID, preview, senderRole string, reopen bool) error {
	conv, ok := f.convs[conversationID]
	if !ok {
		return ErrNotFound
	}
	conv.LastMessage = preview
	conv.LastMessageAt = time.Now()
	conv.LastMessageBy = senderRole
	if senderRole == models.RoleAdmin {
		conv.UnreadByUser++
	} else {
		conv.UnreadByAdmin++
	}
	if reopen {
		conv.Status = models.ConversationOpen
	}
	return nil
}

func (f *fakeChatRepo) MarkRead(conversationID, viewerRole string) error {
	conv, ok := f.convs[conversationID]
	if !ok {
		return ErrNotFound
	}
	for i := range f.messages {
		m := &f.messages[i]
		if m.ConversationID == conversationID && !m.Read && m.SenderRole != viewerRole {
			m.Read = true
		}
	}
	if viewerRole == models.RoleAdmin {
		conv.UnreadByAdmin = 0
	} else {
		conv.UnreadByUser = 0
	}
	return nil
}

// recordingNotifier captures every notification for assertions.
type recordingNotifier struct {
	single     []models.Notification
	broadcasts []models.Notification
}

func (r *recordingNotifier) Notify(userID, ntype, title, body string, data map[string]string) {
	if userID == "" {
		return
	}
	r.single = append(r.single, models.Notification{
		UserID: userID, Type: ntype, Title: title, Body: body, Data: data,
	})
}

func (r *recordingNotifier) NotifyAdmins(ntype, title, body string, data map[string]string) {
	r.broadcasts = append(r.broadcasts, models.Notification{
		Type: ntype, Title: title, Body: body, Data: data,
	})
}

func (r *recordingNotifier) List(userID string, unreadOnly bool, limit int) ([]models.Notification, int, error) {
	return nil, 0, nil
}
func (r *recordingNotifier) MarkRead(userID string, ids []string) error { return nil }
func (r *recordingNotifier) MarkAllRead(userID string) error            { return nil }
func (r *recordingNotifier) Delete(userID string, ids []string) error   { return nil }

var (
	customer = &models.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: models.RoleUser}
	stranger = &models.User{ID: "u2", Name: "Vik", Email: "vik@example.com", Role: models.RoleUser}
	admin    = &models.User{ID: "a1", Name: "Priya", Role: models.RoleAdmin}
)

func newTestService() (*DefaultChatService, *fakeChatRepo, *recordingNotifier) {
	repo := newFakeChatRepo()
	notifier := &recordingNotifier{}
	return &DefaultChatService{Repo: repo, Notifier: notifier}, repo, notifier
}

func TestCreateConversationDefaults(t *testing.T) {
	svc, repo, notifier := newTestService()

	conv, err := svc.CreateConversation(customer, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "General Inquiry", conv.Subject)
	assert.Equal(t, "Started a conversation", conv.LastMessage)
	assert.Equal(t, models.ConversationOpen, conv.Status)
	assert.Equal(t, 0, conv.UnreadByUser)
	assert.Equal(t, 1, conv.UnreadByAdmin)

	// Without an initial message no message document is written.
	assert.Empty(t, repo.messages)

	// Admins get the broadcast.
	require.Len(t, notifier.broadcasts, 1)
	assert.Equal(t, "New Support Request", notifier.broadcasts[0].Title)
}

func TestCreateConversationWithFirstMessage(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "Stain issue", "My shirt came back stained", "bk-9")
	require.NoError(t, err)
	assert.Equal(t, "My shirt came back stained", conv.LastMessage)
	assert.Equal(t, "bk-9", conv.RelatedBookingID)

	msgs, err := repo.GetMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleUser, msgs[0].SenderRole)
	assert.False(t, msgs[0].Read)
}

func TestCreateConversationStoresLastMessageAt(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)

	// The stored document must carry last_message_at from the start so a
	// fresh thread sorts with the newest activity in both lists.
	stored := repo.convs[conv.ID]
	assert.False(t, stored.LastMessageAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.LastMessageAt)
	assert.False(t, conv.LastMessageAt.IsZero())
}

func TestSendMessageUnreadCounters(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)

	// Customer sends: admin side owes one more unread.
	_, err = svc.SendMessage(customer, conv.ID, "anyone there?")
	require.NoError(t, err)
	got, _ := repo.GetConversation(conv.ID)
	assert.Equal(t, 2, got.UnreadByAdmin)
	assert.Equal(t, 0, got.UnreadByUser)

	// Admin replies: only the user side increments.
	_, err = svc.SendMessage(admin, conv.ID, "yes, checking now")
	require.NoError(t, err)
	got, _ = repo.GetConversation(conv.ID)
	assert.Equal(t, 2, got.UnreadByAdmin)
	assert.Equal(t, 1, got.UnreadByUser)
	assert.Equal(t, models.RoleAdmin, got.LastMessageBy)
}

func TestSendMessagePreviewTruncated(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "", "")
	require.NoError(t, err)

	long := make([]rune, 250)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.SendMessage(customer, conv.ID, string(long))
	require.NoError(t, err)

	got, _ := repo.GetConversation(conv.ID)
	assert.Len(t, []rune(got.LastMessage), 100)

	// The stored message itself is not truncated.
	msgs, _ := repo.GetMessages(conv.ID)
	assert.Len(t, []rune(msgs[len(msgs)-1].Message), 250)
}

func TestCustomerMessageReopensResolved(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(admin, conv.ID, models.ConversationResolved))

	_, err = svc.SendMessage(customer, conv.ID, "it happened again")
	require.NoError(t, err)

	got, _ := repo.GetConversation(conv.ID)
	assert.Equal(t, models.ConversationOpen, got.Status)
}

func TestAdminMessageNeverChangesStatus(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)

	for _, status := range []string{models.ConversationResolved, models.ConversationPending, models.ConversationClosed} {
		require.NoError(t, svc.UpdateStatus(admin, conv.ID, status))
		_, err = svc.SendMessage(admin, conv.ID, "following up")
		require.NoError(t, err)
		got, _ := repo.GetConversation(conv.ID)
		assert.Equal(t, status, got.Status)
	}
}

func TestSendMessageAccessControl(t *testing.T) {
	svc, _, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)

	_, err = svc.SendMessage(stranger, conv.ID, "let me in")
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Admins may post into any conversation.
	_, err = svc.SendMessage(admin, conv.ID, "hi")
	assert.NoError(t, err)
}

func TestSendMessageNotificationRouting(t *testing.T) {
	svc, _, notifier := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)
	notifier.single = nil
	notifier.broadcasts = nil

	// Customer message fans out to admins.
	_, err = svc.SendMessage(customer, conv.ID, "ping")
	require.NoError(t, err)
	require.Len(t, notifier.broadcasts, 1)
	assert.Equal(t, "Message from Asha", notifier.broadcasts[0].Title)
	assert.Empty(t, notifier.single)

	// Admin message notifies exactly the conversation owner.
	notifier.broadcasts = nil
	_, err = svc.SendMessage(admin, conv.ID, "pong")
	require.NoError(t, err)
	require.Len(t, notifier.single, 1)
	assert.Equal(t, customer.ID, notifier.single[0].UserID)
	assert.Equal(t, "New Message from Support", notifier.single[0].Title)
	assert.Empty(t, notifier.broadcasts)
}

func TestGetMessagesMarksViewerSideRead(t *testing.T) {
	svc, repo, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)
	_, err = svc.SendMessage(admin, conv.ID, "reply one")
	require.NoError(t, err)

	// Customer opens the thread: the admin's message flips to read, the
	// customer's own message stays untouched, and the customer counter
	// resets.
	got, msgs, err := svc.GetMessages(customer, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnreadByUser)

	require.Len(t, msgs, 2)
	stored, _ := repo.GetMessages(conv.ID)
	for _, m := range stored {
		if m.SenderRole == models.RoleAdmin {
			assert.True(t, m.Read)
		} else {
			assert.False(t, m.Read, "viewer's own message must not be flipped")
		}
	}

	// The admin side is unaffected by the customer's read.
	persisted, _ := repo.GetConversation(conv.ID)
	assert.Equal(t, 1, persisted.UnreadByAdmin)
}

func TestGetMessagesAccessControl(t *testing.T) {
	svc, _, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "hello", "")
	require.NoError(t, err)

	_, _, err = svc.GetMessages(stranger, conv.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, _, err = svc.GetMessages(admin, conv.ID)
	assert.NoError(t, err)
}

func TestListConversationsScoping(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateConversation(customer, "", "a", "")
	require.NoError(t, err)
	_, err = svc.CreateConversation(stranger, "", "b", "")
	require.NoError(t, err)

	mine, err := svc.ListConversations(customer, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, customer.ID, mine[0].UserID)

	all, err := svc.ListConversations(admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatusAdminOnly(t *testing.T) {
	svc, _, _ := newTestService()

	conv, err := svc.CreateConversation(customer, "", "a", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateStatus(customer, conv.ID, models.ConversationClosed), ErrAccessDenied)
	assert.ErrorIs(t, svc.UpdateStatus(admin, conv.ID, "archived"), ErrInvalidStatus)
	assert.NoError(t, svc.UpdateStatus(admin, conv.ID, models.ConversationClosed))
}

func TestSendMessageUnknownConversation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SendMessage(customer, "missing", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}
