package inbox

import (
	"testing"

	"drdhobi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInboxRepo is an in-memory InboxRepository.
type fakeInboxRepo struct {
	messages []models.ContactMessage
}

func (f *fakeInboxRepo) Create(m *models.ContactMessage) error {
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeInboxRepo) GetAll() ([]models.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeInboxRepo) Delete(id string) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

// recordingNotifier captures admin broadcasts.
type recordingNotifier struct {
	broadcasts []string
}

func (r *recordingNotifier) Notify(userID, ntype, title, body string, data map[string]string) {}

func (r *recordingNotifier) NotifyAdmins(ntype, title, body string, data map[string]string) {
	r.broadcasts = append(r.broadcasts, title)
}

func (r *recordingNotifier) List(userID string, unreadOnly bool, limit int) ([]models.Notification, int, error) {
	return nil, 0, nil
}

func (r *recordingNotifier) MarkRead(userID string, ids []string) error { return nil }
func (r *recordingNotifier) MarkAllRead(userID string) error            { return nil }
func (r *recordingNotifier) Delete(userID string, ids []string) error   { return nil }

func TestSubmitStoresUnreadAndNotifiesAdmins(t *testing.T) {
	repo := &fakeInboxRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultInboxService{Repo: repo, Notifier: notifier}

	msg, err := svc.Submit(models.ContactMessage{
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Do you clean silk sarees?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "unread", msg.Status)
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, repo.messages, 1)
	require.Len(t, notifier.broadcasts, 1)
	assert.Equal(t, "New Contact Message", notifier.broadcasts[0])
}

func TestSubmitRequiresNameAndMessage(t *testing.T) {
	svc := &DefaultInboxService{Repo: &fakeInboxRepo{}}

	_, err := svc.Submit(models.ContactMessage{Message: "hello"})
	assert.Error(t, err)

	_, err = svc.Submit(models.ContactMessage{Name: "Asha"})
	assert.Error(t, err)
}

func TestDeleteRequiresID(t *testing.T) {
	repo := &fakeInboxRepo{messages: []models.ContactMessage{{ID: "m1"}}}
	svc := &DefaultInboxService{Repo: repo}

	assert.Error(t, svc.Delete(""))
	require.NoError(t, svc.Delete("m1"))
	assert.Empty(t, repo.messages)
}
