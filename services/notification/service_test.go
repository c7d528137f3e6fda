package notification

import (
	"fmt"
	"testing"

	"drdhobi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationRepo is an in-memory NotificationRepository.
type fakeNotificationRepo struct {
	records []models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.records = append(f.records, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(f.records) - 1; i >= 0; i-- {
		n := f.records[i]
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(userID string) (int, error) {
	count := 0
	for _, n := range f.records {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(userID string, ids []string) error {
	for _, id := range ids {
		for i := range f.records {
			if f.records[i].ID == id && f.records[i].UserID == userID {
				f.records[i].Read = true
			}
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(userID string) error {
	for i := range f.records {
		if f.records[i].UserID == userID {
			f.records[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(userID string, ids []string) error {
	var kept []models.Notification
	for _, n := range f.records {
		remove := false
		for _, id := range ids {
			if n.ID == id && n.UserID == userID {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, n)
		}
	}
	f.records = kept
	return nil
}

// fakeUserRepo serves a fixed set of profiles.
type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user with id %s not found", id)
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return f.users, nil }

func (f *fakeUserRepo) GetAdmins() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) UpdateProfile(id string, fields map[string]any) error { return nil }
func (f *fakeUserRepo) SetRole(id, role string) error                        { return nil }
func (f *fakeUserRepo) Delete(id string) error                               { return nil }

func newTestService() (*DefaultNotificationService, *fakeNotificationRepo) {
	repo := &fakeNotificationRepo{}
	users := &fakeUserRepo{users: []models.User{
		{ID: "a1", Name: "Priya", Role: models.RoleAdmin},
		{ID: "a2", Name: "Dev", Role: models.RoleAdmin},
		{ID: "u1", Name: "Asha", Role: models.RoleUser},
	}}
	return &DefaultNotificationService{Repo: repo, Users: users}, repo
}

func TestNotifySkipsEmptyRecipient(t *testing.T) {
	svc, repo := newTestService()

	svc.Notify("", models.NotificationSystem, "t", "b", nil)
	assert.Empty(t, repo.records)

	svc.Notify("u1", models.NotificationSystem, "t", "b", nil)
	require.Len(t, repo.records, 1)
	assert.False(t, repo.records[0].Read)
	assert.NotEmpty(t, repo.records[0].ID)
}

func TestNotifyAdminsOneRecordPerAdmin(t *testing.T) {
	svc, repo := newTestService()

	svc.NotifyAdmins(models.NotificationMessage, "New Support Request", "body", nil)
	require.Len(t, repo.records, 2)

	recipients := map[string]bool{}
	for _, n := range repo.records {
		recipients[n.UserID] = true
	}
	assert.True(t, recipients["a1"])
	assert.True(t, recipients["a2"])
	assert.False(t, recipients["u1"], "non-admins never receive the broadcast")
}

func TestListReturnsUnreadCount(t *testing.T) {
	svc, _ := newTestService()

	svc.Notify("u1", models.NotificationSystem, "one", "b", nil)
	svc.Notify("u1", models.NotificationSystem, "two", "b", nil)
	svc.Notify("a1", models.NotificationSystem, "other", "b", nil)

	notifs, unread, err := svc.List("u1", false, 20)
	require.NoError(t, err)
	assert.Len(t, notifs, 2)
	assert.Equal(t, 2, unread)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	svc, repo := newTestService()

	svc.Notify("u1", models.NotificationSystem, "mine", "b", nil)
	svc.Notify("a1", models.NotificationSystem, "theirs", "b", nil)
	mineID := repo.records[0].ID
	theirsID := repo.records[1].ID

	// Marking someone else's notification is a silent no-op.
	require.NoError(t, svc.MarkRead("u1", []string{mineID, theirsID}))
	assert.True(t, repo.records[0].Read)
	assert.False(t, repo.records[1].Read)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc, repo := newTestService()

	svc.Notify("u1", models.NotificationSystem, "mine", "b", nil)
	svc.Notify("a1", models.NotificationSystem, "theirs", "b", nil)
	ids := []string{repo.records[0].ID, repo.records[1].ID}

	require.NoError(t, svc.Delete("u1", ids))
	require.Len(t, repo.records, 1)
	assert.Equal(t, "a1", repo.records[0].UserID)
}

func TestMarkAllRead(t *testing.T) {
	svc, repo := newTestService()

	svc.Notify("u1", models.NotificationSystem, "one", "b", nil)
	svc.Notify("u1", models.NotificationSystem, "two", "b", nil)

	require.NoError(t, svc.MarkAllRead("u1"))
	_, unread, err := svc.List("u1", false, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
	for _, n := range repo.records {
		assert.True(t, n.Read)
	}
}
