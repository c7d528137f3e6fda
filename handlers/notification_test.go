package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drdhobi/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationService records calls and returns canned results.
type fakeNotificationService struct {
	notifs      []models.Notification
	unreadCount int
	markedRead  []string
	deleted     []string
	markedAll   bool
}

func (f *fakeNotificationService) Notify(userID, ntype, title, body string, data map[string]string) {
}

func (f *fakeNotificationService) NotifyAdmins(ntype, title, body string, data map[string]string) {}

func (f *fakeNotificationService) List(userID string, unreadOnly bool, limit int) ([]models.Notification, int, error) {
	return f.notifs, f.unreadCount, nil
}

func (f *fakeNotificationService) MarkRead(userID string, ids []string) error {
	f.markedRead = append(f.markedRead, ids...)
	return nil
}

func (f *fakeNotificationService) MarkAllRead(userID string) error {
	f.markedAll = true
	return nil
}

func (f *fakeNotificationService) Delete(userID string, ids []string) error {
	f.deleted = append(f.deleted, ids...)
	return nil
}

func notificationRouter(svc *fakeNotificationService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &NotificationHandler{NotificationService: svc}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
	})
	r.GET("/api/notifications", h.ListNotificationsHandler)
	r.POST("/api/notifications", h.NotificationActionHandler)
	return r
}

func postNotifications(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListNotificationsRequiresAuth(t *testing.T) {
	r := notificationRouter(&fakeNotificationService{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListNotificationsIncludesUnreadCount(t *testing.T) {
	svc := &fakeNotificationService{
		notifs:      []models.Notification{{ID: "n1"}, {ID: "n2"}},
		unreadCount: 1,
	}
	r := notificationRouter(svc, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications?limit=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unreadCount":1`)
}

func TestNotificationActionMarkRead(t *testing.T) {
	svc := &fakeNotificationService{}
	r := notificationRouter(svc, "u1")

	w := postNotifications(r, `{"action":"mark-read","notificationIds":["n1","n2"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"n1", "n2"}, svc.markedRead)
}

func TestNotificationActionMarkReadRequiresIDs(t *testing.T) {
	r := notificationRouter(&fakeNotificationService{}, "u1")

	w := postNotifications(r, `{"action":"mark-read"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationActionMarkAllRead(t *testing.T) {
	svc := &fakeNotificationService{}
	r := notificationRouter(svc, "u1")

	w := postNotifications(r, `{"action":"mark-all-read"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.markedAll)
}

func TestNotificationActionInvalid(t *testing.T) {
	r := notificationRouter(&fakeNotificationService{}, "u1")

	w := postNotifications(r, `{"action":"archive"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid action")
}
