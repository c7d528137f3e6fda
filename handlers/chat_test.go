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

// fakeChatService records calls and returns canned results.
type fakeChatService struct {
	conv       *models.Conversation
	msg        *models.ChatMessage
	sendErr    error
	statusErr  error
	lastStatus string
}

func (f *fakeChatService) CreateConversation(user *models.User, subject, firstMessage, relatedBookingID string) (*models.Conversation, error) {
	return f.conv, nil
}

func (f *fakeChatService) SendMessage(sender *models.User, conversationID, text string) (*models.ChatMessage, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return f.msg, nil
}

func (f *fakeChatService) GetMessages(viewer *models.User, conversationID string) (*models.Conversation, []models.ChatMessage, error) {
	return f.conv, nil, nil
}

func (f *fakeChatService) ListConversations(viewer *models.User, status string) ([]models.Conversation, error) {
	return nil, nil
}

func (f *fakeChatService) UpdateStatus(actor *models.User, conversationID, status string) error {
	f.lastStatus = status
	return f.statusErr
}

// fakeUserLookup satisfies user.UserService for handler tests; only GetByID
// matters here.
type fakeUserLookup struct {
	users map[string]*models.User
}

func (f *fakeUserLookup) Register(input models.UserRegistration) (*models.User, string, error) {
	return nil, "", nil
}

func (f *fakeUserLookup) Authenticate(creds models.UserCredentials) (*models.User, string, error) {
	return nil, "", nil
}

func (f *fakeUserLookup) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (f *fakeUserLookup) UpdateProfile(id string, update models.ProfileUpdate) error { return nil }
func (f *fakeUserLookup) SetPhoto(id, photoID string) error                          { return nil }
func (f *fakeUserLookup) GetAll() ([]models.User, error)                             { return nil, nil }
func (f *fakeUserLookup) SetRole(actorID, targetID, role string) error               { return nil }
func (f *fakeUserLookup) Delete(id string) error                                     { return nil }

func chatRouter(svc *fakeChatService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ChatHandler{
		ChatService: svc,
		UserService: &fakeUserLookup{users: map[string]*models.User{
			"u1": {ID: "u1", Name: "Asha", Role: models.RoleUser},
		}},
	}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
	})
	r.POST("/api/chat", h.ChatActionHandler)
	r.GET("/api/chat", h.GetChatHandler)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChatActionRequiresAuth(t *testing.T) {
	r := chatRouter(&fakeChatService{}, "")

	w := postChat(r, `{"action":"create-conversation","message":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatActionInvalidAction(t *testing.T) {
	r := chatRouter(&fakeChatService{}, "u1")

	w := postChat(r, `{"action":"escalate"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid action")
}

func TestChatActionCreateConversation(t *testing.T) {
	svc := &fakeChatService{conv: &models.Conversation{ID: "conv-1"}}
	r := chatRouter(svc, "u1")

	w := postChat(r, `{"action":"create-conversation","subject":"Stain query","message":"Can you remove ink?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"conversationId":"conv-1"`)
}

func TestChatActionSendMessageRequiresFields(t *testing.T) {
	r := chatRouter(&fakeChatService{}, "u1")

	w := postChat(r, `{"action":"send-message","conversationId":"conv-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postChat(r, `{"action":"send-message","message":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatActionSendMessage(t *testing.T) {
	svc := &fakeChatService{msg: &models.ChatMessage{ID: "msg-5"}}
	r := chatRouter(svc, "u1")

	w := postChat(r, `{"action":"send-message","conversationId":"conv-1","message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"messageId":"msg-5"`)
}
