package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func clientIPContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	c := clientIPContext("10.0.0.1:4321", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 198.51.100.2",
	})
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c = clientIPContext("10.0.0.1:4321", map[string]string{
		"X-Real-IP": "203.0.113.9",
	})
	assert.Equal(t, "203.0.113.9", getClientIP(c))

	c = clientIPContext("10.0.0.1:4321", nil)
	assert.Equal(t, "10.0.0.1", getClientIP(c))
}
