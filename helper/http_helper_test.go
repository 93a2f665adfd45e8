package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSendSuccess(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())
	c, w := newContext(http.MethodGet, "")

	h.SendSuccess(c, gin.H{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Nil(t, body["error"])
	assert.Equal(t, map[string]interface{}{"status": "ok"}, body["data"])
}

func TestSendError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := NewHTTPHelper(zap.New(core))

	t.Run("domain error", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "")
		h.SendError(c, models.ErrPostNotFound)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Post not found", body["error"])
		assert.Nil(t, body["data"])
		assert.Zero(t, logs.Len())
	})

	t.Run("unexpected error is hidden and logged", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "")
		h.SendError(c, errors.New("pq: relation \"posts\" does not exist"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Unknown Error", body["error"])
		assert.NotContains(t, w.Body.String(), "relation")
		require.Equal(t, 1, logs.Len())
	})
}

func TestBindJSON(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())

	t.Run("malformed body", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "{not json")
		var req models.RegisterRequest
		assert.False(t, h.BindJSON(c, &req))
		assert.Equal(t, models.ErrInvalidRequest.Error(), decode(t, w)["error"])
	})

	t.Run("failed validation uses json names", func(t *testing.T) {
		c, w := newContext(http.MethodPost, `{"password":"x"}`)
		var req models.RegisterRequest
		assert.False(t, h.BindJSON(c, &req))

		msg, ok := decode(t, w)["error"].(string)
		require.True(t, ok)
		assert.Contains(t, msg, "login")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid body", func(t *testing.T) {
		c, w := newContext(http.MethodPost, `{"login":"ann","password":"x"}`)
		var req models.RegisterRequest
		assert.True(t, h.BindJSON(c, &req))
		assert.Equal(t, "ann", req.Login)
		assert.Zero(t, w.Body.Len())
	})
}
