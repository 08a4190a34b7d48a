package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "restaurant-bot/pkg/errors"
	"restaurant-bot/pkg/log"
	"restaurant-bot/pkg/response"
)

func newContext(requestID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	if requestID != "" {
		req = req.WithContext(log.WithRequestID(req.Context(), requestID))
	}
	c.Request = req
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOK(t *testing.T) {
	c, w := newContext("req-1")
	response.OK(c, map[string]string{"intent": "greet"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, response.MessageSuccess, resp.Message)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, map[string]interface{}{"intent": "greet"}, resp.Data)
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		data       map[string]interface{}
		wantStatus int
		wantCode   int
	}{
		{"plain error", errors.New("bad input"), map[string]interface{}{"field": "text"}, http.StatusBadRequest, 1},
		{"nil data", errors.New("bad input"), nil, http.StatusBadRequest, 1},
		{"http error", pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "not ready"), nil, http.StatusServiceUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("")
			response.Error(c, tt.err, tt.data)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			assert.Equal(t, tt.err.Error(), resp.Message)
			assert.NotNil(t, resp.Data)
			assert.Empty(t, resp.RequestID)
		})
	}
}

func TestInternalError(t *testing.T) {
	c, w := newContext("req-2")
	response.InternalError(c, errors.New("redis: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, response.DefaultErrorMessage, resp.Message)
	assert.NotContains(t, w.Body.String(), "redis")
	assert.Equal(t, "req-2", resp.RequestID)
}

func TestTooManyRequests(t *testing.T) {
	c, w := newContext("")
	response.TooManyRequests(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, c.IsAborted())
	assert.Equal(t, response.TooManyRequestsCode, decode(t, w).ErrorCode)
}

func TestNoRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.OK(c, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
