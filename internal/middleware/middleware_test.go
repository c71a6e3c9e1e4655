package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRequestID_Generates(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *ginext.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	log := newTestLogger(t)
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/boom", func(c *ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, time.Minute)
	r := ginext.New("test")
	r.POST("/x", rl.Limit(), func(c *ginext.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.getLimiter("a")
	now = now.Add(2 * time.Minute)
	rl.getLimiter("b")

	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "b")
}
