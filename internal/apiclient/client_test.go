package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL + "/api/"}, newTestLogger(t))
	require.NoError(t, err)
	return c
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(http.StatusOK))
	assert.True(t, IsSuccess(http.StatusCreated))
	assert.False(t, IsSuccess(http.StatusNoContent))
	assert.False(t, IsSuccess(http.StatusAccepted))
	assert.False(t, IsSuccess(http.StatusBadRequest))
	assert.False(t, IsSuccess(http.StatusInternalServerError))
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "api/"}, newTestLogger(t))
	assert.Error(t, err)
}

func TestClient_Do_DecodesSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/Visitor/GetAll", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = io.WriteString(w, `[{"id":1,"name":"Alice"}]`)
	})

	var out []domain.Visitor
	err := c.Do(context.Background(), http.MethodGet, "Visitor/GetAll", nil, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.ID("1"), out[0].ID)
}

func TestClient_Do_SendsJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in domain.Visitor
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "v9"

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	var out domain.Visitor
	err := c.Do(context.Background(), http.MethodPost, "/Visitor/Create", domain.Visitor{Name: "Bob"}, &out)

	require.NoError(t, err)
	assert.Equal(t, domain.ID("v9"), out.ID)
	assert.Equal(t, "Bob", out.Name)
}

func TestClient_Do_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"name is required"}`)
	})

	err := c.Do(context.Background(), http.MethodPost, "Visitor/Create", domain.Visitor{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRejected)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Contains(t, se.Body, "name is required")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Do_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	var out domain.Facility
	err := c.Do(context.Background(), http.MethodGet, "Facility/GetById/42", nil, &out)

	assert.ErrorIs(t, err, domain.ErrRejected)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Do_NoContentIsRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Do(context.Background(), http.MethodPut, "Visitor/Update", domain.Visitor{ID: "1"}, nil)

	assert.ErrorIs(t, err, domain.ErrRejected)
}

func TestClient_Do_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "null", "  \n"} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})

		var out domain.Facility
		err := c.Do(context.Background(), http.MethodGet, "Facility/GetById/1", nil, &out)

		assert.ErrorIs(t, err, domain.ErrEmptyResponse, "body %q", body)
	}
}

func TestClient_Do_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":`)
	})

	var out domain.Facility
	err := c.Do(context.Background(), http.MethodGet, "Facility/GetById/1", nil, &out)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestClient_Do_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, err := New(Config{BaseURL: baseURL}, newTestLogger(t))
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "Facility/GetAll", nil, nil)

	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_Do_CancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, http.MethodGet, "Facility/GetAll", nil, nil)

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))

	// "é" is two bytes; cutting at 2 would split it.
	got := truncate("aéz", 2)
	assert.Equal(t, "a...", got)
	assert.True(t, utf8.ValidString(got))
}
