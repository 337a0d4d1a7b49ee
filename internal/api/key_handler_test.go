package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyHandler_IssueKey(t *testing.T) {
	t.Run("returns_key_as_plain_text", func(t *testing.T) {
		mock := &MockTaskService{
			IssueKeyFn: func(ctx context.Context) (string, error) {
				return "fresh-key", nil
			},
		}
		h := NewKeyHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/API_KEY", nil)
		rec := httptest.NewRecorder()
		h.IssueKey(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "fresh-key", rec.Body.String())
	})

	t.Run("issue_failure_is_server_error", func(t *testing.T) {
		mock := &MockTaskService{
			IssueKeyFn: func(ctx context.Context) (string, error) {
				return "", errors.New("out of entropy")
			},
		}
		h := NewKeyHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/API_KEY", nil)
		rec := httptest.NewRecorder()
		h.IssueKey(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestKeyHandler_Root(t *testing.T) {
	h := NewKeyHandler(&MockTaskService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/API_KEY", rec.Header().Get("Location"))
}
