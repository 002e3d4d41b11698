package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sitegen-workers/internal/common/errors"
)

func TestDoJSON_SendsBodyAndHeaders(t *testing.T) {
	var gotAuth, gotType string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(time.Second).WithHeader("Authorization", "Bearer k")
	resp, err := c.DoJSON(context.Background(), http.MethodPost, srv.URL, map[string]string{"input": "x"})
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, "Bearer k", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "x", gotBody["input"])
}

func TestDoJSON_NonSuccessIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	resp, err := NewClient(time.Second).DoJSON(context.Background(), http.MethodDelete, srv.URL, nil)
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, "502 Bad Gateway", resp.Status)
}

func TestWithHeader_DoesNotMutateParent(t *testing.T) {
	parent := NewClient(time.Second)
	_ = parent.WithHeader("X-Test", "1")
	assert.Empty(t, parent.headers)
}

func TestDoJSON_RejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), maxBody+1))
	}))
	defer srv.Close()

	_, err := NewClient(5*time.Second).DoJSON(context.Background(), http.MethodGet, srv.URL, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTransport, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "response too large")
}

func TestDoJSON_AcceptsBodyAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), maxBody))
	}))
	defer srv.Close()

	resp, err := NewClient(5*time.Second).DoJSON(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Body, maxBody)
}
