package newsletter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"reader@example.com",
		"first.last@sub.example.co.uk",
		"tagged+news@example.com",
	}
	for _, addr := range valid {
		assert.True(t, ValidEmail(addr), addr)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two words@example.com",
		"Reader <reader@example.com>",
		"reader@example.com\nbcc: x@example.com",
	}
	for _, addr := range invalid {
		assert.False(t, ValidEmail(addr), addr)
	}
}

func TestSubscribe(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key")
	require.NoError(t, c.Subscribe(context.Background(), "reader@example.com"))

	assert.Equal(t, "/subscribers", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "reader@example.com", gotBody["email"])
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	c := NewClient("http://unused.invalid", "")
	err := c.Subscribe(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSubscribe_NotConfigured(t *testing.T) {
	c := NewClient("", "")
	err := c.Subscribe(context.Background(), "reader@example.com")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSubscribe_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	err := c.Subscribe(context.Background(), "reader@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}
