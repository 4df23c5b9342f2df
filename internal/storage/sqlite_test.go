package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLiteMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_InsertAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inq := &Inquiry{
		ID:           uuid.NewString(),
		ServiceType:  "courses",
		Name:         "Ada Byron",
		Email:        "ada@example.com",
		Organization: "Analytical Engines Ltd",
		Score:        85,
		FormData:     json.RawMessage(`{"serviceType":"courses","teamSize":"4-10"}`),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Insert(ctx, inq))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, inq.ID, got[0].ID)
	assert.Equal(t, "courses", got[0].ServiceType)
	assert.Equal(t, "ada@example.com", got[0].Email)
	assert.Equal(t, 85, got[0].Score)
	assert.JSONEq(t, string(inq.FormData), string(got[0].FormData))
	assert.True(t, inq.CreatedAt.Equal(got[0].CreatedAt))
}

func TestSQLite_RecentOrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Insert(ctx, &Inquiry{
			ID:          uuid.NewString(),
			ServiceType: "research",
			Name:        "n",
			Email:       "e@example.com",
			Score:       i,
			FormData:    json.RawMessage(`{}`),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Newest first.
	assert.Equal(t, 4, got[0].Score)
	assert.Equal(t, 3, got[1].Score)
	assert.Equal(t, 2, got[2].Score)
}

func TestSQLite_RecentEmpty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_DuplicateIDRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inq := &Inquiry{
		ID:          "fixed-id",
		ServiceType: "speaking",
		Name:        "n",
		Email:       "e@example.com",
		FormData:    json.RawMessage(`{}`),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.Insert(ctx, inq))
	assert.Error(t, s.Insert(ctx, inq))
}
