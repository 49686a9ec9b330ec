package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUploadTickets_SingleUse(t *testing.T) {
	s := NewUploadTickets()
	s.Issue("abc", time.Minute)

	assert.True(t, s.Peek("abc"))
	assert.True(t, s.Consume("abc"))
	assert.False(t, s.Consume("abc"))
	assert.False(t, s.Peek("abc"))
}

func TestUploadTickets_Expiry(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	s := NewUploadTickets()
	s.now = func() time.Time { return now }

	s.Issue("old", time.Minute)
	now = now.Add(2 * time.Minute)

	assert.False(t, s.Peek("old"))
	assert.False(t, s.Consume("old"))
}

func TestUploadTickets_IssueSweepsExpired(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	s := NewUploadTickets()
	s.now = func() time.Time { return now }

	s.Issue("stale", time.Second)
	now = now.Add(time.Minute)
	s.Issue("fresh", time.Minute)

	assert.Len(t, s.data, 1)
	assert.True(t, s.Peek("fresh"))
}

func TestUploadTickets_Unknown(t *testing.T) {
	assert.False(t, NewUploadTickets().Consume("never-issued"))
}
