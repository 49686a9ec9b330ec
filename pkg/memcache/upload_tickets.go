// pkg/memcache/upload_tickets.go
package mem

import (
	"sync"
	"time"
)

type UploadTicketStore interface {
	// Issue records a storage id handed out with a presigned upload URL.
	Issue(storageID string, ttl time.Duration)

	// Consume reports whether storageID was issued and has not expired,
	// and removes it (single-use).
	Consume(storageID string) bool

	Peek(storageID string) bool
}

type UploadTickets struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewUploadTickets() *UploadTickets {
	return &UploadTickets{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *UploadTickets) Issue(storageID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.data[storageID] = s.now().Add(ttl)
}

func (s *UploadTickets) Consume(storageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.data[storageID]
	if !ok {
		return false
	}
	delete(s.data, storageID) // single-use, and cleans up expired ones too
	return !s.now().After(expiresAt)
}

func (s *UploadTickets) Peek(storageID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[storageID]
	return ok && !s.now().After(expiresAt)
}

// caller holds mu
func (s *UploadTickets) sweep() {
	now := s.now()
	for id, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, id)
		}
	}
}
