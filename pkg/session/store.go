package session

import (
	"fmt"
	"sync"
)

// Store maps session tokens to stored credentials for the lifetime of the
// process. It has no knowledge of drivers; pairing a credential with a live
// browser is the Manager's job.
type Store struct {
	mu      sync.Mutex
	records map[string]string
	order   []string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]string),
	}
}

// Put normalizes the cookie and inserts or overwrites the record for token.
// Overwriting keeps the token's original position in the listing order.
func (s *Store) Put(token, cookie string) error {
	normalized, err := NormalizeCookie(cookie)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[token]; !exists {
		s.order = append(s.order, token)
	}
	s.records[token] = normalized.Stored
	return nil
}

// Get returns the stored (canonical) credential for token.
func (s *Store) Get(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.records[token]
	if !exists {
		return "", fmt.Errorf("%w: no session for token %q", ErrSessionNotFound, token)
	}
	return stored, nil
}

// Remove deletes the record for token, reporting whether one existed.
func (s *Store) Remove(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[token]; !exists {
		return false
	}

	delete(s.records, token)
	for i, t := range s.order {
		if t == token {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveAll clears the store and returns the number of records removed.
func (s *Store) RemoveAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.records)
	s.records = make(map[string]string)
	s.order = nil
	return count
}

// List returns a snapshot of the stored tokens in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := make([]string, len(s.order))
	copy(tokens, s.order)
	return tokens
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
