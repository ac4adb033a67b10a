// Package websessiontest provides an in-memory session for handler tests.
package websessiontest

import "sync"

// Session is a test double for websession.Values.
// It counts how often the session ID was regenerated.
type Session struct {
	mu            sync.Mutex
	values        map[interface{}]interface{}
	regenerations int
}

// NewSession creates an empty in-memory session
func NewSession() *Session {
	return &Session{values: make(map[interface{}]interface{})}
}

func (s *Session) Get(key interface{}) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *Session) Set(key, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Session) Delete(key interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[interface{}]interface{})
	return nil
}

// Regenerate records an ID rotation. Values are carried over as the real store does.
func (s *Session) Regenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regenerations++
	return nil
}

// Regenerations returns how often Regenerate was called
func (s *Session) Regenerations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regenerations
}
