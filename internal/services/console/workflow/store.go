package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Modal is one opened instance of a modal request.
type Modal struct {
	ID       string
	Request  Request
	Form     Form
	ReturnTo string
	OpenedAt time.Time
	Busy     bool
}

// Store holds the single modal of a console session.
type Store struct {
	mu      sync.Mutex
	current *Modal
	now     func() time.Time
	newID   func() string
}

// NewStore returns an empty store with nothing open.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Open replaces whatever modal is open with req. The form is built from the
// request payload once; later reads return the edited state.
func (s *Store) Open(req Request, returnTo string) Modal {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &Modal{
		ID:       s.newID(),
		Request:  req,
		Form:     FormFor(req),
		ReturnTo: returnTo,
		OpenedAt: s.now(),
	}
	s.current = m
	return *m
}

// Close clears the open modal. Calling it with nothing open is a no-op.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// CloseModal closes the modal only if id is still the open instance.
func (s *Store) CloseModal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current = nil
	return true
}

// Current returns a copy of the open modal.
func (s *Store) Current() (Modal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Modal{}, false
	}
	return *s.current, true
}

// IsOpen reports whether any modal is open.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// SaveForm stores edits for the modal id. It reports false when id is no
// longer the open instance.
func (s *Store) SaveForm(id string, f Form) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current.Form = f
	return true
}

// BeginMutation marks the modal busy. ok is false when id is not open or a
// mutation for it is already in flight. release must be called once the
// mutation finishes; it is safe after the modal was closed or replaced.
func (s *Store) BeginMutation(id string) (release func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id || s.current.Busy {
		return func() {}, false
	}
	m := s.current
	m.Busy = true
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			m.Busy = false
			s.mu.Unlock()
		})
	}, true
}
