package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MarkStatus is the outcome of an atomic submission-mark attempt.
type MarkStatus int

const (
	// Marked means the caller won the mark and owns the upload sequence.
	Marked MarkStatus = iota
	// AlreadySubmitted means a previous submission for the same artifact is
	// in flight or finished; the caller must not upload.
	AlreadySubmitted
)

// Session covers one survey-to-sticker journey. Submitted holds the content
// hashes already driven through upload+notify; Epoch increments on reset so
// late completions from a previous journey can be ignored.
type Session struct {
	ID           string
	Epoch        uint64
	Submitted    map[string]struct{}
	LastActivity time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Start creates a fresh session and returns its ID.
func (s *Store) Start() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = newSession(id)
	return id
}

// Reset discards all journey state for the session: the submitted set is
// cleared and the epoch bumped, invalidating in-flight submissions.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	sess.Epoch++
	sess.Submitted = make(map[string]struct{})
	sess.LastActivity = time.Now()
}

// TryMark atomically records hash as submitted and returns the session epoch
// the mark belongs to. The mark is taken before any network call so that
// concurrent duplicate submissions observe AlreadySubmitted.
func (s *Store) TryMark(id, hash string) (uint64, MarkStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	sess.LastActivity = time.Now()

	if _, ok := sess.Submitted[hash]; ok {
		return sess.Epoch, AlreadySubmitted
	}
	sess.Submitted[hash] = struct{}{}
	return sess.Epoch, Marked
}

// Unmark rolls a failed submission back so the user can retry. It is a no-op
// when the session was reset since the mark was taken.
func (s *Store) Unmark(id string, epoch uint64, hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.Epoch != epoch {
		return
	}
	delete(sess.Submitted, hash)
}

// Submitted reports whether hash was already driven through submission.
func (s *Store) Submitted(id, hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	_, done := sess.Submitted[hash]
	return done
}

// Touch refreshes the session's activity clock.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(id).LastActivity = time.Now()
}

// PruneIdle drops sessions idle for longer than ttl and returns how many were
// removed.
func (s *Store) PruneIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastActivity.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) getOrCreateLocked(id string) *Session {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := newSession(id)
	s.sessions[id] = sess
	return sess
}

func newSession(id string) *Session {
	return &Session{
		ID:           id,
		Submitted:    make(map[string]struct{}),
		LastActivity: time.Now(),
	}
}
