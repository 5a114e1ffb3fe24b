package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMarking(t *testing.T) {
	t.Run("first mark wins, second short-circuits", func(t *testing.T) {
		s := NewStore()
		id := s.Start()

		_, status := s.TryMark(id, "abc")
		assert.Equal(t, Marked, status)

		_, status = s.TryMark(id, "abc")
		assert.Equal(t, AlreadySubmitted, status)

		assert.True(t, s.Submitted(id, "abc"))
		assert.False(t, s.Submitted(id, "other"))
	})

	t.Run("unmark allows a retry", func(t *testing.T) {
		s := NewStore()
		id := s.Start()

		epoch, status := s.TryMark(id, "abc")
		require.Equal(t, Marked, status)

		s.Unmark(id, epoch, "abc")
		_, status = s.TryMark(id, "abc")
		assert.Equal(t, Marked, status)
	})

	t.Run("unmark from a previous epoch is ignored", func(t *testing.T) {
		s := NewStore()
		id := s.Start()

		oldEpoch, _ := s.TryMark(id, "abc")
		s.Reset(id)
		_, status := s.TryMark(id, "abc")
		require.Equal(t, Marked, status)

		// Late rollback from before the reset must not clear the new mark.
		s.Unmark(id, oldEpoch, "abc")
		assert.True(t, s.Submitted(id, "abc"))
	})

	t.Run("reset clears submissions", func(t *testing.T) {
		s := NewStore()
		id := s.Start()

		s.TryMark(id, "abc")
		s.Reset(id)
		assert.False(t, s.Submitted(id, "abc"))
	})

	t.Run("unknown session is created lazily", func(t *testing.T) {
		s := NewStore()
		_, status := s.TryMark("client-supplied", "abc")
		assert.Equal(t, Marked, status)
	})
}

func TestStoreConcurrentMark(t *testing.T) {
	s := NewStore()
	id := s.Start()

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, status := s.TryMark(id, "same-hash"); status == Marked {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won, "exactly one goroutine may win the mark")
}

func TestPruneIdle(t *testing.T) {
	s := NewStore()
	stale := s.Start()
	fresh := s.Start()

	s.mu.Lock()
	s.sessions[stale].LastActivity = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	removed := s.PruneIdle(30 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.False(t, s.Submitted(stale, "x"))

	s.Touch(fresh)
	assert.Equal(t, 0, s.PruneIdle(30*time.Minute))
}
