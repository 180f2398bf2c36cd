package models

import (
	"sync"
	"time"

	"list-viewer/internal/cycle"
)

// DisplayState is a snapshot of what the display surface should show after a
// trigger: the current item, its one-based position, the sequence length, and
// how many triggers the session has processed.
type DisplayState struct {
	Item      string
	Position  int
	Total     int
	Triggers  uint64
	UpdatedAt time.Time
}

// SessionRepository owns the cursor for the lifetime of the process. It is
// the single writer of cursor state; every mutation goes through Advance,
// Retreat or Reset, which hold the lock for the whole
// advance-then-snapshot step so no intermediate state is observable.
type SessionRepository struct {
	mu       sync.RWMutex
	cursor   *cycle.Cursor
	triggers uint64
	lastAt   time.Time
}

// NewSessionRepository creates a repository over the given item sequence.
// An empty sequence is rejected at construction, before any window exists.
func NewSessionRepository(items []string) (*SessionRepository, error) {
	cursor, err := cycle.New(items)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{cursor: cursor}, nil
}

// Advance moves the cursor to the next item and returns the resulting
// display state.
func (r *SessionRepository) Advance() DisplayState {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor.Advance()
	return r.recordTrigger()
}

// Retreat moves the cursor to the previous item and returns the resulting
// display state.
func (r *SessionRepository) Retreat() DisplayState {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor.Retreat()
	return r.recordTrigger()
}

// Reset returns the cursor to the first item and returns the resulting
// display state.
func (r *SessionRepository) Reset() DisplayState {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor.Reset()
	return r.recordTrigger()
}

// Snapshot returns the current display state without mutating the cursor.
func (r *SessionRepository) Snapshot() DisplayState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return DisplayState{
		Item:      r.cursor.Current(),
		Position:  r.cursor.Position() + 1,
		Total:     r.cursor.Len(),
		Triggers:  r.triggers,
		UpdatedAt: r.lastAt,
	}
}

// Items returns a copy of the item sequence.
func (r *SessionRepository) Items() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cursor.Items()
}

// recordTrigger must be called with the write lock held.
func (r *SessionRepository) recordTrigger() DisplayState {
	r.triggers++
	r.lastAt = time.Now()

	return DisplayState{
		Item:      r.cursor.Current(),
		Position:  r.cursor.Position() + 1,
		Total:     r.cursor.Len(),
		Triggers:  r.triggers,
		UpdatedAt: r.lastAt,
	}
}
