package models

import (
	"testing"

	"list-viewer/internal/cycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *SessionRepository {
	t.Helper()
	repo, err := NewSessionRepository([]string{"Item 1", "Item 2", "Item 3", "Item 4", "Item 5"})
	require.NoError(t, err)
	return repo
}

func TestNewSessionRepositoryRejectsEmptySequence(t *testing.T) {
	repo, err := NewSessionRepository(nil)
	assert.Nil(t, repo)
	assert.ErrorIs(t, err, cycle.ErrNoItems)
}

func TestInitialSnapshot(t *testing.T) {
	repo := newRepo(t)

	state := repo.Snapshot()
	assert.Equal(t, "Item 1", state.Item)
	assert.Equal(t, 1, state.Position)
	assert.Equal(t, 5, state.Total)
	assert.Equal(t, uint64(0), state.Triggers)
	assert.True(t, state.UpdatedAt.IsZero())
}

func TestAdvanceUpdatesStateAndCount(t *testing.T) {
	repo := newRepo(t)

	state := repo.Advance()
	assert.Equal(t, "Item 2", state.Item)
	assert.Equal(t, 2, state.Position)
	assert.Equal(t, uint64(1), state.Triggers)
	assert.False(t, state.UpdatedAt.IsZero())

	// The snapshot matches what the last trigger returned.
	assert.Equal(t, state, repo.Snapshot())
}

func TestAdvanceWrapsAfterFullCycle(t *testing.T) {
	repo := newRepo(t)

	var state DisplayState
	for i := 0; i < 5; i++ {
		state = repo.Advance()
	}

	assert.Equal(t, "Item 1", state.Item)
	assert.Equal(t, 1, state.Position)
	assert.Equal(t, uint64(5), state.Triggers)
}

func TestRetreatCountsAsTrigger(t *testing.T) {
	repo := newRepo(t)

	state := repo.Retreat()
	assert.Equal(t, "Item 5", state.Item)
	assert.Equal(t, 5, state.Position)
	assert.Equal(t, uint64(1), state.Triggers)
}

func TestResetReturnsToFirstItem(t *testing.T) {
	repo := newRepo(t)

	repo.Advance()
	repo.Advance()
	state := repo.Reset()

	assert.Equal(t, "Item 1", state.Item)
	assert.Equal(t, 1, state.Position)
	assert.Equal(t, uint64(3), state.Triggers)
}

func TestItemsReturnsCopy(t *testing.T) {
	repo := newRepo(t)

	items := repo.Items()
	items[0] = "mutated"
	assert.Equal(t, "Item 1", repo.Snapshot().Item)
}
