package store

import (
	"context"
	"errors"
	"testing"

	"go-proyek/internal/state"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	loadStateFn func(ctx context.Context) (state.AppState, bool, error)
	saveStateFn func(ctx context.Context, st state.AppState) error
	cloudID     string
}

func (f *fakeRepo) LoadState(ctx context.Context) (state.AppState, bool, error) {
	if f.loadStateFn != nil {
		return f.loadStateFn(ctx)
	}
	return state.AppState{}, false, nil
}
func (f *fakeRepo) SaveState(ctx context.Context, st state.AppState) error {
	if f.saveStateFn != nil {
		return f.saveStateFn(ctx, st)
	}
	return nil
}
func (f *fakeRepo) LoadCloudID(ctx context.Context) (string, error) { return f.cloudID, nil }
func (f *fakeRepo) SaveCloudID(ctx context.Context, id string) error {
	f.cloudID = id
	return nil
}
func (f *fakeRepo) DeleteCloudID(ctx context.Context) error {
	f.cloudID = ""
	return nil
}

func TestStore_ApplyCommitsAndPersists(t *testing.T) {
	ctx := context.Background()
	var saved state.AppState
	repo := &fakeRepo{saveStateFn: func(ctx context.Context, st state.AppState) error {
		saved = st
		return nil
	}}
	s := New(repo, zap.NewNop())

	committed, err := s.Apply(ctx, func(st *state.AppState) error {
		st.Projects = append(st.Projects, state.Project{ID: "pro-1", Name: "GUDANG A"})
		return nil
	})

	assert.NoError(t, err)
	assert.Len(t, committed.Projects, 1)
	assert.Len(t, saved.Projects, 1)
	assert.Len(t, s.Snapshot().Projects, 1)
}

func TestStore_TransitionErrorAbortsWholeAction(t *testing.T) {
	ctx := context.Background()
	saves := 0
	repo := &fakeRepo{saveStateFn: func(ctx context.Context, st state.AppState) error {
		saves++
		return nil
	}}
	s := New(repo, zap.NewNop())

	boom := errors.New("boom")
	_, err := s.Apply(ctx, func(st *state.AppState) error {
		st.Projects = append(st.Projects, state.Project{ID: "pro-1"})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, saves)
	assert.Empty(t, s.Snapshot().Projects)
}

func TestStore_SaveFailureStillCommitsInMemory(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{saveStateFn: func(ctx context.Context, st state.AppState) error {
		return errors.New("disk on fire")
	}}
	s := New(repo, zap.NewNop())

	_, err := s.Apply(ctx, func(st *state.AppState) error {
		st.Projects = append(st.Projects, state.Project{ID: "pro-1"})
		return nil
	})

	assert.NoError(t, err)
	assert.Len(t, s.Snapshot().Projects, 1)
}

func TestStore_ListenerReceivesCommittedSnapshot(t *testing.T) {
	ctx := context.Background()
	s := New(&fakeRepo{}, zap.NewNop())

	var seen []state.AppState
	s.Subscribe(func(st state.AppState) { seen = append(seen, st) })

	_, err := s.Apply(ctx, func(st *state.AppState) error {
		st.CurrentProjectID = "pro-1"
		return nil
	})
	assert.NoError(t, err)
	assert.Len(t, seen, 1)
	assert.Equal(t, "pro-1", seen[0].CurrentProjectID)

	// mutasi pada salinan listener tidak bocor ke store
	seen[0].Projects = append(seen[0].Projects, state.Project{ID: "x"})
	assert.Empty(t, s.Snapshot().Projects)
}

func TestStore_LoadFallsBackToEmptyState(t *testing.T) {
	ctx := context.Background()
	s := New(&fakeRepo{}, zap.NewNop())

	found, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, found)
	snap := s.Snapshot()
	assert.NotNil(t, snap.Attendance)
	assert.NotNil(t, snap.Materials)
	assert.NotNil(t, snap.PettyCash)
}

func TestStore_LoadUsesStoredSnapshot(t *testing.T) {
	ctx := context.Background()
	stored := state.NewAppState()
	stored.Projects = []state.Project{{ID: "pro-1"}}
	repo := &fakeRepo{loadStateFn: func(ctx context.Context) (state.AppState, bool, error) {
		return stored, true, nil
	}}
	s := New(repo, zap.NewNop())

	found, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, s.Snapshot().Projects, 1)
}

func TestStore_ReplaceSwapsEverything(t *testing.T) {
	ctx := context.Background()
	s := New(&fakeRepo{}, zap.NewNop())
	_, _ = s.Apply(ctx, func(st *state.AppState) error {
		st.Projects = []state.Project{{ID: "old"}}
		return nil
	})

	next := state.NewAppState()
	next.Projects = []state.Project{{ID: "new"}}
	assert.NoError(t, s.Replace(ctx, next))
	assert.Equal(t, "new", s.Snapshot().Projects[0].ID)
}
