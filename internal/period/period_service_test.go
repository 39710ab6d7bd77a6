package period_test

import (
	"context"
	"testing"

	"go-proyek/internal/events"
	producerMock "go-proyek/internal/messaging/kafka/producer/mock"
	"go-proyek/internal/period"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeRepo struct{}

func (fakeRepo) LoadState(ctx context.Context) (state.AppState, bool, error) {
	return state.AppState{}, false, nil
}
func (fakeRepo) SaveState(ctx context.Context, st state.AppState) error { return nil }
func (fakeRepo) LoadCloudID(ctx context.Context) (string, error)        { return "", nil }
func (fakeRepo) SaveCloudID(ctx context.Context, id string) error       { return nil }
func (fakeRepo) DeleteCloudID(ctx context.Context) error                { return nil }

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(fakeRepo{}, zap.NewNop())
	_, err := st.Apply(context.Background(), func(s *state.AppState) error {
		s.Projects = []state.Project{{ID: "pro-1", Name: "GUDANG A"}}
		s.Employees = []state.Employee{{ID: "emp-1", ProjectID: "pro-1", Name: "BUDI"}}
		return nil
	})
	assert.NoError(t, err)
	return st
}

func TestPeriodService_CreatePublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := seededStore(t)
	pub := producerMock.NewMockPublisher(ctrl)
	svc := period.NewService(st, pub, zap.NewNop())

	pub.EXPECT().Publish(gomock.Any(), events.PeriodCreatedTopic, gomock.Any(), "period.created", gomock.Any())

	resp, err := svc.Create(context.Background(), "pro-1", period.CreateRequest{
		StartDate: "2026-02-15",
		EndDate:   "2026-02-21",
	})
	assert.NoError(t, err)
	assert.Equal(t, "15 SD 21 FEBRUARI 2026", resp.Name)
	assert.True(t, resp.IsCurrent)

	snap := st.Snapshot()
	assert.Equal(t, resp.ID, snap.Projects[0].CurrentPeriodID)
	assert.Len(t, snap.Attendance[resp.ID], 1)
}

func TestPeriodService_CreateUnknownProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := period.NewService(seededStore(t), producerMock.NewMockPublisher(ctrl), zap.NewNop())

	_, err := svc.Create(context.Background(), "pro-x", period.CreateRequest{
		StartDate: "2026-02-15",
		EndDate:   "2026-02-21",
	})
	assert.Error(t, err)
}

func TestPeriodService_SetCurrentRejectsForeignPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := seededStore(t)
	pub := producerMock.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	svc := period.NewService(st, pub, zap.NewNop())

	resp, err := svc.Create(context.Background(), "pro-1", period.CreateRequest{
		StartDate: "2026-02-15", EndDate: "2026-02-21",
	})
	assert.NoError(t, err)

	assert.Error(t, svc.SetCurrent(context.Background(), "pro-lain", resp.ID))
	assert.NoError(t, svc.SetCurrent(context.Background(), "pro-1", resp.ID))
}
