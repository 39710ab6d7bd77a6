package pettycash

import (
	"context"
	"testing"

	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"github.com/stretchr/testify/assert"
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

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(fakeRepo{}, zap.NewNop())
	_, err := st.Apply(context.Background(), func(s *state.AppState) error {
		s.Projects = []state.Project{{ID: "pro-1", Name: "GUDANG A"}}
		return nil
	})
	assert.NoError(t, err)
	return st
}

func TestService_ReplaceAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestStore(t), zap.NewNop())

	resp, err := svc.Replace(ctx, "pro-1", ReplaceRequest{Transactions: []TransactionInput{
		{Date: "2026-02-15", Description: "Modal awal", Type: "in", Amount: 500000},
		{ID: "tx-keep", Date: "2026-02-16", Description: "Beli semen", Type: "out", Amount: 120000},
	}})
	assert.NoError(t, err)
	assert.Len(t, resp.Transactions, 2)
	// id kosong diisi, id bawaan dipertahankan
	assert.NotEmpty(t, resp.Transactions[0].ID)
	assert.Equal(t, "tx-keep", resp.Transactions[1].ID)
	assert.Equal(t, int64(500000), resp.TotalIn)
	assert.Equal(t, int64(120000), resp.TotalOut)
	assert.Equal(t, int64(380000), resp.Balance)

	got, err := svc.GetByProject(ctx, "pro-1")
	assert.NoError(t, err)
	assert.Equal(t, resp.Balance, got.Balance)
}

func TestService_ReplaceUnknownProject(t *testing.T) {
	svc := NewService(newTestStore(t), zap.NewNop())
	_, err := svc.Replace(context.Background(), "pro-x", ReplaceRequest{})
	assert.Error(t, err)
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestStore(t), zap.NewNop())

	_, err := svc.Replace(ctx, "pro-1", ReplaceRequest{Transactions: []TransactionInput{
		{Date: "2026-02-15", Description: "Modal awal", Type: "in", Amount: 500000},
	}})
	assert.NoError(t, err)

	assert.NoError(t, svc.Clear(ctx, "pro-1"))
	got, err := svc.GetByProject(ctx, "pro-1")
	assert.NoError(t, err)
	assert.Empty(t, got.Transactions)
	assert.Zero(t, got.Balance)
}

func TestService_ImportSkipsBadRows(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestStore(t), zap.NewNop())

	result, err := svc.Import(ctx, "pro-1", ImportRequest{Rows: []ImportRow{
		{Date: "2026-02-15", Description: "Modal", Type: "in", Amount: 100000},
		{Date: "", Description: "Tanpa tanggal", Type: "in", Amount: 5000},
		{Date: "2026-02-16", Description: "Tipe aneh", Type: "pinjam", Amount: 5000},
		{Date: "2026-02-17", Description: "Nol", Type: "out", Amount: 0},
		{Date: "2026-02-18", Description: "Beli paku", Type: "out", Amount: 25000},
	}})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Skipped)

	got, err := svc.GetByProject(ctx, "pro-1")
	assert.NoError(t, err)
	assert.Len(t, got.Transactions, 2)
	assert.Equal(t, int64(75000), got.Balance)
}
