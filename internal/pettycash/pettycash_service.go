package pettycash

import (
	"context"
	"net/http"

	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errProjectNotFound = apperror.New(apperror.CodeNotFound, "Proyek tidak ditemukan", http.StatusNotFound)

//go:generate mockgen -source=pettycash_service.go -destination=mock/pettycash_service_mock.go -package=mock
type Service interface {
	GetByProject(ctx context.Context, projectID string) (ListResponse, error)
	Replace(ctx context.Context, projectID string, req ReplaceRequest) (ListResponse, error)
	Clear(ctx context.Context, projectID string) error
	Import(ctx context.Context, projectID string, req ImportRequest) (ImportResult, error)
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("pettycash.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("pettycash.service")
	}
	return &service{store: st, logger: l}
}

// Kas kecil di-key per proyek, bukan per periode.
func (s *service) GetByProject(ctx context.Context, projectID string) (ListResponse, error) {
	st := s.store.Snapshot()
	return mapToList(st.PettyCash[projectID]), nil
}

func (s *service) Replace(ctx context.Context, projectID string, req ReplaceRequest) (ListResponse, error) {
	txs := make([]state.PettyCashTransaction, 0, len(req.Transactions))
	for _, in := range req.Transactions {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		txs = append(txs, state.PettyCashTransaction{
			ID:          id,
			Date:        in.Date,
			Description: in.Description,
			Type:        in.Type,
			Amount:      in.Amount,
		})
	}

	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(projectID); !ok {
			return errProjectNotFound
		}
		st.PettyCash[projectID] = txs
		return nil
	})
	if err != nil {
		return ListResponse{}, err
	}
	return mapToList(txs), nil
}

// Clear mengosongkan seluruh kas kecil proyek. Konfirmasi ada di UI;
// sampai di sini langsung dijalankan.
func (s *service) Clear(ctx context.Context, projectID string) error {
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(projectID); !ok {
			return errProjectNotFound
		}
		st.PettyCash[projectID] = []state.PettyCashTransaction{}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("petty cash cleared", zap.String("project_id", projectID))
	return nil
}

func (s *service) Import(ctx context.Context, projectID string, req ImportRequest) (ImportResult, error) {
	var result ImportResult
	var txs []state.PettyCashTransaction
	for _, row := range req.Rows {
		if row.Date == "" || row.Description == "" || row.Amount <= 0 ||
			(row.Type != state.PettyCashIn && row.Type != state.PettyCashOut) {
			result.Skipped++
			continue
		}
		txs = append(txs, state.PettyCashTransaction{
			ID:          uuid.New().String(),
			Date:        row.Date,
			Description: row.Description,
			Type:        row.Type,
			Amount:      row.Amount,
		})
	}
	result.Imported = len(txs)

	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(projectID); !ok {
			return errProjectNotFound
		}
		st.PettyCash[projectID] = append(st.PettyCash[projectID], txs...)
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.logger.Info("petty cash imported",
		zap.String("project_id", projectID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}
