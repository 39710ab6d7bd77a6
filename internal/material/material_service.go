package material

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

//go:generate mockgen -source=material_service.go -destination=mock/material_service_mock.go -package=mock
type Service interface {
	GetByPeriod(ctx context.Context, periodID string) ([]ItemResponse, error)
	ReplaceForProject(ctx context.Context, projectID string, req ReplaceRequest) (map[string][]ItemResponse, error)
	Import(ctx context.Context, projectID string, req ImportRequest) (ImportResult, error)
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("material.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("material.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) GetByPeriod(ctx context.Context, periodID string) ([]ItemResponse, error) {
	st := s.store.Snapshot()
	return mapToResponse(st.Materials[periodID]), nil
}

// ReplaceForProject menerima buffer edit material periode aktif proyek dan
// menjalankan mesin reassignment: item yang tanggalnya pindah periode ikut
// pindah bucket. Respons memuat setiap bucket yang tersentuh.
func (s *service) ReplaceForProject(ctx context.Context, projectID string, req ReplaceRequest) (map[string][]ItemResponse, error) {
	items := make([]state.MaterialItem, 0, len(req.Items))
	for _, in := range req.Items {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, state.MaterialItem{
			ID:           id,
			Date:         in.Date,
			ItemName:     in.ItemName,
			Quantity:     in.Quantity,
			Unit:         in.Unit,
			UnitPrice:    in.UnitPrice,
			Notes:        in.Notes,
			ReceiptImage: in.ReceiptImage,
		})
	}

	var touched map[string][]state.MaterialItem
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		project, ok := st.ProjectByID(projectID)
		if !ok {
			return errProjectNotFound
		}
		ApplyBulkUpdate(st, project, items)

		touched = map[string][]state.MaterialItem{}
		for _, p := range st.PeriodsForProject(projectID) {
			touched[p.ID] = st.Materials[p.ID]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string][]ItemResponse, len(touched))
	for periodID, bucket := range touched {
		out[periodID] = mapToResponse(bucket)
	}
	return out, nil
}

// Import menerima baris polos hasil konversi spreadsheet dan merutekannya
// per tanggal ke bucket periode proyek. Baris yang kehilangan field wajib
// dilewati dan dihitung, tidak pernah menggagalkan seluruh batch.
func (s *service) Import(ctx context.Context, projectID string, req ImportRequest) (ImportResult, error) {
	var result ImportResult
	items := make([]state.MaterialItem, 0, len(req.Rows))
	for _, row := range req.Rows {
		if row.Date == "" || row.ItemName == "" || row.Quantity <= 0 || row.UnitPrice < 0 {
			result.Skipped++
			continue
		}
		items = append(items, Normalize(state.MaterialItem{
			ID:        uuid.New().String(),
			Date:      row.Date,
			ItemName:  row.ItemName,
			Quantity:  row.Quantity,
			Unit:      row.Unit,
			UnitPrice: row.UnitPrice,
		}))
	}
	result.Imported = len(items)

	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		project, ok := st.ProjectByID(projectID)
		if !ok {
			return errProjectNotFound
		}
		grouped := Reassign(items, st.PeriodsForProject(projectID), project.CurrentPeriodID)
		for periodID, bucket := range grouped {
			st.Materials[periodID] = append(st.Materials[periodID], bucket...)
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.logger.Info("materials imported",
		zap.String("project_id", projectID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}
