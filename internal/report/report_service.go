package report

import (
	"context"
	"net/http"

	"go-proyek/internal/payroll"
	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"go.uber.org/zap"
)

var errProjectNotFound = apperror.New(apperror.CodeNotFound, "Proyek tidak ditemukan", http.StatusNotFound)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GetProjectSummary(ctx context.Context, projectID string) (ProjectSummaryResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{store: st, logger: l}
}

// GetProjectSummary adalah proyeksi read-only untuk tampilan cetak:
// total gaji periode aktif (plus terbilangnya untuk kuitansi), total
// material per periode, dan saldo kas kecil proyek.
func (s *service) GetProjectSummary(ctx context.Context, projectID string) (ProjectSummaryResponse, error) {
	st := s.store.Snapshot()
	project, ok := st.ProjectByID(projectID)
	if !ok {
		return ProjectSummaryResponse{}, errProjectNotFound
	}

	resp := ProjectSummaryResponse{
		ProjectID:       project.ID,
		ProjectName:     project.Name,
		CurrentPeriodID: project.CurrentPeriodID,
		PayrollTotal:    payroll.PeriodTotal(st, projectID, project.CurrentPeriodID),
	}
	resp.PayrollTerbilang = Terbilang(resp.PayrollTotal)

	for _, p := range st.PeriodsForProject(projectID) {
		var total int64
		for _, item := range st.Materials[p.ID] {
			total += item.TotalPrice
		}
		resp.MaterialTotals = append(resp.MaterialTotals, PeriodMaterialTotal{
			PeriodID:   p.ID,
			PeriodName: p.Name,
			Total:      total,
		})
	}

	for _, tx := range st.PettyCash[projectID] {
		switch tx.Type {
		case state.PettyCashIn:
			resp.PettyCashIn += tx.Amount
		case state.PettyCashOut:
			resp.PettyCashOut += tx.Amount
		}
	}
	resp.PettyCashBalance = resp.PettyCashIn - resp.PettyCashOut
	return resp, nil
}
