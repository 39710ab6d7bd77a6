package payroll

import (
	"context"
	"net/http"

	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/store"

	"go.uber.org/zap"
)

var (
	errPeriodNotFound  = apperror.New(apperror.CodeNotFound, "Periode tidak ditemukan", http.StatusNotFound)
	errProjectNotFound = apperror.New(apperror.CodeNotFound, "Proyek tidak ditemukan", http.StatusNotFound)
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetPeriodPayroll(ctx context.Context, periodID string) (PeriodPayrollResponse, error)
	GetProjectPayroll(ctx context.Context, projectID string) (ProjectPayrollResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{store: st, logger: l}
}

// GetPeriodPayroll menghitung baris gaji per karyawan untuk satu periode.
// Baris dibuat untuk seluruh roster proyek pemilik periode, termasuk
// karyawan tanpa record absensi (semua nol).
func (s *service) GetPeriodPayroll(ctx context.Context, periodID string) (PeriodPayrollResponse, error) {
	st := s.store.Snapshot()
	period, ok := st.PeriodByID(periodID)
	if !ok {
		return PeriodPayrollResponse{}, errPeriodNotFound
	}

	records := st.Attendance[periodID]
	resp := PeriodPayrollResponse{PeriodID: period.ID, PeriodName: period.Name}
	for _, emp := range st.EmployeesForProject(period.ProjectID) {
		sum := Compute(emp, recordFor(records, emp.ID))
		resp.Rows = append(resp.Rows, RowResponse{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.Name,
			Position:      emp.Position,
			DailyRate:     emp.DailyRate,
			OvertimeRate:  emp.OvertimeRate,
			WorkDays:      sum.WorkDays,
			OvertimeHours: sum.OvertimeHours,
			BasicPay:      sum.BasicPay,
			OvertimePay:   sum.OvertimePay,
			TotalPay:      sum.TotalPay,
		})
		resp.Total += sum.TotalPay
	}
	return resp, nil
}

// GetProjectPayroll mengembalikan total gaji proyek untuk periode aktifnya.
func (s *service) GetProjectPayroll(ctx context.Context, projectID string) (ProjectPayrollResponse, error) {
	st := s.store.Snapshot()
	project, ok := st.ProjectByID(projectID)
	if !ok {
		return ProjectPayrollResponse{}, errProjectNotFound
	}
	return ProjectPayrollResponse{
		ProjectID: project.ID,
		PeriodID:  project.CurrentPeriodID,
		Total:     PeriodTotal(st, projectID, project.CurrentPeriodID),
	}, nil
}
