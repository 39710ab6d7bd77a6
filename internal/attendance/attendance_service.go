package attendance

import (
	"context"
	"net/http"

	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"go.uber.org/zap"
)

var errPeriodNotFound = apperror.New(apperror.CodeNotFound, "Periode tidak ditemukan", http.StatusNotFound)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetByPeriod(ctx context.Context, periodID string) ([]RecordResponse, error)
	Toggle(ctx context.Context, periodID string, req ToggleRequest) ([]RecordResponse, error)
	SetOvertime(ctx context.Context, periodID string, req OvertimeRequest) ([]RecordResponse, error)
	Replace(ctx context.Context, periodID string, req ReplaceRequest) ([]RecordResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) GetByPeriod(ctx context.Context, periodID string) ([]RecordResponse, error) {
	st := s.store.Snapshot()
	// Periode tanpa record menghasilkan daftar kosong, bukan error.
	return mapToResponse(st.Attendance[periodID]), nil
}

func (s *service) Toggle(ctx context.Context, periodID string, req ToggleRequest) ([]RecordResponse, error) {
	var result []state.AttendanceRecord
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.PeriodByID(periodID); !ok {
			return errPeriodNotFound
		}
		st.Attendance[periodID] = Toggle(st.Attendance[periodID], req.EmployeeID, req.Date)
		result = st.Attendance[periodID]
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("presence toggled",
		zap.String("period_id", periodID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date))
	return mapToResponse(result), nil
}

func (s *service) SetOvertime(ctx context.Context, periodID string, req OvertimeRequest) ([]RecordResponse, error) {
	var result []state.AttendanceRecord
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.PeriodByID(periodID); !ok {
			return errPeriodNotFound
		}
		st.Attendance[periodID] = SetOvertime(st.Attendance[periodID], req.EmployeeID, req.Date, req.Hours)
		result = st.Attendance[periodID]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapToResponse(result), nil
}

// Replace mengganti seluruh daftar record periode (buffer edit halaman
// absensi bersifat otoritatif untuk periodenya sendiri).
func (s *service) Replace(ctx context.Context, periodID string, req ReplaceRequest) ([]RecordResponse, error) {
	records := mapFromInput(req.Records)
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.PeriodByID(periodID); !ok {
			return errPeriodNotFound
		}
		st.Attendance[periodID] = records
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapToResponse(records), nil
}
