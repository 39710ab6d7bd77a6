package employee

import (
	"context"
	"net/http"
	"time"

	"go-proyek/internal/events"
	"go-proyek/internal/messaging/kafka/producer"
	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errEmployeeNotFound = apperror.New(apperror.CodeNotFound, "Karyawan tidak ditemukan", http.StatusNotFound)
	errProjectNotFound  = apperror.New(apperror.CodeNotFound, "Proyek tidak ditemukan", http.StatusNotFound)
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, projectID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, projectID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, projectID string, req ImportRequest) (ImportResult, error)
}

type service struct {
	store     *store.Store
	publisher producer.Publisher
	logger    *zap.Logger
}

func NewService(st *store.Store, pub producer.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if pub == nil {
		pub = producer.Noop{}
	}
	return &service{store: st, publisher: pub, logger: l}
}

func (s *service) Create(ctx context.Context, projectID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	emp := state.Employee{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Name:         req.Name,
		Position:     req.Position,
		DailyRate:    req.DailyRate,
		OvertimeRate: req.OvertimeRate,
	}

	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(projectID); !ok {
			return errProjectNotFound
		}
		return Add(st, emp)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID),
		zap.String("project_id", projectID))
	s.publisher.Publish(ctx, events.EmployeeCreatedTopic, emp.ID, "employee.created", events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: emp.ID,
		ProjectID:  projectID,
		OccurredAt: time.Now().UTC(),
	})
	return mapToResponse(emp), nil
}

func (s *service) GetAll(ctx context.Context, projectID string) ([]EmployeeResponse, error) {
	st := s.store.Snapshot()
	employees := st.EmployeesForProject(projectID)
	out := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = mapToResponse(e)
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	var updated state.Employee
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		for i, e := range st.Employees {
			if e.ID == id {
				e.Name = req.Name
				e.Position = req.Position
				e.DailyRate = req.DailyRate
				e.OvertimeRate = req.OvertimeRate
				st.Employees[i] = e
				updated = e
				return nil
			}
		}
		return errEmployeeNotFound
	})
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(updated), nil
}

// Delete menghapus karyawan dari roster tanpa menyentuh record absensi
// historisnya. Konfirmasi destruktif adalah urusan lapisan UI; sampai di
// sini aksi dijalankan tanpa syarat.
func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if !Remove(st, id) {
			return errEmployeeNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("employee deleted, historical attendance kept", zap.String("employee_id", id))
	return nil
}

// Import menerima baris polos hasil konversi spreadsheet; baris tanpa
// nama atau dengan rate negatif dilewati dan dihitung.
func (s *service) Import(ctx context.Context, projectID string, req ImportRequest) (ImportResult, error) {
	var result ImportResult
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(projectID); !ok {
			return errProjectNotFound
		}
		for _, row := range req.Rows {
			if row.Name == "" || row.DailyRate < 0 || row.OvertimeRate < 0 {
				result.Skipped++
				continue
			}
			emp := state.Employee{
				ID:           uuid.New().String(),
				ProjectID:    projectID,
				Name:         row.Name,
				Position:     row.Position,
				DailyRate:    row.DailyRate,
				OvertimeRate: row.OvertimeRate,
			}
			if err := Add(st, emp); err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.logger.Info("employees imported",
		zap.String("project_id", projectID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}
