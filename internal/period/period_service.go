package period

import (
	"context"
	"net/http"
	"time"

	"go-proyek/internal/events"
	"go-proyek/internal/messaging/kafka/producer"
	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"go.uber.org/zap"
)

var (
	errPeriodNotFound  = apperror.New(apperror.CodeNotFound, "Periode tidak ditemukan", http.StatusNotFound)
	errProjectNotFound = apperror.New(apperror.CodeNotFound, "Proyek tidak ditemukan", http.StatusNotFound)
	errPeriodMismatch  = apperror.New(apperror.CodeInvalidInput, "Periode bukan milik proyek ini", http.StatusBadRequest)
)

//go:generate mockgen -source=period_service.go -destination=mock/period_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, projectID string, req CreateRequest) (PeriodResponse, error)
	Update(ctx context.Context, periodID string, req UpdateRequest) (PeriodResponse, error)
	GetAllForProject(ctx context.Context, projectID string) ([]PeriodResponse, error)
	SetCurrent(ctx context.Context, projectID, periodID string) error
}

type service struct {
	store     *store.Store
	publisher producer.Publisher
	logger    *zap.Logger
}

func NewService(st *store.Store, pub producer.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("period.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("period.service")
	}
	if pub == nil {
		pub = producer.Noop{}
	}
	return &service{store: st, publisher: pub, logger: l}
}

func (s *service) Create(ctx context.Context, projectID string, req CreateRequest) (PeriodResponse, error) {
	var created state.Period
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(projectID); !ok {
			return errProjectNotFound
		}
		p, err := Create(st, projectID, req.StartDate, req.EndDate)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidInput, "Rentang tanggal tidak valid", http.StatusBadRequest)
		}
		created = p
		return nil
	})
	if err != nil {
		return PeriodResponse{}, err
	}

	s.logger.Info("period created",
		zap.String("period_id", created.ID),
		zap.String("project_id", projectID),
		zap.String("name", created.Name))
	s.publisher.Publish(ctx, events.PeriodCreatedTopic, created.ID, "period.created", events.PeriodCreatedEvent{
		EventType:  "period.created",
		PeriodID:   created.ID,
		ProjectID:  projectID,
		StartDate:  created.StartDate,
		EndDate:    created.EndDate,
		OccurredAt: time.Now().UTC(),
	})
	return mapToResponse(created, created.ID), nil
}

// Update mengubah rentang periode. Konsekuensi yang harus dipahami
// pemanggil: seluruh absensi periode di-reset ke skeleton kosong.
func (s *service) Update(ctx context.Context, periodID string, req UpdateRequest) (PeriodResponse, error) {
	var (
		updated state.Period
		current string
	)
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		p, found, err := Edit(st, periodID, req.StartDate, req.EndDate, req.KeepName, req.CustomName)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidInput, "Rentang tanggal tidak valid", http.StatusBadRequest)
		}
		if !found {
			return errPeriodNotFound
		}
		updated = p
		if project, ok := st.ProjectByID(p.ProjectID); ok {
			current = project.CurrentPeriodID
		}
		return nil
	})
	if err != nil {
		return PeriodResponse{}, err
	}

	s.logger.Info("period updated, attendance reseeded",
		zap.String("period_id", periodID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate))
	return mapToResponse(updated, current), nil
}

func (s *service) GetAllForProject(ctx context.Context, projectID string) ([]PeriodResponse, error) {
	st := s.store.Snapshot()
	project, ok := st.ProjectByID(projectID)
	if !ok {
		return nil, errProjectNotFound
	}

	periods := st.PeriodsForProject(projectID)
	out := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		out[i] = mapToResponse(p, project.CurrentPeriodID)
	}
	return out, nil
}

// SetCurrent memindahkan pointer periode aktif proyek secara eksplisit;
// hanya lewat jalur inilah periode lama bisa aktif kembali.
func (s *service) SetCurrent(ctx context.Context, projectID, periodID string) error {
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		period, ok := st.PeriodByID(periodID)
		if !ok {
			return errPeriodNotFound
		}
		if period.ProjectID != projectID {
			return errPeriodMismatch
		}
		for i, p := range st.Projects {
			if p.ID == projectID {
				st.Projects[i].CurrentPeriodID = periodID
				return nil
			}
		}
		return errProjectNotFound
	})
	return err
}
