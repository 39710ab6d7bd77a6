package project

import (
	"context"
	"net/http"
	"strings"

	"go-proyek/internal/period"
	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errProjectNotFound = apperror.New(apperror.CodeNotFound, "Proyek tidak ditemukan", http.StatusNotFound)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	SetCurrent(ctx context.Context, id string) error
	GetCompanyProfile(ctx context.Context) (CompanyProfileResponse, error)
	UpdateCompanyProfile(ctx context.Context, req CompanyProfileRequest) (CompanyProfileResponse, error)
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{store: st, logger: l}
}

// Create membuat proyek baru beserta periode pertamanya, lalu menjadikan
// proyek baru sebagai proyek aktif. Roster awal kosong: karyawan
// ditambahkan per proyek, tidak dibawa dari proyek lain.
func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	var created state.Project
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		project := state.Project{
			ID:            uuid.New().String(),
			Name:          strings.ToUpper(req.Name),
			ClientName:    req.ClientName,
			ClientAddress: req.ClientAddress,
		}
		st.Projects = append(st.Projects, project)

		p, err := period.Create(st, project.ID, req.StartDate, req.EndDate)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidInput, "Rentang tanggal tidak valid", http.StatusBadRequest)
		}
		st.PettyCash[project.ID] = []state.PettyCashTransaction{}
		st.Materials[p.ID] = []state.MaterialItem{}
		st.CurrentProjectID = project.ID

		project.CurrentPeriodID = p.ID
		created = project
		return nil
	})
	if err != nil {
		return ProjectResponse{}, err
	}

	s.logger.Info("project created",
		zap.String("project_id", created.ID),
		zap.String("name", created.Name))
	return mapToResponse(created, created.ID), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	st := s.store.Snapshot()
	out := make([]ProjectResponse, len(st.Projects))
	for i, p := range st.Projects {
		out[i] = mapToResponse(p, st.CurrentProjectID)
	}
	return out, nil
}

// Delete menghapus proyek dan karyawannya dari roster. Periode, material,
// absensi, dan kas kecil yang menunjuk proyek ini dibiarkan yatim di
// storage. Delete tidak cascade, angka historis dipertahankan.
func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		idx := -1
		for i, p := range st.Projects {
			if p.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errProjectNotFound
		}
		st.Projects = append(st.Projects[:idx], st.Projects[idx+1:]...)

		kept := st.Employees[:0]
		for _, e := range st.Employees {
			if e.ProjectID != id {
				kept = append(kept, e)
			}
		}
		st.Employees = kept

		if st.CurrentProjectID == id {
			st.CurrentProjectID = ""
			if len(st.Projects) > 0 {
				st.CurrentProjectID = st.Projects[0].ID
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("project deleted, orphaned records kept", zap.String("project_id", id))
	return nil
}

func (s *service) SetCurrent(ctx context.Context, id string) error {
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		if _, ok := st.ProjectByID(id); !ok {
			return errProjectNotFound
		}
		st.CurrentProjectID = id
		return nil
	})
	return err
}

func (s *service) GetCompanyProfile(ctx context.Context) (CompanyProfileResponse, error) {
	st := s.store.Snapshot()
	return CompanyProfileResponse(st.CompanyProfile), nil
}

func (s *service) UpdateCompanyProfile(ctx context.Context, req CompanyProfileRequest) (CompanyProfileResponse, error) {
	_, err := s.store.Apply(ctx, func(st *state.AppState) error {
		st.CompanyProfile = state.CompanyProfile(req)
		return nil
	})
	if err != nil {
		return CompanyProfileResponse{}, err
	}
	return CompanyProfileResponse(req), nil
}
