package backup

import (
	"context"
	"encoding/json"
	"net/http"

	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"go.uber.org/zap"
)

var errInvalidDocument = apperror.New(apperror.CodeInvalidInput,
	"Dokumen backup tidak valid", http.StatusBadRequest)

// Validate memeriksa struktur minimal sebuah dokumen state utuh: objek
// companyProfile harus ada dan projects harus berupa array. Dokumen yang
// gagal ditolak seluruhnya; state berjalan tidak berubah.
func Validate(doc []byte) (state.AppState, error) {
	var probe struct {
		CompanyProfile map[string]json.RawMessage `json:"companyProfile"`
		Projects       []json.RawMessage          `json:"projects"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return state.AppState{}, apperror.Wrap(err, apperror.CodeInvalidInput,
			"Dokumen backup tidak valid", http.StatusBadRequest)
	}
	if probe.CompanyProfile == nil || probe.Projects == nil {
		return state.AppState{}, errInvalidDocument
	}

	st := state.NewAppState()
	if err := json.Unmarshal(doc, &st); err != nil {
		return state.AppState{}, apperror.Wrap(err, apperror.CodeInvalidInput,
			"Dokumen backup tidak valid", http.StatusBadRequest)
	}
	if st.Attendance == nil {
		st.Attendance = map[string][]state.AttendanceRecord{}
	}
	if st.Materials == nil {
		st.Materials = map[string][]state.MaterialItem{}
	}
	if st.PettyCash == nil {
		st.PettyCash = map[string][]state.PettyCashTransaction{}
	}
	return st, nil
}

//go:generate mockgen -source=backup_service.go -destination=mock/backup_service_mock.go -package=mock
type Service interface {
	Export(ctx context.Context) ([]byte, error)
	Restore(ctx context.Context, doc []byte) error
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("backup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) Export(ctx context.Context) ([]byte, error) {
	return json.MarshalIndent(s.store.Snapshot(), "", "  ")
}

func (s *service) Restore(ctx context.Context, doc []byte) error {
	st, err := Validate(doc)
	if err != nil {
		return err
	}
	if err := s.store.Replace(ctx, st); err != nil {
		return err
	}
	s.logger.Info("state restored from backup",
		zap.Int("projects", len(st.Projects)),
		zap.Int("employees", len(st.Employees)))
	return nil
}
