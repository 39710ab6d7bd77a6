package sync

import (
	"context"
	"encoding/json"
	"net/http"
	stdsync "sync"
	"time"

	"go-proyek/internal/backup"
	"go-proyek/internal/events"
	"go-proyek/internal/messaging/kafka/producer"
	"go-proyek/internal/shared/apperror"
	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSaved   Status = "saved"
	StatusError   Status = "error"
)

var (
	errRemoteUnavailable = apperror.New(apperror.CodeServiceUnavailable,
		"Gagal menghubungi penyimpanan remote", http.StatusBadGateway)
	errRemoteDocInvalid = apperror.New(apperror.CodeInvalidInput,
		"Dokumen remote tidak valid", http.StatusBadGateway)
)

// Syncer menyalin snapshot ke remote store dengan model at-most-once,
// latest-wins: setiap perubahan state me-restart debounce; hanya tulisan
// terakhir yang terbang. Remote gagal hanya mengubah status, state lokal
// tidak pernah di-rollback. Save ditahan selama load awal masih jalan
// supaya load tidak langsung tertimpa save basi.
type Syncer struct {
	store     *store.Store
	remote    RemoteStore
	debouncer *Debouncer
	publisher producer.Publisher
	logger    *zap.Logger
	sf        singleflight.Group

	mu      stdsync.Mutex
	cloudID string
	status  Status
	loading bool
}

func NewSyncer(st *store.Store, remote RemoteStore, delay time.Duration, pub producer.Publisher, logger ...*zap.Logger) *Syncer {
	l := zap.L().Named("sync")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sync")
	}
	if pub == nil {
		pub = producer.Noop{}
	}
	return &Syncer{
		store:     st,
		remote:    remote,
		debouncer: NewDebouncer(delay),
		publisher: pub,
		logger:    l,
		status:    StatusIdle,
	}
}

// Start memuat id dokumen tersimpan dan mendaftar ke perubahan state.
func (s *Syncer) Start(ctx context.Context) error {
	id, err := s.store.Repo().LoadCloudID(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cloudID = id
	s.mu.Unlock()

	s.store.Subscribe(s.onStateChange)
	return nil
}

// onStateChange tidak memakai snapshot yang diantar listener: urutan
// pengiriman listener tidak dijamin sama dengan urutan commit, jadi
// snapshot dan id dibaca ulang saat debounce meletus. Dengan begitu save
// yang terbang selalu membawa state terbaru.
func (s *Syncer) onStateChange(state.AppState) {
	s.mu.Lock()
	if s.cloudID == "" || s.loading {
		s.mu.Unlock()
		return
	}
	s.status = StatusSyncing
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		s.mu.Lock()
		id := s.cloudID
		loading := s.loading
		s.mu.Unlock()
		if id == "" || loading {
			return
		}
		s.save(id, s.store.Snapshot())
	})
}

func (s *Syncer) save(id string, snap state.AppState) {
	doc, err := json.Marshal(snap)
	if err != nil {
		s.setStatus(StatusError)
		s.logger.Error("marshal snapshot failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	status := StatusSaved
	if err := s.remote.Replace(ctx, id, doc); err != nil {
		status = StatusError
		s.logger.Warn("remote save failed", zap.String("document_id", id), zap.Error(err))
	}
	s.setStatus(status)
	s.publisher.Publish(ctx, events.StateSyncedTopic, id, "state.synced", events.StateSyncedEvent{
		EventType:  "state.synced",
		DocumentID: id,
		Status:     string(status),
		OccurredAt: time.Now().UTC(),
	})
}

// Load menarik dokumen remote dan mengganti seluruh state lokal.
// Singleflight menyatukan load paralel untuk id yang sama; flag loading
// menahan save keluar selama proses.
func (s *Syncer) Load(ctx context.Context, id string) error {
	_, err, _ := s.sf.Do(id, func() (any, error) {
		s.mu.Lock()
		s.loading = true
		s.status = StatusSyncing
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
		}()

		doc, err := s.remote.Read(ctx, id)
		if err != nil {
			s.setStatus(StatusError)
			return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable,
				"Gagal menghubungi penyimpanan remote", http.StatusBadGateway)
		}

		st, err := backup.Validate(doc)
		if err != nil {
			s.setStatus(StatusError)
			return nil, errRemoteDocInvalid
		}

		if err := s.store.Replace(ctx, st); err != nil {
			s.setStatus(StatusError)
			return nil, err
		}
		if err := s.store.Repo().SaveCloudID(ctx, id); err != nil {
			s.logger.Warn("persist cloud id failed", zap.Error(err))
		}

		s.mu.Lock()
		s.cloudID = id
		s.status = StatusSaved
		s.mu.Unlock()
		s.logger.Info("state loaded from remote", zap.String("document_id", id))
		return nil, nil
	})
	return err
}

// CreateDocument membuat dokumen remote baru dari snapshot saat ini dan
// mengaktifkan auto-sync ke sana.
func (s *Syncer) CreateDocument(ctx context.Context) (string, error) {
	doc, err := json.Marshal(s.store.Snapshot())
	if err != nil {
		return "", err
	}

	id, err := s.remote.Create(ctx, doc)
	if err != nil {
		s.setStatus(StatusError)
		return "", errRemoteUnavailable
	}
	if err := s.store.Repo().SaveCloudID(ctx, id); err != nil {
		s.logger.Warn("persist cloud id failed", zap.Error(err))
	}

	s.mu.Lock()
	s.cloudID = id
	s.status = StatusSaved
	s.mu.Unlock()
	s.logger.Info("remote document created", zap.String("document_id", id))
	return id, nil
}

// SetCloudID memasang id dokumen yang sudah ada (hasil share antar
// perangkat) tanpa langsung menarik isinya.
func (s *Syncer) SetCloudID(ctx context.Context, id string) error {
	if err := s.store.Repo().SaveCloudID(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.cloudID = id
	s.mu.Unlock()
	return nil
}

func (s *Syncer) ClearCloudID(ctx context.Context) error {
	if err := s.store.Repo().DeleteCloudID(ctx); err != nil {
		return err
	}
	s.debouncer.Stop()
	s.mu.Lock()
	s.cloudID = ""
	s.status = StatusIdle
	s.mu.Unlock()
	return nil
}

func (s *Syncer) CloudID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloudID
}

func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Syncer) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}
