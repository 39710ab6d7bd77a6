package store

import (
	"context"
	"sync"

	"go-proyek/internal/state"

	"go.uber.org/zap"
)

// SnapshotRepository adalah kolaborator persistensi lokal: seluruh state
// dibulatkan jadi satu dokumen JSON per perubahan, plus satu string id
// dokumen remote.
//
//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type SnapshotRepository interface {
	LoadState(ctx context.Context) (state.AppState, bool, error)
	SaveState(ctx context.Context, st state.AppState) error
	LoadCloudID(ctx context.Context) (string, error)
	SaveCloudID(ctx context.Context, id string) error
	DeleteCloudID(ctx context.Context) error
}

// Listener dipanggil setelah sebuah transisi commit, dengan snapshot yang
// baru saja di-commit (bukan yang basi).
type Listener func(state.AppState)

// Store memegang snapshot immutable dan menjalankan transisi
// (state, action) -> state' secara serial. Satu penulis logis: mutex
// menggantikan event loop milik UI.
type Store struct {
	mu        sync.RWMutex
	current   state.AppState
	repo      SnapshotRepository
	logger    *zap.Logger
	listeners []Listener
}

func New(repo SnapshotRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.L()
	}
	return &Store{
		current: state.NewAppState(),
		repo:    repo,
		logger:  logger.Named("store"),
	}
}

// Load mengambil snapshot tersimpan, atau memulai dari state kosong bila
// belum ada. Mengembalikan apakah snapshot tersimpan ditemukan, supaya
// pemanggil bisa membedakan boot pertama dari state yang sengaja kosong.
func (s *Store) Load(ctx context.Context) (bool, error) {
	st, found, err := s.repo.LoadState(ctx)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if found {
		s.current = st
	} else {
		s.current = state.NewAppState()
	}
	return found, nil
}

// Snapshot mengembalikan salinan dalam dari state saat ini.
func (s *Store) Snapshot() state.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Apply menjalankan satu transisi atomik: clone snapshot, jalankan fungsi
// transisi pada clone, persist, commit, lalu beri tahu subscriber.
// Transisi yang mengembalikan error membatalkan seluruh aksi.
func (s *Store) Apply(ctx context.Context, transition func(*state.AppState) error) (state.AppState, error) {
	s.mu.Lock()
	next := s.current.Clone()
	if err := transition(&next); err != nil {
		s.mu.Unlock()
		return state.AppState{}, err
	}
	if err := s.repo.SaveState(ctx, next); err != nil {
		// Persistensi lokal gagal bukan alasan membatalkan edit pengguna;
		// salinan in-memory tetap jadi source of truth.
		s.logger.Warn("save snapshot failed", zap.Error(err))
	}
	s.current = next
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	committed := next.Clone()
	for _, fn := range listeners {
		fn(committed)
	}
	return committed, nil
}

// Replace mengganti seluruh snapshot (restore backup, load dari remote).
func (s *Store) Replace(ctx context.Context, st state.AppState) error {
	_, err := s.Apply(ctx, func(cur *state.AppState) error {
		*cur = st.Clone()
		return nil
	})
	return err
}

// Subscribe mendaftarkan listener perubahan state. Tidak ada unsubscribe:
// subscriber hidup selama proses.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Repo mengekspos repository untuk kolaborator yang juga menyimpan
// dokumen tambahan (id dokumen remote).
func (s *Store) Repo() SnapshotRepository {
	return s.repo
}
