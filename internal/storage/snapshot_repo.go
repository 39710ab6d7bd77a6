package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-proyek/internal/state"
	"go-proyek/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	keyAppState = "app_state"
	keyCloudID  = "cloud_id"
)

// SnapshotRow menyimpan satu dokumen per key. Seluruh state aplikasi
// adalah satu baris jsonb, sejalan dengan model "satu dokumen JSON per
// perubahan" di sisi remote.
type SnapshotRow struct {
	Key       string    `gorm:"column:key;type:varchar(64);primaryKey"`
	Doc       string    `gorm:"column:doc;type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SnapshotRow) TableName() string {
	return "snapshots"
}

type snapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) store.SnapshotRepository {
	return &snapshotRepo{db: db}
}

// Migrate membuat tabel snapshots bila belum ada.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&SnapshotRow{})
}

func (r *snapshotRepo) LoadState(ctx context.Context) (state.AppState, bool, error) {
	var row SnapshotRow
	err := r.db.WithContext(ctx).First(&row, "key = ?", keyAppState).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return state.AppState{}, false, nil
	}
	if err != nil {
		return state.AppState{}, false, err
	}

	st := state.NewAppState()
	if err := json.Unmarshal([]byte(row.Doc), &st); err != nil {
		return state.AppState{}, false, err
	}
	ensureMaps(&st)
	return st, true, nil
}

func (r *snapshotRepo) SaveState(ctx context.Context, st state.AppState) error {
	doc, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.upsert(ctx, keyAppState, string(doc))
}

func (r *snapshotRepo) LoadCloudID(ctx context.Context) (string, error) {
	var row SnapshotRow
	err := r.db.WithContext(ctx).First(&row, "key = ?", keyCloudID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var id string
	if err := json.Unmarshal([]byte(row.Doc), &id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *snapshotRepo) SaveCloudID(ctx context.Context, id string) error {
	doc, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return r.upsert(ctx, keyCloudID, string(doc))
}

func (r *snapshotRepo) DeleteCloudID(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&SnapshotRow{}, "key = ?", keyCloudID).Error
}

func (r *snapshotRepo) upsert(ctx context.Context, key, doc string) error {
	row := SnapshotRow{Key: key, Doc: doc, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
		}).
		Create(&row).Error
}

// Dokumen lama bisa saja disimpan tanpa salah satu peta.
func ensureMaps(st *state.AppState) {
	if st.Attendance == nil {
		st.Attendance = map[string][]state.AttendanceRecord{}
	}
	if st.Materials == nil {
		st.Materials = map[string][]state.MaterialItem{}
	}
	if st.PettyCash == nil {
		st.PettyCash = map[string][]state.PettyCashTransaction{}
	}
}
