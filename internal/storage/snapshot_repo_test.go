package storage

import (
	"context"
	"testing"
	"time"

	"go-proyek/internal/state"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func stateWithOneProject() state.AppState {
	st := state.NewAppState()
	st.Projects = []state.Project{{ID: "pro-1", Name: "GUDANG A"}}
	return st
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, DriverName: "postgres"}),
		&gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return gdb, mock
}

func TestLoadState_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSnapshotRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "snapshots"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "doc", "updated_at"}))

	_, found, err := repo.LoadState(context.Background())
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadState_ParsesDocumentAndFixesMaps(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSnapshotRepository(gdb)

	doc := `{"companyProfile": {"name": "CV MAJU"}, "projects": [{"id": "pro-1", "currentPeriodId": "per-1"}]}`
	mock.ExpectQuery(`SELECT (.+) FROM "snapshots"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "doc", "updated_at"}).
			AddRow("app_state", doc, time.Now()))

	st, found, err := repo.LoadState(context.Background())
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "CV MAJU", st.CompanyProfile.Name)
	assert.Equal(t, "per-1", st.Projects[0].CurrentPeriodID)
	// dokumen lama tanpa peta tetap menghasilkan peta kosong
	assert.NotNil(t, st.Attendance)
	assert.NotNil(t, st.Materials)
	assert.NotNil(t, st.PettyCash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveState_Upserts(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSnapshotRepository(gdb)

	mock.ExpectExec(`INSERT INTO "snapshots" (.+) ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveState(context.Background(), stateWithOneProject())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloudIDRoundTrip(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSnapshotRepository(gdb)

	mock.ExpectExec(`INSERT INTO "snapshots" (.+) ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SaveCloudID(context.Background(), "doc-1"))

	mock.ExpectQuery(`SELECT (.+) FROM "snapshots"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "doc", "updated_at"}).
			AddRow("cloud_id", `"doc-1"`, time.Now()))
	id, err := repo.LoadCloudID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", id)

	mock.ExpectQuery(`SELECT (.+) FROM "snapshots"`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "doc", "updated_at"}))
	id, err = repo.LoadCloudID(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCloudID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSnapshotRepository(gdb)

	mock.ExpectExec(`DELETE FROM "snapshots"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteCloudID(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
