package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_RejectsGarbage(t *testing.T) {
	_, err := Validate([]byte("bukan json"))
	assert.Error(t, err)
}

func TestValidate_RejectsMissingSections(t *testing.T) {
	_, err := Validate([]byte(`{"projects": []}`))
	assert.Error(t, err)

	_, err = Validate([]byte(`{"companyProfile": {}}`))
	assert.Error(t, err)
}

func TestValidate_AcceptsMinimalDocument(t *testing.T) {
	st, err := Validate([]byte(`{"companyProfile": {"name": "CV MAJU"}, "projects": []}`))
	assert.NoError(t, err)
	assert.Equal(t, "CV MAJU", st.CompanyProfile.Name)
	// peta yang tidak ada di dokumen diisi kosong, bukan nil
	assert.NotNil(t, st.Attendance)
	assert.NotNil(t, st.Materials)
	assert.NotNil(t, st.PettyCash)
}

func TestValidate_ParsesFullDocument(t *testing.T) {
	doc := []byte(`{
		"companyProfile": {"name": "CV MAJU", "director": "BUDI"},
		"projects": [{"id": "pro-1", "name": "GUDANG A", "currentPeriodId": "per-1"}],
		"periods": [{"id": "per-1", "projectId": "pro-1", "startDate": "2026-02-15", "endDate": "2026-02-21"}],
		"employees": [{"id": "emp-1", "projectId": "pro-1", "dailyRate": 100000}],
		"attendance": {"per-1": [{"employeeId": "emp-1", "days": {}}]},
		"pettyCash": {"pro-1": [{"id": "tx-1", "type": "in", "amount": 50000}]}
	}`)

	st, err := Validate(doc)
	assert.NoError(t, err)
	assert.Len(t, st.Projects, 1)
	assert.Equal(t, "per-1", st.Projects[0].CurrentPeriodID)
	assert.Equal(t, int64(100000), st.Employees[0].DailyRate)
	assert.Len(t, st.Attendance["per-1"], 1)
	assert.Equal(t, int64(50000), st.PettyCash["pro-1"][0].Amount)
	assert.NotNil(t, st.Materials)
}
