package material

import (
	"go-proyek/internal/calendar"
	"go-proyek/internal/state"
)

// findPeriodForDate mengembalikan periode PERTAMA dalam urutan deretan
// yang jendelanya memuat tanggal item. Periode tumpang tindih bukan
// konfigurasi yang didukung; hasilnya deterministik mengikuti urutan input.
func findPeriodForDate(dateStr string, periods []state.Period) (state.Period, bool) {
	for _, p := range periods {
		if calendar.InPeriod(dateStr, p) {
			return p, true
		}
	}
	return state.Period{}, false
}

// Normalize menghitung ulang totalPrice = quantity × unitPrice. Nilai dari
// input tidak pernah dipercaya.
func Normalize(item state.MaterialItem) state.MaterialItem {
	item.TotalPrice = int64(item.Quantity * float64(item.UnitPrice))
	return item
}

// Reassign mempartisi item berdasarkan tanggal ke periode yang memuatnya.
// Item tanpa periode yang cocok jatuh ke fallbackPeriodID (periode aktif
// proyek). Setiap item input muncul tepat satu kali di salah satu bucket.
func Reassign(items []state.MaterialItem, periods []state.Period, fallbackPeriodID string) map[string][]state.MaterialItem {
	out := map[string][]state.MaterialItem{}
	for _, item := range items {
		targetID := fallbackPeriodID
		if p, ok := findPeriodForDate(item.Date, periods); ok {
			targetID = p.ID
		}
		out[targetID] = append(out[targetID], item)
	}
	return out
}

// ApplyBulkUpdate mengganti daftar material periode aktif sebuah proyek
// dengan buffer edit, sambil merutekan ulang item yang tanggalnya jatuh di
// periode lain. Asimetri di sini disengaja: bucket periode aktif ditimpa
// (buffer edit otoritatif untuk dirinya sendiri), bucket periode lain
// di-append ke isi yang sudah tersimpan supaya tidak menimpa apa yang
// tidak disentuh pengguna.
func ApplyBulkUpdate(st *state.AppState, project state.Project, items []state.MaterialItem) {
	periods := st.PeriodsForProject(project.ID)
	currentPeriodID := project.CurrentPeriodID

	updates := map[string][]state.MaterialItem{
		currentPeriodID: {},
	}
	for _, raw := range items {
		item := Normalize(raw)
		targetID := currentPeriodID
		if p, ok := findPeriodForDate(item.Date, periods); ok {
			targetID = p.ID
		}
		if targetID == currentPeriodID {
			updates[currentPeriodID] = append(updates[currentPeriodID], item)
			continue
		}
		if _, seen := updates[targetID]; !seen {
			updates[targetID] = append([]state.MaterialItem(nil), st.Materials[targetID]...)
		}
		updates[targetID] = append(updates[targetID], item)
	}

	for periodID, bucket := range updates {
		st.Materials[periodID] = bucket
	}
}

// MigrateLegacy memindahkan bucket material lama yang masih di-key per
// project id ke bucket per period id, di-merge ke isi yang sudah ada.
// Key lama dihapus setelahnya, jadi migrasi berjalan paling banyak sekali
// per key dan idempoten bila terpanggil ulang.
func MigrateLegacy(st *state.AppState, project state.Project) bool {
	legacy := st.Materials[project.ID]
	if len(legacy) == 0 {
		return false
	}

	periods := st.PeriodsForProject(project.ID)
	grouped := Reassign(legacy, periods, project.CurrentPeriodID)
	for periodID, items := range grouped {
		st.Materials[periodID] = append(st.Materials[periodID], items...)
	}
	delete(st.Materials, project.ID)
	return true
}

// MigrateLegacyAll menjalankan migrasi untuk semua proyek; dipanggil
// sekali saat snapshot dimuat.
func MigrateLegacyAll(st *state.AppState) bool {
	changed := false
	for _, p := range st.Projects {
		if MigrateLegacy(st, p) {
			changed = true
		}
	}
	return changed
}
