package state

// Snapshot normalisasi: semua relasi antar entitas lewat id, tidak ada
// embedding objek, supaya seluruh state bisa di-serialize sebagai satu
// dokumen JSON.

type CompanyProfile struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Director string `json:"director"`
	City     string `json:"city"`
}

type Project struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ClientName      string `json:"clientName"`
	ClientAddress   string `json:"clientAddress"`
	CurrentPeriodID string `json:"currentPeriodId"`
}

type Period struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Name      string `json:"name"`
}

type Employee struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	DailyRate    int64  `json:"dailyRate"`
	OvertimeRate int64  `json:"overtimeRate"`
}

type DailyAttendance struct {
	Date          string  `json:"date"`
	IsPresent     bool    `json:"isPresent"`
	OvertimeHours float64 `json:"overtimeHours"`
}

// AttendanceRecord memegang peta hari per karyawan untuk satu periode.
// Peta boleh sparse; skeleton generator selalu menghasilkan peta padat.
type AttendanceRecord struct {
	EmployeeID string                     `json:"employeeId"`
	Days       map[string]DailyAttendance `json:"days"`
}

type MaterialItem struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	ItemName     string  `json:"itemName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    int64   `json:"unitPrice"`
	TotalPrice   int64   `json:"totalPrice"`
	Notes        string  `json:"notes,omitempty"`
	ReceiptImage string  `json:"receiptImage,omitempty"`
}

const (
	PettyCashIn  = "in"
	PettyCashOut = "out"
)

type PettyCashTransaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
}

type AppState struct {
	CompanyProfile   CompanyProfile                    `json:"companyProfile"`
	Projects         []Project                         `json:"projects"`
	Periods          []Period                          `json:"periods"`
	Employees        []Employee                        `json:"employees"`
	Attendance       map[string][]AttendanceRecord     `json:"attendance"` // keyed by period id
	Materials        map[string][]MaterialItem         `json:"materials"`  // keyed by period id (legacy: project id)
	PettyCash        map[string][]PettyCashTransaction `json:"pettyCash"`  // keyed by project id
	CurrentProjectID string                            `json:"currentProjectId"`
}

func NewAppState() AppState {
	return AppState{
		Attendance: map[string][]AttendanceRecord{},
		Materials:  map[string][]MaterialItem{},
		PettyCash:  map[string][]PettyCashTransaction{},
	}
}

// Clone membuat salinan dalam sehingga transisi state tidak pernah
// memodifikasi snapshot yang sudah dibagikan ke pembaca.
func (s AppState) Clone() AppState {
	out := s
	out.Projects = append([]Project(nil), s.Projects...)
	out.Periods = append([]Period(nil), s.Periods...)
	out.Employees = append([]Employee(nil), s.Employees...)

	out.Attendance = make(map[string][]AttendanceRecord, len(s.Attendance))
	for periodID, records := range s.Attendance {
		out.Attendance[periodID] = CloneRecords(records)
	}

	out.Materials = make(map[string][]MaterialItem, len(s.Materials))
	for key, items := range s.Materials {
		out.Materials[key] = append([]MaterialItem(nil), items...)
	}

	out.PettyCash = make(map[string][]PettyCashTransaction, len(s.PettyCash))
	for projectID, txs := range s.PettyCash {
		out.PettyCash[projectID] = append([]PettyCashTransaction(nil), txs...)
	}
	return out
}

func CloneRecords(records []AttendanceRecord) []AttendanceRecord {
	out := make([]AttendanceRecord, len(records))
	for i, rec := range records {
		days := make(map[string]DailyAttendance, len(rec.Days))
		for k, v := range rec.Days {
			days[k] = v
		}
		out[i] = AttendanceRecord{EmployeeID: rec.EmployeeID, Days: days}
	}
	return out
}

// Lookup helpers. Lookup yang tidak ketemu tidak pernah menjadi error,
// pemanggil menerima zero value dan flag ok.

func (s AppState) ProjectByID(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func (s AppState) PeriodByID(id string) (Period, bool) {
	for _, p := range s.Periods {
		if p.ID == id {
			return p, true
		}
	}
	return Period{}, false
}

func (s AppState) EmployeeByID(id string) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

func (s AppState) PeriodsForProject(projectID string) []Period {
	var out []Period
	for _, p := range s.Periods {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out
}

func (s AppState) EmployeesForProject(projectID string) []Employee {
	var out []Employee
	for _, e := range s.Employees {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}
