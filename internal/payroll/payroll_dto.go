package payroll

type RowResponse struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Position      string  `json:"position"`
	DailyRate     int64   `json:"daily_rate"`
	OvertimeRate  int64   `json:"overtime_rate"`
	WorkDays      int     `json:"work_days"`
	OvertimeHours float64 `json:"overtime_hours"`
	BasicPay      int64   `json:"basic_pay"`
	OvertimePay   int64   `json:"overtime_pay"`
	TotalPay      int64   `json:"total_pay"`
}

type PeriodPayrollResponse struct {
	PeriodID   string        `json:"period_id"`
	PeriodName string        `json:"period_name"`
	Rows       []RowResponse `json:"rows"`
	Total      int64         `json:"total"`
}

type ProjectPayrollResponse struct {
	ProjectID string `json:"project_id"`
	PeriodID  string `json:"period_id"`
	Total     int64  `json:"total"`
}
