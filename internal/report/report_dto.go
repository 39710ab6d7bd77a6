package report

type PeriodMaterialTotal struct {
	PeriodID   string `json:"period_id"`
	PeriodName string `json:"period_name"`
	Total      int64  `json:"total"`
}

type ProjectSummaryResponse struct {
	ProjectID        string                `json:"project_id"`
	ProjectName      string                `json:"project_name"`
	CurrentPeriodID  string                `json:"current_period_id"`
	PayrollTotal     int64                 `json:"payroll_total"`
	PayrollTerbilang string                `json:"payroll_terbilang"`
	MaterialTotals   []PeriodMaterialTotal `json:"material_totals"`
	PettyCashIn      int64                 `json:"petty_cash_in"`
	PettyCashOut     int64                 `json:"petty_cash_out"`
	PettyCashBalance int64                 `json:"petty_cash_balance"`
}
