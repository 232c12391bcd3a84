package dto

type AccountBalancesResponseDTO struct {
	Assets      float64 `json:"assets" example:"1200.5"`
	Liabilities float64 `json:"liabilities" example:"200"`
	Equity      float64 `json:"equity" example:"1000"`
	Income      float64 `json:"income" example:"0.5"`
	Expenses    float64 `json:"expenses" example:"0"`
}

type ReconcileReportDTO struct {
	TenantID         string  `json:"tenant_id"`
	AssetsTotal      float64 `json:"assets_total"`
	LiabilitiesTotal float64 `json:"liabilities_total"`
	EquityTotal      float64 `json:"equity_total"`
	RevenueTotal     float64 `json:"revenue_total"`
	ExpensesTotal    float64 `json:"expenses_total"`
	JournalBalance   float64 `json:"journal_balance"`
	EquationBalance  float64 `json:"equation_balance"`
	Balanced         bool    `json:"balanced"`
}
