package domain

type MortgageInput struct {
	LoanValue     float64 `json:"loan_value"`
	InterestRate  float64 `json:"interest_rate"`
	TermYears     int     `json:"term_years"`
	DownPayment   float64 `json:"down_payment"`
	PropertyTaxes float64 `json:"property_taxes"`
	HomeInsurance float64 `json:"home_insurance"`
	HOAFees       float64 `json:"hoa_fees"`
	PMI           float64 `json:"pmi"`
}

type AdjustTermInput struct {
	MortgageInput
	MaxMonthlyPayment float64 `json:"max_monthly_payment"`
}

type PaymentRecord struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	Escrow           float64 `json:"escrow"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type ScheduleResult struct {
	TermMonths          int             `json:"term_months"`
	MonthlyPayment      float64         `json:"monthly_payment"`
	MonthlyEscrow       float64         `json:"monthly_escrow"`
	TotalMonthlyPayment float64         `json:"total_monthly_payment"`
	TotalInterest       float64         `json:"total_interest"`
	Schedule            []PaymentRecord `json:"schedule"`
}
