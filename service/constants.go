package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billón
	MaxInterestRate = 1000.0          // 1000% anual
	MaxTermMonths   = 600             // 50 años
	MinTermMonths   = 1

	BalanceTolerance = 1e-6 // saldo considerado cero
)
