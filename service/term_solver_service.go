package service

import (
	"errors"

	"mortgage-agent/domain"
)

type TermSolverService struct {
	amortization *AmortizationService
}

func NewTermSolverService(amortization *AmortizationService) *TermSolverService {
	return &TermSolverService{amortization: amortization}
}

// AdjustTerm finds the shortest term, in months, whose total monthly payment
// (fixed P&I plus escrow) stays at or under MaxMonthlyPayment, then amortizes
// the mortgage over that term. The caller's TermYears acts as the upper bound.
func (s *TermSolverService) AdjustTerm(
	input domain.AdjustTermInput,
) (domain.ScheduleResult, error) {

	// Validaciones
	if input.MaxMonthlyPayment <= 0 {
		return domain.ScheduleResult{}, errors.New("pago mensual máximo inválido")
	}
	if err := validateMortgageInput(input.MortgageInput); err != nil {
		return domain.ScheduleResult{}, err
	}

	principal := input.LoanValue - input.DownPayment
	escrow := monthlyEscrow(input.MortgageInput)
	maxMonths := input.TermYears * 12

	// El pago mensual decrece al alargar el plazo, así que el primer plazo
	// que cumple es también el mínimo.
	termMonths := 0
	for term := MinTermMonths; term <= maxMonths; term++ {
		cuota, err := s.amortization.MonthlyPayment(principal, input.InterestRate, term)
		if err != nil {
			return domain.ScheduleResult{}, err
		}
		if cuota+escrow <= input.MaxMonthlyPayment {
			termMonths = term
			break
		}
	}

	if termMonths == 0 {
		return domain.ScheduleResult{}, ErrPagoMaximoInalcanzable
	}

	return s.amortization.scheduleForTerm(input.MortgageInput, termMonths)
}
