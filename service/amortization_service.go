package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type AmortizationService struct {
	repo  repository.ScheduleRepository
	cache repository.CacheRepository
}

// NewAmortizationService creates a new AmortizationService with the given
// history repository and cache.
func NewAmortizationService(repo repository.ScheduleRepository,
	cache repository.CacheRepository,
) *AmortizationService {
	return &AmortizationService{repo: repo, cache: cache}
}

// MonthlyPayment returns the fixed principal-and-interest payment for a loan
// amortized over termMonths using the standard annuity formula.
func (s *AmortizationService) MonthlyPayment(
	principal float64,
	annualRate float64,
	termMonths int,
) (float64, error) {

	// Validar entrada
	if principal <= 0 {
		return 0, errors.New("principal inválido")
	}
	if principal > MaxLoanAmount {
		return 0, fmt.Errorf("principal excede el máximo permitido de $%.2f", MaxLoanAmount)
	}
	if annualRate < 0 {
		return 0, errors.New("tasa inválida")
	}
	if annualRate > MaxInterestRate {
		return 0, fmt.Errorf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	if termMonths < MinTermMonths {
		return 0, errors.New("plazo inválido")
	}
	if termMonths > MaxTermMonths {
		return 0, fmt.Errorf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}

	if annualRate == 0 {
		return principal / float64(termMonths), nil
	}

	tasaMensual := (annualRate / 100) / 12
	factor := math.Pow(1+tasaMensual, float64(termMonths))

	return principal * tasaMensual * factor / (factor - 1), nil
}

// CalculatePayment calculates the summary figures for a principal financed
// over a fixed term.
func (s *AmortizationService) CalculatePayment(
	input domain.PaymentInput,
) (domain.PaymentResult, error) {

	cuota, err := s.MonthlyPayment(input.Principal, input.InterestRate, input.TermMonths)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	total := cuota * float64(input.TermMonths)

	return domain.PaymentResult{
		MonthlyPayment: roundTo2Decimals(cuota),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Principal),
	}, nil
}

// GenerateSchedule builds the full month-by-month amortization schedule for
// the mortgage, including the escrow portion of each payment.
func (s *AmortizationService) GenerateSchedule(
	input domain.MortgageInput,
) (domain.ScheduleResult, error) {

	if err := validateMortgageInput(input); err != nil {
		return domain.ScheduleResult{}, err
	}

	return s.scheduleForTerm(input, input.TermYears*12)
}

// scheduleForTerm amortizes the mortgage over an explicit number of months.
// Callers must have validated input first.
func (s *AmortizationService) scheduleForTerm(
	input domain.MortgageInput,
	termMonths int,
) (domain.ScheduleResult, error) {

	// El cronograma es determinista: entradas iguales, resultado igual.
	key := scheduleCacheKey(input, termMonths)
	if key != "" {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.ScheduleResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	principal := input.LoanValue - input.DownPayment
	escrow := monthlyEscrow(input)

	fixedPI, err := s.MonthlyPayment(principal, input.InterestRate, termMonths)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	tasaMensual := (input.InterestRate / 100) / 12
	balance := principal
	totalInterest := 0.0
	schedule := make([]domain.PaymentRecord, 0, termMonths)

	for month := 1; month <= termMonths; month++ {
		interest := balance * tasaMensual
		principalPaid := fixedPI - interest
		payment := fixedPI + escrow

		// Último mes: el principal se ajusta al saldo restante para no
		// dejar residuo negativo.
		if month == termMonths || principalPaid > balance {
			principalPaid = balance
			payment = principalPaid + interest + escrow
		}

		balance -= principalPaid
		if balance < 0 {
			balance = 0
		}
		totalInterest += interest

		schedule = append(schedule, domain.PaymentRecord{
			Month:            month,
			Payment:          payment,
			PrincipalPaid:    principalPaid,
			InterestPaid:     interest,
			Escrow:           escrow,
			RemainingBalance: balance,
		})
	}

	result := domain.ScheduleResult{
		TermMonths:          termMonths,
		MonthlyPayment:      roundTo2Decimals(fixedPI),
		MonthlyEscrow:       roundTo2Decimals(escrow),
		TotalMonthlyPayment: roundTo2Decimals(fixedPI + escrow),
		TotalInterest:       roundTo2Decimals(totalInterest),
		Schedule:            schedule,
	}

	if key != "" {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(raw)); err != nil {
				log.Printf("Warning: failed to cache schedule: %v", err)
			}
		}
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save schedule: %v", err)
	}

	return result, nil
}

func monthlyEscrow(input domain.MortgageInput) float64 {
	return (input.PropertyTaxes + input.HomeInsurance + input.HOAFees + input.PMI) / 12
}

func validateMortgageInput(input domain.MortgageInput) error {
	if input.LoanValue <= 0 {
		return errors.New("valor del préstamo inválido")
	}
	if input.LoanValue > MaxLoanAmount {
		return fmt.Errorf("valor del préstamo excede el máximo permitido de $%.2f", MaxLoanAmount)
	}
	if input.DownPayment < 0 {
		return errors.New("cuota inicial inválida")
	}
	if input.LoanValue-input.DownPayment <= 0 {
		return errors.New("la cuota inicial debe ser menor al valor del préstamo")
	}
	if input.InterestRate < 0 {
		return errors.New("tasa inválida")
	}
	if input.InterestRate > MaxInterestRate {
		return fmt.Errorf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	if input.TermYears <= 0 {
		return errors.New("plazo inválido")
	}
	if input.TermYears*12 > MaxTermMonths {
		return fmt.Errorf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}
	if input.PropertyTaxes < 0 || input.HomeInsurance < 0 ||
		input.HOAFees < 0 || input.PMI < 0 {
		return errors.New("los costos de escrow no pueden ser negativos")
	}
	return nil
}

func scheduleCacheKey(input domain.MortgageInput, termMonths int) string {
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("schedule:%d:%s", termMonths, raw)
}
