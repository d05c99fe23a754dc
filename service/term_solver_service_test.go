package service

import (
	"errors"
	"testing"

	"mortgage-agent/domain"
)

func newTestSolver() *TermSolverService {
	amortization, _ := newTestService()
	return NewTermSolverService(amortization)
}

func referenceAdjustInput(maxPayment float64) domain.AdjustTermInput {
	return domain.AdjustTermInput{
		MortgageInput:     referenceMortgage(),
		MaxMonthlyPayment: maxPayment,
	}
}

func TestAdjustTerm_FindsMinimalTerm(t *testing.T) {

	solver := newTestSolver()

	result, err := solver.AdjustTerm(referenceAdjustInput(2500))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 150000 al 9.5%: la cuota a 144 meses es 1749.56, a 143 es 1756.14;
	// con 750 de escrow solo 144 queda por debajo de 2500.
	if result.TermMonths != 144 {
		t.Errorf("expected 144 months, got %d", result.TermMonths)
	}

	if len(result.Schedule) != result.TermMonths {
		t.Errorf("expected %d records, got %d", result.TermMonths, len(result.Schedule))
	}

	if result.TotalMonthlyPayment > 2500 {
		t.Errorf("total payment %.2f exceeds the cap", result.TotalMonthlyPayment)
	}

	// Minimalidad: un mes menos debe exceder el límite.
	amortization, _ := newTestService()
	cuota, err := amortization.MonthlyPayment(150000, 9.5, result.TermMonths-1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cuota+750 <= 2500 {
		t.Errorf("term is not minimal: %d months also satisfies the cap",
			result.TermMonths-1)
	}

	last := result.Schedule[len(result.Schedule)-1]
	if !almostEqual(last.RemainingBalance, 0, BalanceTolerance) {
		t.Errorf("expected final balance 0, got %.10f", last.RemainingBalance)
	}
}

func TestAdjustTerm_KeepsFullTermWhenCapIsLoose(t *testing.T) {

	solver := newTestSolver()

	// El pago total a 360 meses es 2011.28 y a 359 es 2011.90; un límite
	// entre ambos debe conservar el plazo completo.
	result, err := solver.AdjustTerm(referenceAdjustInput(2011.50))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TermMonths != 360 {
		t.Errorf("expected 360 months, got %d", result.TermMonths)
	}
}

func TestAdjustTerm_Unsatisfiable(t *testing.T) {

	solver := newTestSolver()

	_, err := solver.AdjustTerm(referenceAdjustInput(800))

	if !errors.Is(err, ErrPagoMaximoInalcanzable) {
		t.Errorf("expected ErrPagoMaximoInalcanzable, got %v", err)
	}
}

func TestAdjustTerm_TermShrinksAsCapGrows(t *testing.T) {

	solver := newTestSolver()

	caps := []float64{2200, 2500, 3000, 4000}
	prevTerm := MaxTermMonths + 1

	for _, maxPayment := range caps {
		result, err := solver.AdjustTerm(referenceAdjustInput(maxPayment))
		if err != nil {
			t.Fatalf("unexpected error for cap %.2f: %v", maxPayment, err)
		}
		if result.TermMonths > prevTerm {
			t.Errorf("term grew from %d to %d when cap rose to %.2f",
				prevTerm, result.TermMonths, maxPayment)
		}
		prevTerm = result.TermMonths
	}
}

func TestAdjustTerm_ZeroInterest(t *testing.T) {

	solver := newTestSolver()

	input := domain.AdjustTermInput{
		MortgageInput: domain.MortgageInput{
			LoanValue: 120000,
			TermYears: 30,
		},
		MaxMonthlyPayment: 1000,
	}

	result, err := solver.AdjustTerm(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sin interés la cuota es principal/n: 120000/120 = 1000 justo.
	if result.TermMonths != 120 {
		t.Errorf("expected 120 months, got %d", result.TermMonths)
	}

	for _, record := range result.Schedule {
		if record.InterestPaid != 0 {
			t.Errorf("expected zero interest at month %d", record.Month)
		}
	}
}

func TestAdjustTerm_InvalidMaxPayment(t *testing.T) {

	solver := newTestSolver()

	if _, err := solver.AdjustTerm(referenceAdjustInput(0)); err == nil {
		t.Errorf("expected error for non-positive max payment")
	}

	if _, err := solver.AdjustTerm(referenceAdjustInput(-100)); err == nil {
		t.Errorf("expected error for negative max payment")
	}
}

func TestAdjustTerm_InvalidMortgage(t *testing.T) {

	solver := newTestSolver()

	input := referenceAdjustInput(2500)
	input.DownPayment = input.LoanValue + 1

	if _, err := solver.AdjustTerm(input); err == nil {
		t.Errorf("expected error when down payment exceeds the loan value")
	}
}
