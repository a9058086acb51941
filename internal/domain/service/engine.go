package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/openfinedu/carfin/internal/domain/model"
)

// scheduleCap bounds the amortization breakdown shown to the user. The engine
// simulates min(scheduleCap, termMonths) periods.
const scheduleCap = 12

// Engine computes repayment figures for a finance quote and keeps scenario
// loan states consistent. It is stateless: every method is a pure function of
// its input, and identical input produces identical output.
type Engine struct{}

// NewEngine creates a calculation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate validates a loan request and computes the periodic payment,
// summary totals and a bounded amortization schedule.
//
// The payment uses the standard annuity formula
//
//	PMT = P * r * (1+r)^n / ((1+r)^n - 1)
//
// and for balloon PCP agreements the annuity-with-future-value variant
//
//	PMT = (P - FV/(1+r)^n) * r / (1 - (1+r)^-n)
//
// where r is the nominal monthly rate aprPercent/100/12. A zero rate falls
// back to the degenerate even split.
func (e *Engine) Calculate(req model.LoanRequest) (model.CalculationResult, error) {
	if err := validate(req); err != nil {
		return model.CalculationResult{}, err
	}

	financed := req.AmountFinanced()
	monthlyRate := monthlyRateOf(req.APRPercent)

	balloon := decimal.Zero
	if req.FinanceType.IsBalloonPCP() {
		balloon = req.BalloonAmount
	}

	payment := annuityPayment(financed, balloon, monthlyRate, req.TermMonths)

	totalMonthly := payment.Mul(decimal.NewFromInt(int64(req.TermMonths))).Round(2)

	// Total repayable is the sum of the financed repayments: the monthly
	// stream, any upfront fees and the balloon. The deposit is not money
	// repaid, so cost of credit against the cash price can be negative when
	// a large deposit shrinks the financed amount below the price.
	totalRepayable := totalMonthly.Add(req.Fees).Add(balloon).Round(2)
	costOfCredit := totalRepayable.Sub(req.CashPrice).Round(2)

	return model.CalculationResult{
		AmountFinanced:       financed.Round(2),
		MonthlyPayment:       payment,
		TotalMonthlyPaid:     totalMonthly,
		TotalAmountRepayable: totalRepayable,
		TotalCostOfCredit:    costOfCredit,
		Schedule:             buildSchedule(financed, payment, monthlyRate, req.TermMonths),
	}, nil
}

// CreateInitialState derives the starting scenario state from a request and
// its calculation result.
func (e *Engine) CreateInitialState(req model.LoanRequest, result model.CalculationResult) model.LoanState {
	balloon := decimal.Zero
	if req.FinanceType.IsBalloonPCP() {
		balloon = req.BalloonAmount
	}

	state := model.LoanState{
		FinanceType:         req.FinanceType,
		Principal:           result.AmountFinanced,
		BalloonAmount:       balloon,
		AnnualRate:          req.APRPercent.Div(decimal.NewFromInt(100)),
		TermMonthsRemaining: req.TermMonths,
		MonthsElapsed:       0,
	}
	return e.Recalculate(state)
}

// Recalculate recomputes the derived fields of a loan state from its
// payment-affecting fields, using the same payment formulas as Calculate.
// It is the single source of truth for state consistency: every transition
// passes its result through here, and applying it twice without mutating
// other fields yields an identical state.
func (e *Engine) Recalculate(state model.LoanState) model.LoanState {
	next := state

	if state.TermMonthsRemaining <= 0 || state.Principal.LessThanOrEqual(decimal.Zero) {
		// Settled or expired: nothing left to pay monthly. Any balloon still
		// outstanding is due as-is and carries no further interest here.
		next.MonthlyPayment = decimal.Zero
		next.TotalInterestRemaining = decimal.Zero
		return next
	}

	monthlyRate := state.AnnualRate.Div(decimal.NewFromInt(12))
	payment := annuityPayment(state.Principal, state.BalloonAmount, monthlyRate, state.TermMonthsRemaining)

	totalDue := payment.Mul(decimal.NewFromInt(int64(state.TermMonthsRemaining))).Add(state.BalloonAmount)

	next.MonthlyPayment = payment
	next.TotalInterestRemaining = totalDue.Sub(state.Principal).Round(2)
	return next
}

func validate(req model.LoanRequest) error {
	switch {
	case req.CashPrice.LessThanOrEqual(decimal.Zero):
		return model.NewValidationError("cash price must be greater than zero")
	case req.Deposit.IsNegative():
		return model.NewValidationError("deposit cannot be negative")
	case req.Fees.IsNegative():
		return model.NewValidationError("fees cannot be negative")
	case req.TermMonths <= 0:
		return model.NewValidationError("term must be at least one month")
	case req.APRPercent.IsNegative():
		return model.NewValidationError("APR cannot be negative")
	}

	if req.FinanceType.IsBalloonPCP() {
		if req.BalloonAmount.IsNegative() {
			return model.NewValidationError("balloon amount cannot be negative")
		}
		if req.BalloonAmount.GreaterThanOrEqual(req.CashPrice) {
			return model.NewValidationError("balloon amount must be less than the cash price")
		}
	}
	return nil
}

func monthlyRateOf(aprPercent decimal.Decimal) decimal.Decimal {
	return aprPercent.Div(decimal.NewFromInt(1200))
}

// annuityPayment solves the fixed monthly payment, rounded to the cent. The
// compounding factor is computed in float64, as precise as the money involved
// requires, then the result moves back to decimal for monetary arithmetic.
func annuityPayment(principal, balloon, monthlyRate decimal.Decimal, termMonths int) decimal.Decimal {
	n := int64(termMonths)

	if monthlyRate.IsZero() {
		return principal.Sub(balloon).Div(decimal.NewFromInt(n)).Round(2)
	}

	r := monthlyRate.InexactFloat64()
	factor := math.Pow(1+r, float64(n))

	p := principal.InexactFloat64()
	fv := balloon.InexactFloat64()

	payment := (p - fv/factor) * r / (1 - 1/factor)
	return decimal.NewFromFloat(payment).Round(2)
}

// buildSchedule simulates the first min(12, termMonths) periods. The running
// balance is deliberately left unclamped and unrounded so rounding error is
// neither visibly accumulated nor silently corrected; only the reported
// per-row balance is clamped at zero.
func buildSchedule(financed, payment, monthlyRate decimal.Decimal, termMonths int) []model.ScheduleRow {
	periods := termMonths
	if periods > scheduleCap {
		periods = scheduleCap
	}

	rows := make([]model.ScheduleRow, 0, periods)
	balance := financed

	for period := 1; period <= periods; period++ {
		interest := balance.Mul(monthlyRate)
		principalPortion := payment.Sub(interest)
		balance = balance.Add(interest).Sub(payment)

		reported := balance
		if reported.IsNegative() {
			reported = decimal.Zero
		}

		rows = append(rows, model.ScheduleRow{
			Period:       period,
			Payment:      payment,
			Interest:     interest.Round(2),
			Principal:    principalPortion.Round(2),
			BalanceAfter: reported.Round(2),
		})
	}
	return rows
}
