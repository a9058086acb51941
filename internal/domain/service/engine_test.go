package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/service"
	"github.com/openfinedu/carfin/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func standardRequest() model.LoanRequest {
	// €25,000 car, €5,000 deposit, 6.9% APR over 5 years.
	return model.LoanRequest{
		CashPrice:   dec("25000"),
		Deposit:     dec("5000"),
		Fees:        dec("0"),
		APRPercent:  dec("6.9"),
		TermMonths:  60,
		FinanceType: valueobject.FinanceTypeStandard,
	}
}

func TestCalculate_StandardLoan(t *testing.T) {
	engine := service.NewEngine()

	result, err := engine.Calculate(standardRequest())
	require.NoError(t, err)

	assert.True(t, dec("20000.00").Equal(result.AmountFinanced), "amount financed, got %s", result.AmountFinanced)
	assert.True(t, dec("395.08").Equal(result.MonthlyPayment), "monthly payment, got %s", result.MonthlyPayment)
	assert.True(t, dec("23704.80").Equal(result.TotalMonthlyPaid), "total monthly paid, got %s", result.TotalMonthlyPaid)
	assert.True(t, dec("23704.80").Equal(result.TotalAmountRepayable), "total repayable, got %s", result.TotalAmountRepayable)

	// The deposit shrinks the financed amount below the cash price, so the
	// cost of credit against the price is negative here.
	assert.True(t, dec("-1295.20").Equal(result.TotalCostOfCredit), "cost of credit, got %s", result.TotalCostOfCredit)
	assert.True(t, result.TotalCostOfCredit.IsNegative())
}

func TestCalculate_ZeroRateIsEvenSplit(t *testing.T) {
	engine := service.NewEngine()

	req := model.LoanRequest{
		CashPrice:   dec("12000"),
		Deposit:     dec("0"),
		Fees:        dec("0"),
		APRPercent:  dec("0"),
		TermMonths:  12,
		FinanceType: valueobject.FinanceTypeStandard,
	}
	result, err := engine.Calculate(req)
	require.NoError(t, err)

	assert.True(t, dec("1000.00").Equal(result.MonthlyPayment), "got %s", result.MonthlyPayment)
	assert.True(t, dec("12000.00").Equal(result.TotalMonthlyPaid))
	assert.True(t, dec("0.00").Equal(result.TotalCostOfCredit))
}

func TestCalculate_BalloonPCP(t *testing.T) {
	engine := service.NewEngine()

	req := model.LoanRequest{
		CashPrice:     dec("30000"),
		Deposit:       dec("3000"),
		Fees:          dec("0"),
		APRPercent:    dec("5.9"),
		TermMonths:    36,
		FinanceType:   valueobject.FinanceTypeBalloonPCP,
		BalloonAmount: dec("12000"),
	}
	result, err := engine.Calculate(req)
	require.NoError(t, err)

	assert.True(t, dec("27000.00").Equal(result.AmountFinanced))
	assert.True(t, dec("514.65").Equal(result.MonthlyPayment), "got %s", result.MonthlyPayment)

	// Balloon counted exactly once in the repayable total.
	assert.True(t, dec("18527.40").Equal(result.TotalMonthlyPaid))
	assert.True(t, dec("30527.40").Equal(result.TotalAmountRepayable), "got %s", result.TotalAmountRepayable)
	assert.True(t, dec("527.40").Equal(result.TotalCostOfCredit))
}

func TestCalculate_ZeroRatePCP(t *testing.T) {
	engine := service.NewEngine()

	req := model.LoanRequest{
		CashPrice:     dec("24000"),
		Deposit:       dec("0"),
		Fees:          dec("0"),
		APRPercent:    dec("0"),
		TermMonths:    24,
		FinanceType:   valueobject.FinanceTypeBalloonPCP,
		BalloonAmount: dec("12000"),
	}
	result, err := engine.Calculate(req)
	require.NoError(t, err)

	// (P - FV) / n
	assert.True(t, dec("500.00").Equal(result.MonthlyPayment), "got %s", result.MonthlyPayment)
}

func TestCalculate_NegativeFinancedAmountFlooredAtZero(t *testing.T) {
	engine := service.NewEngine()

	req := standardRequest()
	req.Deposit = dec("26000") // deposit above price; the engine does not forbid it

	result, err := engine.Calculate(req)
	require.NoError(t, err)
	assert.True(t, result.AmountFinanced.IsZero())
}

func TestCalculate_Validation(t *testing.T) {
	engine := service.NewEngine()

	tests := []struct {
		name   string
		mutate func(*model.LoanRequest)
	}{
		{"zero cash price", func(r *model.LoanRequest) { r.CashPrice = dec("0") }},
		{"negative cash price", func(r *model.LoanRequest) { r.CashPrice = dec("-1") }},
		{"negative deposit", func(r *model.LoanRequest) { r.Deposit = dec("-0.01") }},
		{"negative fees", func(r *model.LoanRequest) { r.Fees = dec("-10") }},
		{"zero term", func(r *model.LoanRequest) { r.TermMonths = 0 }},
		{"negative APR", func(r *model.LoanRequest) { r.APRPercent = dec("-6.9") }},
		{"negative balloon", func(r *model.LoanRequest) {
			r.FinanceType = valueobject.FinanceTypeBalloonPCP
			r.BalloonAmount = dec("-1")
		}},
		{"balloon at cash price", func(r *model.LoanRequest) {
			r.FinanceType = valueobject.FinanceTypeBalloonPCP
			r.BalloonAmount = dec("25000")
		}},
		{"balloon above cash price", func(r *model.LoanRequest) {
			r.FinanceType = valueobject.FinanceTypeBalloonPCP
			r.BalloonAmount = dec("26000")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := standardRequest()
			tt.mutate(&req)

			_, err := engine.Calculate(req)
			require.Error(t, err)

			var validation *model.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestCalculate_BalloonIgnoredForStandardLoans(t *testing.T) {
	engine := service.NewEngine()

	req := standardRequest()
	req.BalloonAmount = dec("50000") // above price, but standard finance never reads it

	result, err := engine.Calculate(req)
	require.NoError(t, err)
	assert.True(t, dec("395.08").Equal(result.MonthlyPayment))
	assert.True(t, dec("23704.80").Equal(result.TotalAmountRepayable))
}

func TestCalculate_Schedule(t *testing.T) {
	engine := service.NewEngine()

	t.Run("long terms are capped at twelve rows", func(t *testing.T) {
		result, err := engine.Calculate(standardRequest())
		require.NoError(t, err)
		require.Len(t, result.Schedule, 12)

		first := result.Schedule[0]
		assert.Equal(t, 1, first.Period)
		assert.True(t, dec("395.08").Equal(first.Payment))
		assert.True(t, dec("115.00").Equal(first.Interest), "got %s", first.Interest)
		assert.True(t, dec("280.08").Equal(first.Principal), "got %s", first.Principal)
		assert.True(t, dec("19719.92").Equal(first.BalanceAfter), "got %s", first.BalanceAfter)

		// Periods are 1-based and contiguous; the balance only falls.
		prev := result.AmountFinanced
		for i, row := range result.Schedule {
			assert.Equal(t, i+1, row.Period)
			assert.True(t, row.BalanceAfter.LessThan(prev), "period %d balance did not fall", row.Period)
			prev = row.BalanceAfter
		}
	})

	t.Run("short terms get exactly termMonths rows", func(t *testing.T) {
		req := standardRequest()
		req.TermMonths = 6

		result, err := engine.Calculate(req)
		require.NoError(t, err)
		assert.Len(t, result.Schedule, 6)
	})

	t.Run("reported balance is never negative", func(t *testing.T) {
		// A short zero-rate loan pays down to exactly zero; rounding in the
		// final period must not surface as a negative balance.
		req := model.LoanRequest{
			CashPrice:   dec("1000"),
			Deposit:     dec("0"),
			Fees:        dec("0"),
			APRPercent:  dec("13.75"),
			TermMonths:  3,
			FinanceType: valueobject.FinanceTypeStandard,
		}
		result, err := engine.Calculate(req)
		require.NoError(t, err)
		require.Len(t, result.Schedule, 3)
		for _, row := range result.Schedule {
			assert.False(t, row.BalanceAfter.IsNegative(), "period %d balance %s", row.Period, row.BalanceAfter)
		}
	})
}

func TestCalculate_Deterministic(t *testing.T) {
	engine := service.NewEngine()

	first, err := engine.Calculate(standardRequest())
	require.NoError(t, err)
	second, err := engine.Calculate(standardRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreateInitialState(t *testing.T) {
	engine := service.NewEngine()

	req := standardRequest()
	result, err := engine.Calculate(req)
	require.NoError(t, err)

	state := engine.CreateInitialState(req, result)

	assert.True(t, result.AmountFinanced.Equal(state.Principal))
	assert.True(t, dec("0.069").Equal(state.AnnualRate), "got %s", state.AnnualRate)
	assert.Equal(t, 60, state.TermMonthsRemaining)
	assert.Equal(t, 0, state.MonthsElapsed)
	assert.True(t, state.BalloonAmount.IsZero())
	assert.True(t, result.MonthlyPayment.Equal(state.MonthlyPayment))
	assert.True(t, dec("3704.80").Equal(state.TotalInterestRemaining), "got %s", state.TotalInterestRemaining)
}

func TestCreateInitialState_PCPKeepsBalloon(t *testing.T) {
	engine := service.NewEngine()

	req := model.LoanRequest{
		CashPrice:     dec("30000"),
		Deposit:       dec("3000"),
		Fees:          dec("0"),
		APRPercent:    dec("5.9"),
		TermMonths:    36,
		FinanceType:   valueobject.FinanceTypeBalloonPCP,
		BalloonAmount: dec("12000"),
	}
	result, err := engine.Calculate(req)
	require.NoError(t, err)

	state := engine.CreateInitialState(req, result)
	assert.True(t, dec("12000").Equal(state.BalloonAmount))
	assert.True(t, result.MonthlyPayment.Equal(state.MonthlyPayment))
}

func TestRecalculate_Idempotent(t *testing.T) {
	engine := service.NewEngine()

	req := standardRequest()
	result, err := engine.Calculate(req)
	require.NoError(t, err)

	state := engine.CreateInitialState(req, result)
	once := engine.Recalculate(state)
	twice := engine.Recalculate(once)

	assert.True(t, once.Equal(twice))
	assert.True(t, once.MonthlyPayment.Equal(twice.MonthlyPayment))
}

func TestRecalculate_SettledState(t *testing.T) {
	engine := service.NewEngine()

	state := model.LoanState{
		FinanceType:         valueobject.FinanceTypeStandard,
		Principal:           decimal.Zero,
		AnnualRate:          dec("0.069"),
		TermMonthsRemaining: 0,
	}
	recalced := engine.Recalculate(state)

	assert.True(t, recalced.MonthlyPayment.IsZero())
	assert.True(t, recalced.TotalInterestRemaining.IsZero())
}
