package scenario

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

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

// baseState is €20,000 at 6.9% over 60 months, freshly recalculated.
func baseState(t *testing.T) model.LoanState {
	t.Helper()
	engine := service.NewEngine()
	return engine.Recalculate(model.LoanState{
		FinanceType:         valueobject.FinanceTypeStandard,
		Principal:           dec("20000"),
		AnnualRate:          dec("0.069"),
		TermMonthsRemaining: 60,
	})
}

func TestTransition_RateDelta(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	next := Transition{Kind: TransitionRateDelta, Amount: dec("1")}.Apply(engine, state)

	assert.True(t, dec("0.079").Equal(next.AnnualRate), "got %s", next.AnnualRate)
	assert.Equal(t, 60, next.TermMonthsRemaining)
	assert.True(t, next.MonthlyPayment.GreaterThan(state.MonthlyPayment),
		"a rate rise must raise the payment: %s -> %s", state.MonthlyPayment, next.MonthlyPayment)
}

func TestTransition_RateDeltaFlooredAtZero(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	next := Transition{Kind: TransitionRateDelta, Amount: dec("-10")}.Apply(engine, state)
	assert.True(t, next.AnnualRate.IsZero())
}

func TestTransition_AddPrincipal(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	next := Transition{Kind: TransitionAddPrincipal, Amount: dec("800")}.Apply(engine, state)

	assert.True(t, dec("20800").Equal(next.Principal))
	assert.True(t, next.MonthlyPayment.GreaterThan(state.MonthlyPayment))
	assert.True(t, next.TotalInterestRemaining.GreaterThan(state.TotalInterestRemaining))
}

func TestTransition_ReducePrincipal(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	t.Run("partial", func(t *testing.T) {
		next := Transition{Kind: TransitionReducePrincipal, Amount: dec("2000")}.Apply(engine, state)
		assert.True(t, dec("18000").Equal(next.Principal))
		assert.True(t, next.MonthlyPayment.LessThan(state.MonthlyPayment))
	})

	t.Run("overpayment beyond the balance floors at zero", func(t *testing.T) {
		next := Transition{Kind: TransitionReducePrincipal, Amount: dec("99999")}.Apply(engine, state)
		assert.True(t, next.Principal.IsZero())
		assert.True(t, next.MonthlyPayment.IsZero())
	})
}

func TestTransition_ExtendTerm(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	next := Transition{Kind: TransitionExtendTerm, Months: 12}.Apply(engine, state)

	assert.Equal(t, 72, next.TermMonthsRemaining)
	assert.True(t, next.MonthlyPayment.LessThan(state.MonthlyPayment),
		"more months must lower the payment")
	assert.True(t, next.TotalInterestRemaining.GreaterThan(state.TotalInterestRemaining),
		"more months must cost more interest")
}

func TestTransition_MissPayment(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	next := Transition{Kind: TransitionMissPayment, Amount: dec("25")}.Apply(engine, state)

	wantPrincipal := state.Principal.Add(state.MonthlyPayment).Add(dec("25"))
	assert.True(t, wantPrincipal.Equal(next.Principal), "got %s", next.Principal)
	assert.Equal(t, 59, next.TermMonthsRemaining)
	assert.Equal(t, 1, next.MonthsElapsed)
}

func TestTransition_Settle(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)
	state.BalloonAmount = dec("9000")
	state.FinanceType = valueobject.FinanceTypeBalloonPCP
	state = engine.Recalculate(state)

	next := Transition{Kind: TransitionSettle}.Apply(engine, state)

	assert.True(t, next.IsSettled())
	assert.Equal(t, 0, next.TermMonthsRemaining)
	assert.True(t, next.MonthlyPayment.IsZero())
	assert.True(t, next.TotalInterestRemaining.IsZero())
}

func TestTransition_RollNegativeEquity(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)
	state.BalloonAmount = dec("9000")
	state.FinanceType = valueobject.FinanceTypeBalloonPCP
	state = engine.Recalculate(state)

	next := Transition{Kind: TransitionRollNegativeEquity, Amount: dec("1500"), Months: 36}.Apply(engine, state)

	assert.True(t, dec("21500").Equal(next.Principal))
	assert.True(t, next.BalloonAmount.IsZero(), "the new agreement starts without a balloon")
	assert.Equal(t, 36, next.TermMonthsRemaining)
}

func TestTransition_NoneOnlyRecalculates(t *testing.T) {
	engine := service.NewEngine()
	state := baseState(t)

	next := Transition{Kind: TransitionNone}.Apply(engine, state)
	assert.True(t, state.Equal(next))
}
