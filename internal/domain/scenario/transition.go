package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/service"
)

// TransitionKind enumerates the state-mutation rules a choice can carry.
// Transitions are data, not stored closures: a (kind, params) pair dispatched
// here, so the whole scenario graph stays enumerable and serializable.
type TransitionKind string

const (
	// TransitionNone leaves the loan untouched.
	TransitionNone TransitionKind = "NONE"
	// TransitionRateDelta shifts the annual rate by Amount percentage points.
	TransitionRateDelta TransitionKind = "RATE_DELTA"
	// TransitionAddPrincipal rolls Amount onto the remaining balance.
	TransitionAddPrincipal TransitionKind = "ADD_PRINCIPAL"
	// TransitionReducePrincipal pays Amount off the balance, floored at zero.
	TransitionReducePrincipal TransitionKind = "REDUCE_PRINCIPAL"
	// TransitionExtendTerm adds Months to the remaining term.
	TransitionExtendTerm TransitionKind = "EXTEND_TERM"
	// TransitionMissPayment lets a month pass unpaid: the skipped payment plus
	// a late fee of Amount joins the balance and the clock advances.
	TransitionMissPayment TransitionKind = "MISS_PAYMENT"
	// TransitionSettle clears the agreement in full.
	TransitionSettle TransitionKind = "SETTLE"
	// TransitionRollNegativeEquity starts a fresh standard agreement of Months
	// with the shortfall Amount carried into the new balance.
	TransitionRollNegativeEquity TransitionKind = "ROLL_NEGATIVE_EQUITY"
)

// Transition is one tagged state-mutation rule. Amount and Months are
// interpreted per kind.
type Transition struct {
	Kind   TransitionKind  `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Months int             `json:"months"`
}

// Apply runs the rule against a loan state and returns the replacement state.
// Every path ends in Engine.Recalculate, so derived fields are never observed
// out of sync with the fields that produce them.
func (t Transition) Apply(engine *service.Engine, state model.LoanState) model.LoanState {
	next := state

	switch t.Kind {
	case TransitionRateDelta:
		next.AnnualRate = state.AnnualRate.Add(t.Amount.Div(decimal.NewFromInt(100)))
		if next.AnnualRate.IsNegative() {
			next.AnnualRate = decimal.Zero
		}

	case TransitionAddPrincipal:
		next.Principal = state.Principal.Add(t.Amount)

	case TransitionReducePrincipal:
		next.Principal = state.Principal.Sub(t.Amount)
		if next.Principal.IsNegative() {
			next.Principal = decimal.Zero
		}

	case TransitionExtendTerm:
		next.TermMonthsRemaining = state.TermMonthsRemaining + t.Months

	case TransitionMissPayment:
		next.Principal = state.Principal.Add(state.MonthlyPayment).Add(t.Amount)
		next.MonthsElapsed = state.MonthsElapsed + 1
		if next.TermMonthsRemaining > 0 {
			next.TermMonthsRemaining = state.TermMonthsRemaining - 1
		}

	case TransitionSettle:
		next.Principal = decimal.Zero
		next.BalloonAmount = decimal.Zero
		next.TermMonthsRemaining = 0

	case TransitionRollNegativeEquity:
		next.Principal = state.Principal.Add(t.Amount)
		next.BalloonAmount = decimal.Zero
		next.TermMonthsRemaining = t.Months

	case TransitionNone:
		// recalculate only
	}

	return engine.Recalculate(next)
}
