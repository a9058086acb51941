package model

import (
	"github.com/shopspring/decimal"

	"github.com/openfinedu/carfin/internal/domain/valueobject"
)

// LoanState is the working state of one scenario run. It is a value type:
// transitions replace it wholesale rather than mutating it in place, and it is
// owned exclusively by the one active run.
//
// Principal is a simplified aggregate, not a true amortized balance: after
// every step the remainder is treated as freshly re-amortized over the months
// left. MonthlyPayment and TotalInterestRemaining are derived and must be kept
// consistent by passing the state through Engine.Recalculate after any
// payment-affecting change.
type LoanState struct {
	FinanceType            valueobject.FinanceType
	Principal              decimal.Decimal
	BalloonAmount          decimal.Decimal
	AnnualRate             decimal.Decimal // decimal fraction, e.g. 0.069
	TermMonthsRemaining    int
	MonthsElapsed          int
	MonthlyPayment         decimal.Decimal
	TotalInterestRemaining decimal.Decimal
}

// Equal reports whether two states are identical field for field. Decimal
// comparison is by value, not by internal representation.
func (s LoanState) Equal(other LoanState) bool {
	return s.FinanceType.Equal(other.FinanceType) &&
		s.Principal.Equal(other.Principal) &&
		s.BalloonAmount.Equal(other.BalloonAmount) &&
		s.AnnualRate.Equal(other.AnnualRate) &&
		s.TermMonthsRemaining == other.TermMonthsRemaining &&
		s.MonthsElapsed == other.MonthsElapsed &&
		s.MonthlyPayment.Equal(other.MonthlyPayment) &&
		s.TotalInterestRemaining.Equal(other.TotalInterestRemaining)
}

// IsSettled reports whether nothing is left to repay.
func (s LoanState) IsSettled() bool {
	return s.Principal.IsZero() && s.BalloonAmount.IsZero()
}
