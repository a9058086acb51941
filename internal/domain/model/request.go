package model

import (
	"github.com/shopspring/decimal"

	"github.com/openfinedu/carfin/internal/domain/valueobject"
)

// LoanRequest carries the user-entered parameters of a single finance quote.
// It is immutable once submitted and lives only for one calculation.
type LoanRequest struct {
	CashPrice     decimal.Decimal
	Deposit       decimal.Decimal
	Fees          decimal.Decimal
	APRPercent    decimal.Decimal
	TermMonths    int
	FinanceType   valueobject.FinanceType
	BalloonAmount decimal.Decimal
}

// AmountFinanced is the principal actually borrowed: cash price less deposit
// plus any financed fees, floored at zero.
func (r LoanRequest) AmountFinanced() decimal.Decimal {
	financed := r.CashPrice.Sub(r.Deposit).Add(r.Fees)
	if financed.IsNegative() {
		return decimal.Zero
	}
	return financed
}
