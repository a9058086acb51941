package model

import "github.com/shopspring/decimal"

// ScheduleRow is one period of the amortization schedule. All amounts are
// rounded to 2 decimal places, half up at the cent.
type ScheduleRow struct {
	Period       int
	Payment      decimal.Decimal
	Interest     decimal.Decimal
	Principal    decimal.Decimal
	BalanceAfter decimal.Decimal
}

// CalculationResult is the immutable output of one quote calculation.
type CalculationResult struct {
	AmountFinanced       decimal.Decimal
	MonthlyPayment       decimal.Decimal
	TotalMonthlyPaid     decimal.Decimal
	TotalAmountRepayable decimal.Decimal
	TotalCostOfCredit    decimal.Decimal
	Schedule             []ScheduleRow
}
