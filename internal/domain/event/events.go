package event

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Quote events
// ---------------------------------------------------------------------------

// QuoteCalculated is raised when a finance quote is computed successfully.
type QuoteCalculated struct {
	BaseEvent
	FinanceType    string          `json:"finance_type"`
	AmountFinanced decimal.Decimal `json:"amount_financed"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TermMonths     int             `json:"term_months"`
	CacheHit       bool            `json:"cache_hit"`
}

// NewQuoteCalculated creates a QuoteCalculated event keyed by the canonical
// quote key.
func NewQuoteCalculated(quoteKey, financeType string, amountFinanced, monthlyPayment decimal.Decimal, termMonths int, cacheHit bool) QuoteCalculated {
	return QuoteCalculated{
		BaseEvent:      NewBaseEvent("carfin.quote.calculated", quoteKey, "Quote"),
		FinanceType:    financeType,
		AmountFinanced: amountFinanced,
		MonthlyPayment: monthlyPayment,
		TermMonths:     termMonths,
		CacheHit:       cacheHit,
	}
}

// ---------------------------------------------------------------------------
// Simulation events
// ---------------------------------------------------------------------------

// SimulationStarted is raised when a scenario run begins.
type SimulationStarted struct {
	BaseEvent
	FinanceType    string          `json:"finance_type"`
	AmountFinanced decimal.Decimal `json:"amount_financed"`
	TermMonths     int             `json:"term_months"`
}

// NewSimulationStarted creates a SimulationStarted event.
func NewSimulationStarted(simulationID, financeType string, amountFinanced decimal.Decimal, termMonths int) SimulationStarted {
	return SimulationStarted{
		BaseEvent:      NewBaseEvent("carfin.simulation.started", simulationID, "Simulation"),
		FinanceType:    financeType,
		AmountFinanced: amountFinanced,
		TermMonths:     termMonths,
	}
}

// ChoiceApplied is raised for every accepted scenario choice.
type ChoiceApplied struct {
	BaseEvent
	Node           int             `json:"node"`
	ChoiceID       string          `json:"choice_id"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	Principal      decimal.Decimal `json:"principal"`
}

// NewChoiceApplied creates a ChoiceApplied event.
func NewChoiceApplied(simulationID string, node int, choiceID string, monthlyPayment, principal decimal.Decimal) ChoiceApplied {
	return ChoiceApplied{
		BaseEvent:      NewBaseEvent("carfin.simulation.choice_applied", simulationID, "Simulation"),
		Node:           node,
		ChoiceID:       choiceID,
		MonthlyPayment: monthlyPayment,
		Principal:      principal,
	}
}

// SimulationCompleted is raised when a run reaches a terminal choice.
type SimulationCompleted struct {
	BaseEvent
	Decisions int `json:"decisions"`
}

// NewSimulationCompleted creates a SimulationCompleted event.
func NewSimulationCompleted(simulationID string, decisions int) SimulationCompleted {
	return SimulationCompleted{
		BaseEvent: NewBaseEvent("carfin.simulation.completed", simulationID, "Simulation"),
		Decisions: decisions,
	}
}
