package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openfinedu/carfin/internal/domain/model"
	"github.com/openfinedu/carfin/internal/domain/scenario"
	"github.com/openfinedu/carfin/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// QuoteRequest carries the user-entered parameters of a finance quote.
type QuoteRequest struct {
	CashPrice     decimal.Decimal `json:"cash_price"`
	Deposit       decimal.Decimal `json:"deposit"`
	Fees          decimal.Decimal `json:"fees"`
	APRPercent    decimal.Decimal `json:"apr_percent"`
	TermMonths    int             `json:"term_months"`
	FinanceType   string          `json:"finance_type"`
	BalloonAmount decimal.Decimal `json:"balloon_amount"`
}

// ToDomain converts the request into a domain LoanRequest.
func (r QuoteRequest) ToDomain() (model.LoanRequest, error) {
	ft, err := valueobject.NewFinanceType(r.FinanceType)
	if err != nil {
		return model.LoanRequest{}, model.NewValidationError(err.Error())
	}
	return model.LoanRequest{
		CashPrice:     r.CashPrice,
		Deposit:       r.Deposit,
		Fees:          r.Fees,
		APRPercent:    r.APRPercent,
		TermMonths:    r.TermMonths,
		FinanceType:   ft,
		BalloonAmount: r.BalloonAmount,
	}, nil
}

// CacheKey is a canonical representation of the request, used to key the
// quote cache. The engine is deterministic, so equal keys mean equal results.
func (r QuoteRequest) CacheKey() string {
	return fmt.Sprintf("quote:%s:%s:%s:%s:%d:%s:%s",
		r.CashPrice, r.Deposit, r.Fees, r.APRPercent, r.TermMonths, r.FinanceType, r.BalloonAmount)
}

// ApplyChoiceRequest names the choice taken at the simulation's current node.
type ApplyChoiceRequest struct {
	SimulationID string `json:"-"`
	ChoiceID     string `json:"choice_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleRowResponse is one amortization period.
type ScheduleRowResponse struct {
	Period       int             `json:"period"`
	Payment      decimal.Decimal `json:"payment"`
	Interest     decimal.Decimal `json:"interest"`
	Principal    decimal.Decimal `json:"principal"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// QuoteResponse is the external representation of a calculation result.
type QuoteResponse struct {
	AmountFinanced       decimal.Decimal       `json:"amount_financed"`
	MonthlyPayment       decimal.Decimal       `json:"monthly_payment"`
	TotalMonthlyPaid     decimal.Decimal       `json:"total_monthly_paid"`
	TotalAmountRepayable decimal.Decimal       `json:"total_amount_repayable"`
	TotalCostOfCredit    decimal.Decimal       `json:"total_cost_of_credit"`
	Schedule             []ScheduleRowResponse `json:"schedule"`
}

// LoanStateResponse is the external representation of a scenario loan state.
type LoanStateResponse struct {
	FinanceType            string          `json:"finance_type"`
	Principal              decimal.Decimal `json:"principal"`
	BalloonAmount          decimal.Decimal `json:"balloon_amount"`
	AnnualRate             decimal.Decimal `json:"annual_rate"`
	TermMonthsRemaining    int             `json:"term_months_remaining"`
	MonthsElapsed          int             `json:"months_elapsed"`
	MonthlyPayment         decimal.Decimal `json:"monthly_payment"`
	TotalInterestRemaining decimal.Decimal `json:"total_interest_remaining"`
}

// ChoiceResponse is one selectable option at a node. Transitions stay
// internal; the caller sees labels and, after the fact, explanations.
type ChoiceResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NodeResponse is one step of the scenario narrative.
type NodeResponse struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Choices     []ChoiceResponse `json:"choices"`
}

// DecisionResponse is the audit record of one accepted choice.
type DecisionResponse struct {
	Node        int               `json:"node"`
	ChoiceID    string            `json:"choice_id"`
	Label       string            `json:"label"`
	Explanation string            `json:"explanation"`
	StateAfter  LoanStateResponse `json:"state_after"`
}

// SimulationResponse is the external representation of a scenario run.
type SimulationResponse struct {
	ID        string             `json:"id"`
	State     LoanStateResponse  `json:"state"`
	Complete  bool               `json:"complete"`
	Node      *NodeResponse      `json:"node,omitempty"`
	Decisions []DecisionResponse `json:"decisions"`
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// FromResult maps a domain calculation result.
func FromResult(res model.CalculationResult) QuoteResponse {
	rows := make([]ScheduleRowResponse, 0, len(res.Schedule))
	for _, row := range res.Schedule {
		rows = append(rows, ScheduleRowResponse{
			Period:       row.Period,
			Payment:      row.Payment,
			Interest:     row.Interest,
			Principal:    row.Principal,
			BalanceAfter: row.BalanceAfter,
		})
	}
	return QuoteResponse{
		AmountFinanced:       res.AmountFinanced,
		MonthlyPayment:       res.MonthlyPayment,
		TotalMonthlyPaid:     res.TotalMonthlyPaid,
		TotalAmountRepayable: res.TotalAmountRepayable,
		TotalCostOfCredit:    res.TotalCostOfCredit,
		Schedule:             rows,
	}
}

// ToResult maps a cached quote back into the domain result.
func (q QuoteResponse) ToResult() model.CalculationResult {
	rows := make([]model.ScheduleRow, 0, len(q.Schedule))
	for _, row := range q.Schedule {
		rows = append(rows, model.ScheduleRow{
			Period:       row.Period,
			Payment:      row.Payment,
			Interest:     row.Interest,
			Principal:    row.Principal,
			BalanceAfter: row.BalanceAfter,
		})
	}
	return model.CalculationResult{
		AmountFinanced:       q.AmountFinanced,
		MonthlyPayment:       q.MonthlyPayment,
		TotalMonthlyPaid:     q.TotalMonthlyPaid,
		TotalAmountRepayable: q.TotalAmountRepayable,
		TotalCostOfCredit:    q.TotalCostOfCredit,
		Schedule:             rows,
	}
}

// FromState maps a domain loan state.
func FromState(s model.LoanState) LoanStateResponse {
	return LoanStateResponse{
		FinanceType:            s.FinanceType.String(),
		Principal:              s.Principal,
		BalloonAmount:          s.BalloonAmount,
		AnnualRate:             s.AnnualRate,
		TermMonthsRemaining:    s.TermMonthsRemaining,
		MonthsElapsed:          s.MonthsElapsed,
		MonthlyPayment:         s.MonthlyPayment,
		TotalInterestRemaining: s.TotalInterestRemaining,
	}
}

// FromNode maps a scenario node.
func FromNode(n scenario.Node) NodeResponse {
	choices := make([]ChoiceResponse, 0, len(n.Choices))
	for _, c := range n.Choices {
		choices = append(choices, ChoiceResponse{ID: c.ID, Label: c.Label})
	}
	return NodeResponse{
		ID:          int(n.ID),
		Title:       n.Title,
		Description: n.Description,
		Choices:     choices,
	}
}

// FromDecision maps a recorded decision.
func FromDecision(d scenario.Decision) DecisionResponse {
	return DecisionResponse{
		Node:        int(d.Node),
		ChoiceID:    d.ChoiceID,
		Label:       d.Label,
		Explanation: d.Explanation,
		StateAfter:  FromState(d.StateAfter),
	}
}

// FromSimulation maps a scenario run.
func FromSimulation(sim *scenario.Simulation) SimulationResponse {
	runner := sim.Runner()

	resp := SimulationResponse{
		ID:        sim.ID(),
		State:     FromState(runner.State()),
		Complete:  runner.Complete(),
		Decisions: make([]DecisionResponse, 0, len(runner.History())),
	}
	if node, ok := runner.CurrentNode(); ok {
		n := FromNode(node)
		resp.Node = &n
	}
	for _, d := range runner.History() {
		resp.Decisions = append(resp.Decisions, FromDecision(d))
	}
	return resp
}
