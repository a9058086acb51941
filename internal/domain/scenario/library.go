package scenario

import "github.com/shopspring/decimal"

// The built-in narrative walks a borrower through five years of ownership
// surprises: a rate rise, a missed payment, a repair bill, rising running
// costs, a windfall, and finally the settle-or-roll-over decision where any
// negative equity comes home to roost.

func nodePtr(id NodeID) *NodeID { return &id }

// DefaultGraph returns the scenario library shipped with the calculator.
func DefaultGraph() *Graph {
	return MustGraph([]Node{
		{
			ID:    0,
			Title: "The rate goes up",
			Description: "Twelve months in, your lender writes to say your variable " +
				"APR is rising by 1%. Your repayments no longer match your budget.",
			Choices: []Choice{
				{
					ID:    "accept-higher-repayment",
					Label: "Accept the higher monthly repayment",
					Explanation: "Your monthly payment rises to absorb the extra interest, " +
						"but the loan still ends on the original date, so you pay less " +
						"interest overall than stretching the term.",
					Transitions: []Transition{
						{Kind: TransitionRateDelta, Amount: decimal.NewFromInt(1)},
					},
					Next: nodePtr(1),
				},
				{
					ID:    "extend-term",
					Label: "Extend the term by 12 months to keep payments down",
					Explanation: "Stretching the same balance over more months keeps the " +
						"payment manageable, but every extra month is another month of " +
						"interest: the total cost of the loan goes up.",
					Transitions: []Transition{
						{Kind: TransitionRateDelta, Amount: decimal.NewFromInt(1)},
						{Kind: TransitionExtendTerm, Months: 12},
					},
					Next: nodePtr(1),
				},
			},
		},
		{
			ID:    1,
			Title: "A missed payment",
			Description: "A bad month: the direct debit bounces and a payment is " +
				"missed. The lender charges a €25 late fee.",
			Choices: []Choice{
				{
					ID:    "roll-missed-payment",
					Label: "Let the missed month roll onto the balance",
					Explanation: "The unpaid month plus the late fee is added to what you " +
						"owe, and from now on you pay interest on it too. One missed " +
						"payment quietly makes every later payment work harder.",
					Transitions: []Transition{
						{Kind: TransitionMissPayment, Amount: decimal.NewFromInt(25)},
					},
					Next: nodePtr(2),
				},
				{
					ID:    "pay-fee-catch-up",
					Label: "Catch up immediately and pay the fee from savings",
					Explanation: "Only the €25 fee joins the balance. Clearing an arrear " +
						"fast is almost always cheaper than financing it.",
					Transitions: []Transition{
						{Kind: TransitionAddPrincipal, Amount: decimal.NewFromInt(25)},
					},
					Next: nodePtr(2),
				},
			},
		},
		{
			ID:    2,
			Title: "The repair bill",
			Description: "The car fails its service: €800 of repairs, and it can't " +
				"wait.",
			Choices: []Choice{
				{
					ID:    "finance-repair",
					Label: "Add the €800 to the finance",
					Explanation: "Convenient, but an €800 repair financed at your APR " +
						"costs well over €800 by the end of the term.",
					Transitions: []Transition{
						{Kind: TransitionAddPrincipal, Amount: decimal.NewFromInt(800)},
					},
					Next: nodePtr(3),
				},
				{
					ID:    "pay-repair-cash",
					Label: "Pay the garage in cash",
					Explanation: "The loan is untouched. Repairs paid outright never " +
						"accrue interest.",
					Transitions: []Transition{
						{Kind: TransitionNone},
					},
					Next: nodePtr(3),
				},
			},
		},
		{
			ID:    3,
			Title: "Running costs creep up",
			Description: "Insurance, fuel and tax have all risen. The car costs " +
				"noticeably more to keep on the road than the day you bought it.",
			Choices: []Choice{
				{
					ID:    "overpay-small",
					Label: "Trim elsewhere and overpay €1,000 off the loan",
					Explanation: "A lump-sum overpayment shrinks the balance, so both the " +
						"monthly payment and the interest still to come fall.",
					Transitions: []Transition{
						{Kind: TransitionReducePrincipal, Amount: decimal.NewFromInt(1000)},
					},
					Next: nodePtr(4),
				},
				{
					ID:    "absorb-costs",
					Label: "Absorb the running costs",
					Explanation: "The loan is unchanged. Running costs are real money, " +
						"but they are not part of the finance agreement.",
					Transitions: []Transition{
						{Kind: TransitionNone},
					},
					Next: nodePtr(4),
				},
			},
		},
		{
			ID:    4,
			Title: "A bonus lands",
			Description: "Work pays out a €2,000 bonus. The loan is still running.",
			Choices: []Choice{
				{
					ID:    "bonus-to-loan",
					Label: "Put the €2,000 against the loan",
					Explanation: "Every euro off the balance stops earning interest for " +
						"the lender. The earlier in the term, the bigger the saving.",
					Transitions: []Transition{
						{Kind: TransitionReducePrincipal, Amount: decimal.NewFromInt(2000)},
					},
					Next: nodePtr(5),
				},
				{
					ID:    "keep-bonus",
					Label: "Keep the cash as a buffer",
					Explanation: "A savings buffer has value too: the next repair bill " +
						"or missed payment is exactly how balances grow.",
					Transitions: []Transition{
						{Kind: TransitionNone},
					},
					Next: nodePtr(5),
				},
			},
		},
		{
			ID:    5,
			Title: "Decision time",
			Description: "The agreement is nearing its end. What happens to the car, " +
				"and to whatever is still owed?",
			Choices: []Choice{
				{
					ID:    "early-settlement",
					Label: "Settle the agreement early",
					Explanation: "You pay off the remaining balance (and any balloon) in " +
						"one go. The car is yours and no further interest accrues.",
					Transitions: []Transition{
						{Kind: TransitionSettle},
					},
				},
				{
					ID:    "see-out-term",
					Label: "See out the remaining payments",
					Explanation: "Nothing changes: you keep paying as scheduled until the " +
						"term ends.",
					Transitions: []Transition{
						{Kind: TransitionNone},
					},
				},
				{
					ID:    "roll-negative-equity",
					Label: "Trade in now and roll €1,500 of negative equity into a new deal",
					Explanation: "The car is worth less than what you owe, so the €1,500 " +
						"shortfall is carried into a fresh 36-month agreement. You start " +
						"the new loan already behind.",
					Transitions: []Transition{
						{Kind: TransitionRollNegativeEquity, Amount: decimal.NewFromInt(1500), Months: 36},
					},
				},
			},
		},
	})
}
