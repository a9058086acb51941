package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FinanceType value object
// ---------------------------------------------------------------------------

// FinanceType distinguishes a standard repayment loan from a balloon PCP
// agreement, where a Guaranteed Minimum Future Value falls due at term end.
type FinanceType struct {
	value string
}

const (
	financeTypeStandard   = "STANDARD"
	financeTypeBalloonPCP = "BALLOON_PCP"
)

var (
	FinanceTypeStandard   = FinanceType{value: financeTypeStandard}
	FinanceTypeBalloonPCP = FinanceType{value: financeTypeBalloonPCP}
)

var validFinanceTypes = map[string]FinanceType{
	financeTypeStandard:   FinanceTypeStandard,
	financeTypeBalloonPCP: FinanceTypeBalloonPCP,
}

// NewFinanceType creates a FinanceType from a raw string.
func NewFinanceType(s string) (FinanceType, error) {
	v, ok := validFinanceTypes[s]
	if !ok {
		return FinanceType{}, fmt.Errorf("invalid finance type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the finance type.
func (t FinanceType) String() string { return t.value }

// IsZero returns true if the finance type has not been initialised.
func (t FinanceType) IsZero() bool { return t.value == "" }

// Equal returns true when both finance types carry the same value.
func (t FinanceType) Equal(other FinanceType) bool { return t.value == other.value }

// IsBalloonPCP returns true for PCP agreements with a final balloon payment.
func (t FinanceType) IsBalloonPCP() bool { return t.value == financeTypeBalloonPCP }
