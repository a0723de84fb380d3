package shared

import (
	"context"
	"fmt"

	"frontdesk/shared/constant"
)

// FormatMoney renders an amount with two decimal places. Amounts stay plain
// float64 values; there is no currency or locale handling.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatYesNo renders a flag for table output.
func FormatYesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}

// Operator returns the operator name carried in the context, or a fallback
// when the session did not set one.
func Operator(ctx context.Context) string {
	if name, ok := ctx.Value(constant.ContextKeyOperator).(string); ok && name != constant.Empty {
		return name
	}

	return "operator"
}
