package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement amount string into a decimal. Currency
// markers and thousand separators are stripped first; statement exports are
// inconsistent about them.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "¥", "")
	amount = strings.ReplaceAll(amount, "￥", "")
	amount = strings.TrimSuffix(amount, "元")

	return decimal.NewFromString(amount)
}
