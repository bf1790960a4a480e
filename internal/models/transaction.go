// Package models defines the core data structures shared across the
// application: transactions, category rule sets, and analysis results.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default category labels. The two parsing paths deliberately use different
// fallback labels: the lenient row path reports unmatched descriptions as
// CategoryUncategorized, the strict table path uses the localized
// CategoryFallback.
const (
	CategoryUncategorized = "Uncategorized"
	CategoryFallback      = "其他"

	CategoryDining    = "餐饮"
	CategoryTransport = "交通"
	CategoryShopping  = "购物"
	CategoryUtilities = "生活缴费"
	CategoryLeisure   = "娱乐"
	CategoryIncome    = "收入"
)

// Transaction represents a single classified financial event from a bank
// statement. Amount is signed: positive for income, negative for expense.
// IsIncome is reconciled at parse time from either an explicit type column or
// the sign of the amount, so it is always meaningful even for zero amounts.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Category    string
	IsIncome    bool
}

// Hour returns the hour-of-day component of the transaction timestamp.
func (t Transaction) Hour() int {
	return t.Date.Hour()
}

// ExpenseAmount returns the positive magnitude of an expense transaction,
// or zero for income transactions.
func (t Transaction) ExpenseAmount() decimal.Decimal {
	if t.IsIncome {
		return decimal.Zero
	}
	return t.Amount.Abs()
}

// IncomeAmount returns the amount of an income transaction, or zero for
// expense transactions.
func (t Transaction) IncomeAmount() decimal.Decimal {
	if !t.IsIncome {
		return decimal.Zero
	}
	return t.Amount
}
