package models

import "github.com/shopspring/decimal"

// AnalysisResult is an aggregate snapshot over a classified transaction set.
// It is computed fresh on each aggregation and never mutated afterwards.
//
// TotalExpense, the CategoryExpenses values, LargestExpense and
// SmallestExpense are positive magnitudes even though expense amounts are
// stored signed.
type AnalysisResult struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal

	// CategoryExpenses maps category name to the summed expense magnitude.
	// Categories with no expense transactions are absent.
	CategoryExpenses map[string]decimal.Decimal

	// CategoryExpensePercentages maps category name to its share of
	// TotalExpense, in percent. Empty when TotalExpense is zero.
	CategoryExpensePercentages map[string]float64

	LargestExpense  decimal.Decimal
	SmallestExpense decimal.Decimal
	LargestIncome   decimal.Decimal
}
