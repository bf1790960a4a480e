// Package analyzer reduces a classified transaction set into aggregate
// financial metrics and renders the human-readable report.
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zxfpro/expenditure-analyse/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate computes the aggregate snapshot for a transaction set. It is a
// pure reduction: empty input yields an all-zero result, never an error, and
// aggregating the same set twice yields identical results.
func Aggregate(txs []models.Transaction) models.AnalysisResult {
	result := models.AnalysisResult{
		TotalIncome:                decimal.Zero,
		TotalExpense:               decimal.Zero,
		NetBalance:                 decimal.Zero,
		CategoryExpenses:           make(map[string]decimal.Decimal),
		CategoryExpensePercentages: make(map[string]float64),
		LargestExpense:             decimal.Zero,
		SmallestExpense:            decimal.Zero,
		LargestIncome:              decimal.Zero,
	}

	var haveExpense, haveSmallest bool
	for _, tx := range txs {
		if tx.IsIncome {
			result.TotalIncome = result.TotalIncome.Add(tx.Amount)
			if tx.Amount.GreaterThan(result.LargestIncome) {
				result.LargestIncome = tx.Amount
			}
			continue
		}

		magnitude := tx.Amount.Abs()
		result.TotalExpense = result.TotalExpense.Add(magnitude)
		result.CategoryExpenses[tx.Category] = result.CategoryExpenses[tx.Category].Add(magnitude)

		if !haveExpense || magnitude.GreaterThan(result.LargestExpense) {
			result.LargestExpense = magnitude
		}
		haveExpense = true

		// Zero-amount expenses are excluded from the smallest computation.
		if !magnitude.IsZero() {
			if !haveSmallest || magnitude.LessThan(result.SmallestExpense) {
				result.SmallestExpense = magnitude
			}
			haveSmallest = true
		}
	}

	result.NetBalance = result.TotalIncome.Sub(result.TotalExpense)

	if result.TotalExpense.IsPositive() {
		totalExpense, _ := result.TotalExpense.Float64()
		for category, amount := range result.CategoryExpenses {
			amountFloat, _ := amount.Float64()
			result.CategoryExpensePercentages[category] = amountFloat / totalExpense * 100
		}
	}

	return result
}

// RenderReport renders the analysis result as the statement report text.
// The category breakdown is sorted by amount descending, names ascending on
// ties for stable output.
func RenderReport(result models.AnalysisResult) string {
	var lines []string
	lines = append(lines, "--- 银行流水分析报告 ---")
	lines = append(lines, fmt.Sprintf("总收入: %s", result.TotalIncome.StringFixed(2)))
	lines = append(lines, fmt.Sprintf("总支出: -%s", result.TotalExpense.StringFixed(2)))
	lines = append(lines, fmt.Sprintf("净结余: %s", result.NetBalance.StringFixed(2)))
	lines = append(lines, "", "--- 各类别支出明细 ---")

	if len(result.CategoryExpenses) > 0 {
		type categoryAmount struct {
			name   string
			amount decimal.Decimal
		}
		sorted := make([]categoryAmount, 0, len(result.CategoryExpenses))
		for name, amount := range result.CategoryExpenses {
			sorted = append(sorted, categoryAmount{name: name, amount: amount})
		}
		sort.Slice(sorted, func(i, j int) bool {
			if !sorted[i].amount.Equal(sorted[j].amount) {
				return sorted[i].amount.GreaterThan(sorted[j].amount)
			}
			return sorted[i].name < sorted[j].name
		})
		for _, entry := range sorted {
			percentage := result.CategoryExpensePercentages[entry.name]
			lines = append(lines, fmt.Sprintf("%s: %10s (%.2f%%)",
				entry.name, entry.amount.StringFixed(2), percentage))
		}
	} else {
		lines = append(lines, "没有发现支出数据。")
	}

	lines = append(lines, "", "--- 交易概览 ---")
	lines = append(lines, fmt.Sprintf("最大单笔支出: -%s", result.LargestExpense.StringFixed(2)))
	lines = append(lines, fmt.Sprintf("最小单笔支出: -%s", result.SmallestExpense.StringFixed(2)))
	lines = append(lines, fmt.Sprintf("最大单笔收入: %s", result.LargestIncome.StringFixed(2)))

	return strings.Join(lines, "\n")
}
