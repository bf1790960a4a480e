package analyzer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/zxfpro/expenditure-analyse/internal/analyzer"
	"github.com/zxfpro/expenditure-analyse/internal/classifier"
	"github.com/zxfpro/expenditure-analyse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	rows := []struct {
		amount      string
		description string
		isIncome    bool
	}{
		{"1000", "工资入账", true},
		{"-50", "星巴克咖啡", false},
		{"-120", "麻辣烫午餐", false},
		{"-30", "公交卡充值", false},
		{"-200", "超市购物", false},
		{"-15", "便利店零食", false},
		{"-80", "电影票", false},
		{"-60", "KTV", false},
		{"-500", "健身房年费", false},
	}

	date := time.Date(2023, 10, 1, 12, 0, 0, 0, time.Local)
	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, models.Transaction{
			Date:        date,
			Amount:      decimal.RequireFromString(row.amount),
			Description: row.description,
			IsIncome:    row.isIncome,
		})
	}
	classifier.ApplyCategories(txs, models.DefaultRules())
	return txs
}

func TestAggregate(t *testing.T) {
	result := analyzer.Aggregate(sampleTransactions())

	assert.Equal(t, "1000.00", result.TotalIncome.StringFixed(2))
	assert.Equal(t, "1055.00", result.TotalExpense.StringFixed(2))
	assert.Equal(t, "-55.00", result.NetBalance.StringFixed(2))

	assert.Equal(t, "170.00", result.CategoryExpenses[models.CategoryDining].StringFixed(2))
	assert.Equal(t, "30.00", result.CategoryExpenses[models.CategoryTransport].StringFixed(2))
	assert.Equal(t, "215.00", result.CategoryExpenses[models.CategoryShopping].StringFixed(2))
	assert.Equal(t, "140.00", result.CategoryExpenses[models.CategoryLeisure].StringFixed(2))
	assert.Equal(t, "500.00", result.CategoryExpenses[models.CategoryFallback].StringFixed(2))

	assert.Equal(t, "500.00", result.LargestExpense.StringFixed(2))
	assert.Equal(t, "15.00", result.SmallestExpense.StringFixed(2))
	assert.Equal(t, "1000.00", result.LargestIncome.StringFixed(2))
}

func TestAggregate_PercentagesSumToHundred(t *testing.T) {
	result := analyzer.Aggregate(sampleTransactions())

	var sum float64
	for _, percentage := range result.CategoryExpensePercentages {
		sum += percentage
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestAggregate_Empty(t *testing.T) {
	result := analyzer.Aggregate(nil)

	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalExpense.IsZero())
	assert.True(t, result.NetBalance.IsZero())
	assert.Empty(t, result.CategoryExpenses)
	assert.Empty(t, result.CategoryExpensePercentages)
	assert.True(t, result.LargestExpense.IsZero())
	assert.True(t, result.SmallestExpense.IsZero())
	assert.True(t, result.LargestIncome.IsZero())
}

func TestAggregate_Idempotent(t *testing.T) {
	txs := sampleTransactions()

	first := analyzer.Aggregate(txs)
	second := analyzer.Aggregate(txs)

	assert.True(t, first.TotalExpense.Equal(second.TotalExpense))
	assert.True(t, first.NetBalance.Equal(second.NetBalance))
	assert.Equal(t, first.CategoryExpensePercentages, second.CategoryExpensePercentages)
}

func TestAggregate_ZeroAmountExpenseExcludedFromSmallest(t *testing.T) {
	txs := []models.Transaction{
		{Amount: decimal.Zero, Description: "冲正", IsIncome: false, Category: models.CategoryFallback},
		{Amount: decimal.RequireFromString("-40"), Description: "打车", IsIncome: false, Category: models.CategoryTransport},
	}

	result := analyzer.Aggregate(txs)

	assert.Equal(t, "40.00", result.SmallestExpense.StringFixed(2))
	assert.Equal(t, "40.00", result.LargestExpense.StringFixed(2))
}

func TestRenderReport(t *testing.T) {
	report := analyzer.RenderReport(analyzer.Aggregate(sampleTransactions()))

	assert.Contains(t, report, "--- 银行流水分析报告 ---")
	assert.Contains(t, report, "总收入: 1000.00")
	assert.Contains(t, report, "总支出: -1055.00")
	assert.Contains(t, report, "净结余: -55.00")
	assert.Contains(t, report, "--- 各类别支出明细 ---")
	assert.Contains(t, report, "--- 交易概览 ---")
	assert.Contains(t, report, "最大单笔支出: -500.00")
	assert.Contains(t, report, "最小单笔支出: -15.00")
	assert.Contains(t, report, "最大单笔收入: 1000.00")

	// Categories appear in descending amount order.
	lines := strings.Split(report, "\n")
	var categoryOrder []string
	for _, line := range lines {
		for _, category := range []string{models.CategoryFallback, models.CategoryShopping,
			models.CategoryDining, models.CategoryLeisure, models.CategoryTransport} {
			if strings.HasPrefix(line, category+":") {
				categoryOrder = append(categoryOrder, category)
			}
		}
	}
	require.Len(t, categoryOrder, 5)
	assert.Equal(t, []string{
		models.CategoryFallback,  // 500.00
		models.CategoryShopping,  // 215.00
		models.CategoryDining,    // 170.00
		models.CategoryLeisure,   // 140.00
		models.CategoryTransport, // 30.00
	}, categoryOrder)
}

func TestRenderReport_NoExpenses(t *testing.T) {
	txs := []models.Transaction{
		{Amount: decimal.RequireFromString("1000"), Description: "工资入账", IsIncome: true, Category: models.CategoryIncome},
	}

	report := analyzer.RenderReport(analyzer.Aggregate(txs))

	assert.Contains(t, report, "没有发现支出数据。")
	assert.Contains(t, report, "总收入: 1000.00")
}
