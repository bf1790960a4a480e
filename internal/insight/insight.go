// Package insight prepares analysis results for an external language model
// and folds the model's answer back into the report. The analysis flow never
// fails on an absent or empty model response; placeholders stand in instead.
package insight

import (
	"sort"

	"github.com/zxfpro/expenditure-analyse/internal/models"
)

// MonthlySummary carries the headline figures of one analysis run.
type MonthlySummary struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	NetBalance   string `json:"net_balance"`
}

// ExpenseItem is one category's share of the total expense.
type ExpenseItem struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Payload is the structured request handed to a Generator.
type Payload struct {
	MonthlySummary   MonthlySummary `json:"monthly_summary"`
	ExpenseBreakdown []ExpenseItem  `json:"expense_breakdown"`
	RequestType      string         `json:"request_type"`
}

// Response is what a Generator returns. Status reports the upstream
// outcome; the content fields may be empty even on success.
type Response struct {
	Status     string `json:"status"`
	Advice     string `json:"advice"`
	Prediction string `json:"prediction"`
}

// Insights is the post-processed model output, always fully populated.
type Insights struct {
	Advice     string
	Prediction string
}

// Prepare builds the model request from an analysis result. The breakdown is
// sorted by amount descending so the model sees the dominant categories
// first.
func Prepare(result models.AnalysisResult) Payload {
	breakdown := make([]ExpenseItem, 0, len(result.CategoryExpenses))
	for category, amount := range result.CategoryExpenses {
		breakdown = append(breakdown, ExpenseItem{
			Category:   category,
			Amount:     amount.StringFixed(2),
			Percentage: result.CategoryExpensePercentages[category],
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Percentage != breakdown[j].Percentage {
			return breakdown[i].Percentage > breakdown[j].Percentage
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return Payload{
		MonthlySummary: MonthlySummary{
			TotalIncome:  result.TotalIncome.StringFixed(2),
			TotalExpense: result.TotalExpense.StringFixed(2),
			NetBalance:   result.NetBalance.StringFixed(2),
		},
		ExpenseBreakdown: breakdown,
		RequestType:      "expense_analysis_and_advice",
	}
}

// Process normalizes a model response. A nil response means no model was
// called and yields simulated placeholders; an empty field in a real
// response yields an explicit no-content marker; populated fields pass
// through unchanged.
func Process(resp *Response) Insights {
	if resp == nil {
		return Insights{
			Advice:     "（模拟建议）您的支出结构总体平稳，建议继续记录日常消费以获得更准确的分析。",
			Prediction: "（模拟预测）按当前趋势，下月支出预计与本月接近。",
		}
	}
	insights := Insights{
		Advice:     resp.Advice,
		Prediction: resp.Prediction,
	}
	if insights.Advice == "" {
		insights.Advice = "No specific advice provided by LLM."
	}
	if insights.Prediction == "" {
		insights.Prediction = "No specific prediction provided by LLM."
	}
	return insights
}
