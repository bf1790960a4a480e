package insight_test

import (
	"context"
	"testing"

	"github.com/zxfpro/expenditure-analyse/internal/insight"
	"github.com/zxfpro/expenditure-analyse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	result := models.AnalysisResult{
		TotalIncome:  decimal.RequireFromString("1000"),
		TotalExpense: decimal.RequireFromString("1055"),
		NetBalance:   decimal.RequireFromString("-55"),
		CategoryExpenses: map[string]decimal.Decimal{
			models.CategoryDining:   decimal.RequireFromString("170"),
			models.CategoryFallback: decimal.RequireFromString("500"),
			models.CategoryShopping: decimal.RequireFromString("215"),
		},
		CategoryExpensePercentages: map[string]float64{
			models.CategoryDining:   16.11,
			models.CategoryFallback: 47.39,
			models.CategoryShopping: 20.38,
		},
	}

	payload := insight.Prepare(result)

	assert.Equal(t, "1000.00", payload.MonthlySummary.TotalIncome)
	assert.Equal(t, "1055.00", payload.MonthlySummary.TotalExpense)
	assert.Equal(t, "-55.00", payload.MonthlySummary.NetBalance)
	assert.Equal(t, "expense_analysis_and_advice", payload.RequestType)

	require.Len(t, payload.ExpenseBreakdown, 3)
	assert.Equal(t, models.CategoryFallback, payload.ExpenseBreakdown[0].Category)
	assert.Equal(t, "500.00", payload.ExpenseBreakdown[0].Amount)
	assert.Equal(t, models.CategoryShopping, payload.ExpenseBreakdown[1].Category)
	assert.Equal(t, models.CategoryDining, payload.ExpenseBreakdown[2].Category)
}

func TestProcess_NilResponse(t *testing.T) {
	insights := insight.Process(nil)

	assert.Contains(t, insights.Advice, "模拟建议")
	assert.Contains(t, insights.Prediction, "模拟预测")
}

func TestProcess_EmptyResponse(t *testing.T) {
	insights := insight.Process(&insight.Response{})

	assert.Equal(t, "No specific advice provided by LLM.", insights.Advice)
	assert.Equal(t, "No specific prediction provided by LLM.", insights.Prediction)
}

func TestProcess_PartialResponse(t *testing.T) {
	insights := insight.Process(&insight.Response{Advice: "少点外卖。"})

	assert.Equal(t, "少点外卖。", insights.Advice)
	assert.Equal(t, "No specific prediction provided by LLM.", insights.Prediction)
}

func TestProcess_FullResponse(t *testing.T) {
	insights := insight.Process(&insight.Response{
		Status:     "success",
		Advice:     "少点外卖。",
		Prediction: "下月支出预计持平。",
	})

	assert.Equal(t, "少点外卖。", insights.Advice)
	assert.Equal(t, "下月支出预计持平。", insights.Prediction)
}

func TestProcess_SuccessStatusWithEmptyContent(t *testing.T) {
	// An upstream reply may report success and still carry no content; the
	// content fields decide the markers, not the status.
	insights := insight.Process(&insight.Response{Status: "success"})

	assert.Equal(t, "No specific advice provided by LLM.", insights.Advice)
	assert.Equal(t, "No specific prediction provided by LLM.", insights.Prediction)
}

func TestStubGenerator(t *testing.T) {
	resp, err := insight.StubGenerator{}.Generate(context.Background(), insight.Payload{})

	require.NoError(t, err)
	assert.Nil(t, resp)
}
