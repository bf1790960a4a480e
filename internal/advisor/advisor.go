// Package advisor derives templated textual recommendations from aggregate
// analysis results and configurable thresholds.
package advisor

import (
	"fmt"
	"strings"

	"github.com/zxfpro/expenditure-analyse/internal/config"
	"github.com/zxfpro/expenditure-analyse/internal/models"
)

// Advise generates financial advice from an analysis result. Two independent
// checks run in fixed order: the dining share of total expense against
// rules.HighDiningThreshold, then the savings ratio against
// rules.LowSavingThreshold (with a distinct message when there is no income
// but spending occurred). If neither fires, a single generic healthy message
// is returned. Messages are newline-joined.
func Advise(result models.AnalysisResult, rules config.AdviceRules) string {
	var messages []string

	diningPercentage := result.CategoryExpensePercentages[models.CategoryDining]
	diningThreshold := rules.HighDiningThreshold * 100
	if diningPercentage > diningThreshold {
		messages = append(messages, fmt.Sprintf(
			"您的餐饮支出占总支出的 %.2f%%，高于建议的 %.0f%%。考虑适当控制餐饮消费，例如尝试在家做饭或减少外卖频率。",
			diningPercentage, diningThreshold))
	}

	if result.TotalIncome.IsPositive() {
		income, _ := result.TotalIncome.Float64()
		balance, _ := result.NetBalance.Float64()
		savingRatio := balance / income
		if savingRatio < rules.LowSavingThreshold {
			messages = append(messages, fmt.Sprintf(
				"您的净结余占总收入的 %.2f%%，低于建议的 %.0f%%。建议您审视支出，制定更积极的储蓄计划。",
				savingRatio*100, rules.LowSavingThreshold*100))
		}
	} else if result.NetBalance.IsNegative() {
		messages = append(messages, "本期没有收入，但有支出，请注意您的资金状况。")
	}

	if len(messages) == 0 {
		messages = append(messages, "您的财务状况良好，支出结构合理。继续保持！")
	}

	return strings.Join(messages, "\n")
}
