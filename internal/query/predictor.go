package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"
)

// Predict summarizes the habitual activity around a given hour of day from
// the historical transactions. The window covers the hour plus one hour on
// each side; the "most common" picks are plain modes with first-seen
// tie-breaking.
func (r *Resolver) Predict(txs []models.Transaction, hourStr string) string {
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return "请提供一个有效的时间数字（例如：'12' 代表中午12点）。"
	}
	if hour < 0 || hour > 23 {
		return "请提供一个有效的24小时制时间（0-23）。"
	}

	r.logger.WithField(logging.FieldHour, hour).Debug("Predicting activity around hour")

	window := filterHourWindow(txs, hour)
	if len(window) == 0 {
		return fmt.Sprintf("在 %d 点前后没有发现历史交易数据，无法进行预测。", hour)
	}

	topCategory := mode(window, func(tx models.Transaction) string { return tx.Category })
	topDescription := mode(window, func(tx models.Transaction) string { return tx.Description })
	totalSpend := totalExpense(window)

	lines := []string{
		fmt.Sprintf("根据您在 %d 点前后的历史交易数据，您通常会进行以下活动：", hour),
		fmt.Sprintf("- 最常见的类别是：%s", topCategory),
		fmt.Sprintf("- 最常见的交易描述是：'%s'", topDescription),
	}
	if totalSpend.IsPositive() {
		lines = append(lines, fmt.Sprintf("- 在此时间段内，您通常会支出 %s 元。", totalSpend.StringFixed(2)))
	}
	switch topCategory {
	case models.CategoryDining:
		lines = append(lines, "这可能意味着您在这个时间段通常会用餐或购买饮品。")
	case models.CategoryTransport:
		lines = append(lines, "这可能意味着您在这个时间段通常会通勤或出行。")
	}
	return strings.Join(lines, "\n")
}

// filterHourWindow keeps transactions whose hour falls within one hour of
// the target. The window clamps at the day boundary rather than wrapping.
func filterHourWindow(txs []models.Transaction, hour int) []models.Transaction {
	var out []models.Transaction
	for _, tx := range txs {
		h := tx.Hour()
		if h >= hour-1 && h <= hour+1 {
			out = append(out, tx)
		}
	}
	return out
}

// mode returns the most frequent key. Ties resolve to the key seen first.
func mode(txs []models.Transaction, key func(models.Transaction) string) string {
	counts := make(map[string]int)
	var order []string
	for _, tx := range txs {
		k := key(tx)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	top := order[0]
	for _, k := range order[1:] {
		if counts[k] > counts[top] {
			top = k
		}
	}
	return top
}
