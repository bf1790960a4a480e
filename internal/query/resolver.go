// Package query answers a small fixed set of natural-language questions
// about a classified transaction set. Resolution is an ordered cascade of
// literal keyword checks evaluated top to bottom; this is intentionally
// simple and stays that way (no semantic parsing).
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/zxfpro/expenditure-analyse/internal/dateutils"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"

	"github.com/shopspring/decimal"
)

const fallbackAnswer = "抱歉，我无法理解您的问题。请尝试更具体的提问，例如：'我的总支出是多少？' 或 '上周我花钱最多的地方是哪里？'"

// predictionTriggers route a query to the time-of-day predictor instead of
// the answer cascade.
var predictionTriggers = []string{"预测", "通常会", "经常会", "可能做", "习惯"}

var (
	hourPattern    = regexp.MustCompile(`(\d{1,2})[点时]`)
	dateCNFull     = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})号`)
	dateISO        = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	dateCNMonthDay = regexp.MustCompile(`(\d{1,2})月(\d{1,2})号`)
)

// Resolver matches queries against keyword and time patterns and answers
// from the passed-in transaction set. It holds no transaction state itself.
type Resolver struct {
	rules  models.RuleSet
	logger logging.Logger
	now    func() time.Time
}

// NewResolver creates a Resolver over the given rule set. The rule names
// (plus both fallback labels) form the category vocabulary for
// category-scoped questions.
func NewResolver(rules models.RuleSet, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Resolver{
		rules:  rules,
		logger: logger,
		now:    time.Now,
	}
}

// SetNow overrides the clock used for relative time windows. Intended for
// tests that need deterministic calendar math.
func (r *Resolver) SetNow(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Answer resolves a natural-language query against the transaction set.
// The cascade order is part of the contract: prediction intent, totals,
// category questions, time-range questions, then a fixed apology.
func (r *Resolver) Answer(txs []models.Transaction, query string) string {
	r.logger.WithField(logging.FieldQuery, query).Debug("Resolving query")

	if containsAny(query, predictionTriggers) {
		match := hourPattern.FindStringSubmatch(query)
		if match == nil {
			return "请提供具体的时间点以便我进行更准确的预测（例如：'中午12点'）。"
		}
		return r.Predict(txs, match[1])
	}

	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "总支出") || strings.Contains(q, "一共花了多少钱"):
		return fmt.Sprintf("您的总支出是 %s 元。", totalExpense(txs).StringFixed(2))
	case strings.Contains(q, "总收入") || strings.Contains(q, "一共赚了多少钱"):
		return fmt.Sprintf("您的总收入是 %s 元。", totalIncome(txs).StringFixed(2))
	case strings.Contains(q, "净结余") || strings.Contains(q, "还剩多少钱"):
		return fmt.Sprintf("您的净结余是 %s 元。", netBalance(txs).StringFixed(2))
	}

	for _, category := range r.categoryNames() {
		categoryLower := strings.ToLower(category)
		if strings.Contains(q, categoryLower+"支出") || strings.Contains(q, "在"+categoryLower+"上花了多少") {
			return fmt.Sprintf("您在%s上的支出是 %s 元。",
				category, categoryExpense(txs, category).StringFixed(2))
		}
		if strings.Contains(q, categoryLower+"收入") {
			return fmt.Sprintf("您在%s上的收入是 %s 元。",
				category, categoryIncome(txs, category).StringFixed(2))
		}
	}

	if answer, ok := r.answerTimeRange(txs, query, q); ok {
		return answer
	}

	return fallbackAnswer
}

// answerTimeRange handles the time-scoped sub-intents. The window always
// resolves (a trailing 30-day default applies without a keyword), so only
// the sub-intent determines whether this branch answers.
func (r *Resolver) answerTimeRange(txs []models.Transaction, query, q string) (string, bool) {
	start, end := r.rangeFromQuery(q)
	inRange := filterRange(txs, start, end)
	rangeLabel := fmt.Sprintf("从 %s 到 %s", start.Format(dateutils.DateLayoutISO), end.Format(dateutils.DateLayoutISO))

	switch {
	case strings.Contains(q, "花了多少钱") || strings.Contains(q, "支出"):
		return fmt.Sprintf("%s，您的总支出是 %s 元。", rangeLabel, totalExpense(inRange).StringFixed(2)), true

	case strings.Contains(q, "赚了多少钱") || strings.Contains(q, "收入"):
		return fmt.Sprintf("%s，您的总收入是 %s 元。", rangeLabel, totalIncome(inRange).StringFixed(2)), true

	case strings.Contains(q, "花钱最多的地方"):
		top, ok := topExpenseCategory(inRange)
		if !ok {
			return fmt.Sprintf("%s，没有发现支出数据。", rangeLabel), true
		}
		return fmt.Sprintf("%s，您花钱最多的地方是 %s。", rangeLabel, top), true

	case strings.Contains(q, "做了什么") || strings.Contains(q, "活动"):
		day, ok := r.extractDate(query)
		if !ok {
			return "请提供具体的日期以便我查询当天的活动。", true
		}
		return r.describeDay(txs, day), true
	}

	return "", false
}

// describeDay itemizes the transactions of one calendar day.
func (r *Resolver) describeDay(txs []models.Transaction, day time.Time) string {
	var lines []string
	for _, tx := range txs {
		if dateutils.SameDay(tx.Date, day) {
			lines = append(lines, fmt.Sprintf("- %s %s (%s元)",
				tx.Date.Format("15:04"), tx.Description, tx.Amount.StringFixed(2)))
		}
	}
	dayLabel := day.Format("2006年01月02日")
	if len(lines) == 0 {
		return fmt.Sprintf("%s 没有发现交易活动。", dayLabel)
	}
	return fmt.Sprintf("%s 的交易活动：\n%s", dayLabel, strings.Join(lines, "\n"))
}

// rangeFromQuery maps a time keyword to an inclusive calendar window
// relative to now. Without a keyword it defaults to the trailing 30 days
// ending now, which is not a calendar month.
func (r *Resolver) rangeFromQuery(q string) (time.Time, time.Time) {
	now := r.now()
	switch {
	case strings.Contains(q, "今天"):
		return dateutils.StartOfDay(now), dateutils.EndOfDay(now)
	case strings.Contains(q, "昨天"):
		yesterday := now.AddDate(0, 0, -1)
		return dateutils.StartOfDay(yesterday), dateutils.EndOfDay(yesterday)
	case strings.Contains(q, "上周") || strings.Contains(q, "过去一周"):
		return dateutils.PreviousWeekRange(now)
	case strings.Contains(q, "本周"):
		return dateutils.WeekRange(now)
	case strings.Contains(q, "上月") || strings.Contains(q, "过去一月"):
		return dateutils.PreviousMonthRange(now)
	case strings.Contains(q, "本月"):
		return dateutils.MonthRange(now)
	default:
		return now.AddDate(0, 0, -30), now
	}
}

// extractDate recognizes a specific date in the query. Pattern priority:
// YYYY年MM月DD号, then YYYY-MM-DD, then MM月DD号 (current year).
func (r *Resolver) extractDate(query string) (time.Time, bool) {
	if m := dateCNFull.FindStringSubmatch(query); m != nil {
		return buildDate(m[1], m[2], m[3]), true
	}
	if m := dateISO.FindStringSubmatch(query); m != nil {
		return buildDate(m[1], m[2], m[3]), true
	}
	if m := dateCNMonthDay.FindStringSubmatch(query); m != nil {
		return buildDate(strconv.Itoa(r.now().Year()), m[1], m[2]), true
	}
	return time.Time{}, false
}

// categoryNames returns the query vocabulary: rule names in order plus both
// fallback labels.
func (r *Resolver) categoryNames() []string {
	names := r.rules.Names()
	return append(names, models.CategoryFallback, models.CategoryUncategorized)
}

func buildDate(year, month, day string) time.Time {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func filterRange(txs []models.Transaction, start, end time.Time) []models.Transaction {
	var out []models.Transaction
	for _, tx := range txs {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	return out
}

func totalExpense(txs []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.ExpenseAmount())
	}
	return sum
}

func totalIncome(txs []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.IncomeAmount())
	}
	return sum
}

func netBalance(txs []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

func categoryExpense(txs []models.Transaction, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Category == category {
			sum = sum.Add(tx.ExpenseAmount())
		}
	}
	return sum
}

func categoryIncome(txs []models.Transaction, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Category == category {
			sum = sum.Add(tx.IncomeAmount())
		}
	}
	return sum
}

// topExpenseCategory returns the category with the largest absolute expense
// sum. Ties resolve to the category seen first in the transaction order.
func topExpenseCategory(txs []models.Transaction) (string, bool) {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range txs {
		if tx.IsIncome {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.ExpenseAmount())
	}
	if len(order) == 0 {
		return "", false
	}
	top := order[0]
	for _, category := range order[1:] {
		if sums[category].GreaterThan(sums[top]) {
			top = category
		}
	}
	return top, true
}
