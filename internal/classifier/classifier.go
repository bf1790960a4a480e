// Package classifier assigns spending categories to transactions using
// ordered keyword rules. Two variants exist with deliberately different
// semantics:
//
//  1. Classify, a pure single-description function used by the lenient row
//     path, where the first matching rule wins unconditionally.
//  2. ApplyCategories, a bulk pass used by the strict table path, where an
//     income rule only applies to income rows and expense rules never
//     overwrite an already-assigned category.
package classifier

import (
	"strings"

	"github.com/zxfpro/expenditure-analyse/internal/models"
)

// Classify maps a free-text description to a category label. Rules are
// checked in their defined order, keywords in list order, case-insensitive
// substring match; the first hit wins across both levels. An empty
// description, an empty rule set, or no match yields
// models.CategoryUncategorized.
//
// Income-named rules get no special precedence here: an income keyword
// appearing inside an expense description mis-tags the expense. That is a
// known limitation of this variant, not something to patch around.
func Classify(description string, rules models.RuleSet) string {
	if description == "" || len(rules) == 0 {
		return models.CategoryUncategorized
	}

	descLower := strings.ToLower(description)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(descLower, strings.ToLower(keyword)) {
				return rule.Name
			}
		}
	}
	return models.CategoryUncategorized
}

// Strategy labels a transaction set in place.
type Strategy func(txs []models.Transaction, rules models.RuleSet)

// PerRow applies Classify to every transaction independently. Unmatched
// descriptions end up as models.CategoryUncategorized.
func PerRow(txs []models.Transaction, rules models.RuleSet) {
	for i := range txs {
		txs[i].Category = Classify(txs[i].Description, rules)
	}
}

// ApplyCategories labels every transaction in place. All rows start at
// models.CategoryFallback. A rule named models.CategoryIncome only matches
// rows flagged as income; every other rule only matches expense rows, and
// only while the row still carries the fallback label, so the first matching
// expense rule sticks.
func ApplyCategories(txs []models.Transaction, rules models.RuleSet) {
	for i := range txs {
		txs[i].Category = models.CategoryFallback
	}

	for _, rule := range rules {
		isIncomeRule := rule.Name == models.CategoryIncome
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			keywordLower := strings.ToLower(keyword)
			for i := range txs {
				if !strings.Contains(strings.ToLower(txs[i].Description), keywordLower) {
					continue
				}
				if isIncomeRule {
					if txs[i].IsIncome {
						txs[i].Category = rule.Name
					}
					continue
				}
				if !txs[i].IsIncome && txs[i].Category == models.CategoryFallback {
					txs[i].Category = rule.Name
				}
			}
		}
	}
}
