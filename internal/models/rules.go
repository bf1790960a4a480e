package models

// CategoryRule maps a category name to the keywords that select it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet is an ordered list of category rules. Order matters: the first
// rule whose keyword matches a description wins, regardless of keyword list
// length or match position. Callers supplying their own rules therefore
// control precedence through ordering.
type RuleSet []CategoryRule

// RulesConfig is the on-disk YAML shape of a rule set.
type RulesConfig struct {
	Categories RuleSet `yaml:"categories"`
}

// DefaultRules returns the built-in category rules used when no rules file
// is supplied. The 收入 rule is first so the bulk classification path labels
// income rows before any expense rule is considered; expense precedence
// follows everyday frequency.
func DefaultRules() RuleSet {
	return RuleSet{
		{Name: CategoryIncome, Keywords: []string{"工资", "兼职", "奖金", "退款", "入账"}},
		{Name: CategoryDining, Keywords: []string{
			"午餐", "晚餐", "早餐", "外卖", "咖啡", "奶茶", "火锅", "拉面",
			"小吃", "黄焖鸡", "肉夹馍", "麻辣烫", "餐", "饭",
		}},
		{Name: CategoryTransport, Keywords: []string{"公交", "地铁", "打车", "出租", "高铁", "加油"}},
		{Name: CategoryShopping, Keywords: []string{"超市", "网购", "淘宝", "京东", "便利店", "零食", "日用", "电子产品"}},
		{Name: CategoryUtilities, Keywords: []string{"水费", "电费", "燃气", "话费", "房租", "物业"}},
		{Name: CategoryLeisure, Keywords: []string{"电影", "KTV", "游戏", "演出", "门票"}},
	}
}

// Names returns the category names of the rule set in rule order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for _, rule := range rs {
		names = append(names, rule.Name)
	}
	return names
}
