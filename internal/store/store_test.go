package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"
	"github.com/zxfpro/expenditure-analyse/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_MissingFileUsesDefaults(t *testing.T) {
	s := store.NewRuleStore(filepath.Join(t.TempDir(), "rules.yaml"), &logging.MockLogger{})

	rules, err := s.LoadRules()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultRules(), rules)
}

func TestSaveAndLoadRules_PreservesOrder(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	s := store.NewRuleStore(rulesFile, &logging.MockLogger{})

	original := models.RuleSet{
		{Name: "收入", Keywords: []string{"工资", "奖金"}},
		{Name: "餐饮", Keywords: []string{"午餐", "外卖"}},
		{Name: "交通", Keywords: []string{"地铁"}},
	}
	require.NoError(t, s.SaveRules(original))

	loaded, err := s.LoadRules()

	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadRules_BareListForm(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	content := `- name: 餐饮
  keywords:
    - 午餐
    - 晚餐
- name: 交通
  keywords:
    - 地铁
`
	require.NoError(t, os.WriteFile(rulesFile, []byte(content), 0644))

	s := store.NewRuleStore(rulesFile, &logging.MockLogger{})
	rules, err := s.LoadRules()

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "餐饮", rules[0].Name)
	assert.Equal(t, []string{"午餐", "晚餐"}, rules[0].Keywords)
	assert.Equal(t, "交通", rules[1].Name)
}

func TestLoadRules_CategoriesForm(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	content := `categories:
  - name: 购物
    keywords:
      - 超市
      - 淘宝
`
	require.NoError(t, os.WriteFile(rulesFile, []byte(content), 0644))

	s := store.NewRuleStore(rulesFile, &logging.MockLogger{})
	rules, err := s.LoadRules()

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "购物", rules[0].Name)
}

func TestLoadRules_InvalidYAML(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesFile, []byte("{not: [valid"), 0644))

	s := store.NewRuleStore(rulesFile, &logging.MockLogger{})
	_, err := s.LoadRules()

	assert.Error(t, err)
}

func TestSaveRules_CreatesParentDirectory(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "nested", "config", "rules.yaml")
	s := store.NewRuleStore(rulesFile, &logging.MockLogger{})

	require.NoError(t, s.SaveRules(models.DefaultRules()))

	_, err := os.Stat(rulesFile)
	assert.NoError(t, err)
}
