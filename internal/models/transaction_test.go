package models_test

import (
	"testing"
	"time"

	"github.com/zxfpro/expenditure-analyse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_ExpenseAmount(t *testing.T) {
	expense := models.Transaction{
		Amount:   decimal.RequireFromString("-25.50"),
		IsIncome: false,
	}
	income := models.Transaction{
		Amount:   decimal.RequireFromString("1000"),
		IsIncome: true,
	}

	assert.Equal(t, "25.50", expense.ExpenseAmount().StringFixed(2))
	assert.True(t, income.ExpenseAmount().IsZero())
}

func TestTransaction_IncomeAmount(t *testing.T) {
	income := models.Transaction{
		Amount:   decimal.RequireFromString("1000"),
		IsIncome: true,
	}
	expense := models.Transaction{
		Amount:   decimal.RequireFromString("-25.50"),
		IsIncome: false,
	}

	assert.Equal(t, "1000.00", income.IncomeAmount().StringFixed(2))
	assert.True(t, expense.IncomeAmount().IsZero())
}

func TestTransaction_Hour(t *testing.T) {
	tx := models.Transaction{
		Date: time.Date(2023, 10, 1, 18, 45, 0, 0, time.Local),
	}

	assert.Equal(t, 18, tx.Hour())
}

func TestDefaultRules_IncomeFirst(t *testing.T) {
	rules := models.DefaultRules()

	assert.Equal(t, models.CategoryIncome, rules[0].Name)
	assert.Contains(t, rules.Names(), models.CategoryDining)
	assert.Contains(t, rules.Names(), models.CategoryTransport)
}
