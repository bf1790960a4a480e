package models_test

import (
	"testing"

	"github.com/zxfpro/expenditure-analyse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "100.00"},
		{"-25.50", "-25.50"},
		{"1,234.56", "1234.56"},
		{"¥88.00", "88.00"},
		{"￥-12.30", "-12.30"},
		{"50元", "50.00"},
		{" -3.5 ", "-3.50"},
		{"1 000.00", "1000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := models.ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12.3.4", "一百"} {
		t.Run(input, func(t *testing.T) {
			_, err := models.ParseAmount(input)
			assert.Error(t, err)
		})
	}
}
