package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ColumnMapping names the statement columns the parsers read. Only the date,
// amount and description columns are universally required; the type and time
// columns are consulted when present.
type ColumnMapping struct {
	DateCol        string `mapstructure:"date_col" yaml:"date_col"`
	TimeCol        string `mapstructure:"time_col" yaml:"time_col"`
	AmountCol      string `mapstructure:"amount_col" yaml:"amount_col"`
	DescriptionCol string `mapstructure:"description_col" yaml:"description_col"`
	TypeCol        string `mapstructure:"type_col" yaml:"type_col"`
	IncomeKeyword  string `mapstructure:"income_keyword" yaml:"income_keyword"`
	ExpenseKeyword string `mapstructure:"expense_keyword" yaml:"expense_keyword"`
}

// AdviceRules holds the thresholds driving the generated advice text.
// Both are ratios in [0,1].
type AdviceRules struct {
	HighDiningThreshold float64 `mapstructure:"high_dining_threshold" yaml:"high_dining_threshold"`
	LowSavingThreshold  float64 `mapstructure:"low_saving_threshold" yaml:"low_saving_threshold"`
}

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Columns ColumnMapping `mapstructure:"columns" yaml:"columns"`

	Advice AdviceRules `mapstructure:"advice" yaml:"advice"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then EXPAN_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expenditure-analyse")
	v.AddConfigPath(".expenditure-analyse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXPAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the environment, unprefixed.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. The column defaults match
// the header row of a typical Chinese bank statement export.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("columns.date_col", "日期")
	v.SetDefault("columns.time_col", "时间")
	v.SetDefault("columns.amount_col", "金额")
	v.SetDefault("columns.description_col", "商户/摘要")
	v.SetDefault("columns.type_col", "交易类型")
	v.SetDefault("columns.income_keyword", "收入")
	v.SetDefault("columns.expense_keyword", "支出")

	v.SetDefault("advice.high_dining_threshold", 0.20)
	v.SetDefault("advice.low_saving_threshold", 0.10)

	v.SetDefault("rules.file", "")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Columns.DateCol == "" || config.Columns.AmountCol == "" || config.Columns.DescriptionCol == "" {
		return fmt.Errorf("columns.date_col, columns.amount_col and columns.description_col must not be empty")
	}

	if config.Advice.HighDiningThreshold < 0 || config.Advice.HighDiningThreshold > 1 {
		return fmt.Errorf("advice.high_dining_threshold must be between 0 and 1, got: %v", config.Advice.HighDiningThreshold)
	}
	if config.Advice.LowSavingThreshold < 0 || config.Advice.LowSavingThreshold > 1 {
		return fmt.Errorf("advice.low_saving_threshold must be between 0 and 1, got: %v", config.Advice.LowSavingThreshold)
	}

	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
	}

	return nil
}
