// Package root contains the root command for the application
package root

import (
	"github.com/zxfpro/expenditure-analyse/internal/classifier"
	"github.com/zxfpro/expenditure-analyse/internal/config"
	"github.com/zxfpro/expenditure-analyse/internal/insight"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/parser"
	"github.com/zxfpro/expenditure-analyse/internal/pipeline"
	"github.com/zxfpro/expenditure-analyse/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Strict bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the resolved application configuration
	AppConfig *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expenditure-analyse",
		Short: "A CLI tool to analyze bank statement CSV files and answer spending questions.",
		Long: `expenditure-analyse classifies bank statement transactions into spending
categories, produces an analysis report with advice, and answers
natural-language questions about the analyzed data.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expenditure-analyse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file for classified transactions")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Strict, "strict", false, "Fail the whole load on any malformed row instead of skipping it")
}

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// BuildPipeline assembles the analysis pipeline from the resolved
// configuration and flags.
func BuildPipeline() (*pipeline.Pipeline, error) {
	logger := GetLogger()

	ruleStore := store.NewRuleStore(AppConfig.Rules.File, logger)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		return nil, err
	}

	// The lenient row path pairs with per-row classification, the strict
	// table path with the bulk pass.
	var p parser.Parser
	var classify classifier.Strategy
	if SharedFlags.Strict {
		p = parser.NewStrictTableParser(logger)
		classify = classifier.ApplyCategories
	} else {
		p = parser.NewLenientRowParser(logger)
		classify = classifier.PerRow
	}

	var generator insight.Generator
	if AppConfig.AI.Enabled {
		generator = insight.NewGeminiGenerator(AppConfig.AI.APIKey, AppConfig.AI.Model)
	}

	return pipeline.New(AppConfig, p, rules, classify, generator, logger), nil
}
