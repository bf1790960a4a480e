// Package parser provides the statement parsing strategies. Two strategies
// share one interface but keep deliberately different error semantics: the
// lenient parser skips malformed rows with a diagnostic, the strict parser
// fails the whole load on the first malformed value. Callers pick the
// behavior; the strategies are never silently merged.
package parser

import (
	"io"

	"github.com/zxfpro/expenditure-analyse/internal/config"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"
)

// Parser reads a delimited statement table from r and returns transactions
// with Date, Amount, Description and IsIncome populated. Category assignment
// happens downstream; each strategy is paired with its own classification
// variant by the pipeline.
type Parser interface {
	Parse(r io.Reader, mapping config.ColumnMapping) ([]models.Transaction, error)

	// Name identifies the strategy for logging and error context.
	Name() string
}

// BaseParser provides common functionality for parser implementations.
// Strategies embed it to inherit logger handling.
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser with the provided logger, falling back
// to a default logger when nil.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Logger returns the current logger instance.
func (b *BaseParser) Logger() logging.Logger {
	return b.logger
}
