package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/zxfpro/expenditure-analyse/internal/config"
	"github.com/zxfpro/expenditure-analyse/internal/dateutils"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"
	"github.com/zxfpro/expenditure-analyse/internal/parsererror"
)

// LenientRowParser reads the statement row by row. It requires an explicit
// transaction-type column in addition to date, amount and description, and
// skips individual malformed rows with a warning instead of failing the
// load. The income flag is taken from the type column's keywords first, the
// amount sign second.
type LenientRowParser struct {
	BaseParser
}

// NewLenientRowParser creates a LenientRowParser with the given logger.
func NewLenientRowParser(logger logging.Logger) *LenientRowParser {
	return &LenientRowParser{BaseParser: NewBaseParser(logger)}
}

// Name identifies the strategy.
func (p *LenientRowParser) Name() string {
	return "LenientRow"
}

// Parse implements Parser.
func (p *LenientRowParser) Parse(r io.Reader, mapping config.ColumnMapping) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &parsererror.ValidationError{
				FilePath: "(from reader)",
				Reason:   "file is empty or has no header",
			}
		}
		return nil, &parsererror.ParseError{
			Parser: p.Name(),
			Field:  "header",
			Value:  "header row",
			Err:    err,
		}
	}

	columns := indexColumns(header)
	required := []string{mapping.DateCol, mapping.AmountCol, mapping.DescriptionCol, mapping.TypeCol}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, &parsererror.ValidationError{
				FilePath: "(from reader)",
				Reason:   fmt.Sprintf("missing required column '%s'", col),
			}
		}
	}

	var transactions []models.Transaction
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			p.Logger().WithError(err).Warn("Skipping malformed CSV row")
			continue
		}

		tx, err := p.convertRow(record, columns, mapping)
		if err != nil {
			p.Logger().WithError(err).Warn("Skipping row due to data error",
				logging.Field{Key: logging.FieldRow, Value: strings.Join(record, ",")})
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// convertRow builds one transaction from a record, or reports why the row
// is unusable.
func (p *LenientRowParser) convertRow(record []string, columns map[string]int, mapping config.ColumnMapping) (models.Transaction, error) {
	dateStr := cell(record, columns, mapping.DateCol)
	timeStr := cell(record, columns, mapping.TimeCol)
	date, err := dateutils.ParseDateTime(dateStr, timeStr)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: p.Name(),
			Field:  mapping.DateCol,
			Value:  dateStr,
			Err:    err,
		}
	}

	amountStr := cell(record, columns, mapping.AmountCol)
	amount, err := models.ParseAmount(amountStr)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: p.Name(),
			Field:  mapping.AmountCol,
			Value:  amountStr,
			Err:    err,
		}
	}

	typeStr := cell(record, columns, mapping.TypeCol)
	var isIncome bool
	switch {
	case mapping.IncomeKeyword != "" && strings.Contains(typeStr, mapping.IncomeKeyword):
		isIncome = true
	case mapping.ExpenseKeyword != "" && strings.Contains(typeStr, mapping.ExpenseKeyword):
		isIncome = false
	default:
		isIncome = amount.IsPositive()
	}

	return models.Transaction{
		Date:        date,
		Amount:      amount,
		Description: cell(record, columns, mapping.DescriptionCol),
		IsIncome:    isIncome,
	}, nil
}

// indexColumns maps header names to their record index.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// cell returns the named column value of a record, or "" when the column is
// absent or the record is short.
func cell(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
