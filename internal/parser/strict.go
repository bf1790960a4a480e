package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/zxfpro/expenditure-analyse/internal/config"
	"github.com/zxfpro/expenditure-analyse/internal/dateutils"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"
	"github.com/zxfpro/expenditure-analyse/internal/parsererror"
)

// StrictTableParser reads the statement as a whole table. Only the date,
// amount and description columns are required; an optional time column is
// merged into the timestamp. Any unparseable date, time or amount fails the
// entire load. The income flag is derived strictly from the amount sign.
type StrictTableParser struct {
	BaseParser
}

// NewStrictTableParser creates a StrictTableParser with the given logger.
func NewStrictTableParser(logger logging.Logger) *StrictTableParser {
	return &StrictTableParser{BaseParser: NewBaseParser(logger)}
}

// Name identifies the strategy.
func (p *StrictTableParser) Name() string {
	return "StrictTable"
}

// Parse implements Parser.
func (p *StrictTableParser) Parse(r io.Reader, mapping config.ColumnMapping) ([]models.Transaction, error) {
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
	required := []string{mapping.DateCol, mapping.AmountCol, mapping.DescriptionCol}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, &parsererror.ValidationError{
				FilePath: "(from reader)",
				Reason:   fmt.Sprintf("missing required column '%s'", col),
			}
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: p.Name(),
			Field:  "body",
			Value:  "record rows",
			Err:    err,
		}
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		dateStr := cell(record, columns, mapping.DateCol)
		date, err := dateutils.ParseDate(dateStr)
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: p.Name(),
				Field:  mapping.DateCol,
				Value:  dateStr,
				Err:    err,
			}
		}

		// Unlike the lenient path, a present but unparseable time value
		// fails the load instead of degrading to midnight.
		if timeStr := cell(record, columns, mapping.TimeCol); timeStr != "" {
			tod, err := dateutils.ParseTime(timeStr)
			if err != nil {
				return nil, &parsererror.ParseError{
					Parser: p.Name(),
					Field:  mapping.TimeCol,
					Value:  timeStr,
					Err:    err,
				}
			}
			date = dateutils.CombineDateTime(date, tod)
		}

		amountStr := cell(record, columns, mapping.AmountCol)
		amount, err := models.ParseAmount(amountStr)
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: p.Name(),
				Field:  mapping.AmountCol,
				Value:  amountStr,
				Err:    err,
			}
		}

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Amount:      amount,
			Description: cell(record, columns, mapping.DescriptionCol),
			IsIncome:    amount.IsPositive(),
		})
	}

	p.Logger().WithField(logging.FieldCount, len(transactions)).Debug("Parsed statement table")
	return transactions, nil
}
