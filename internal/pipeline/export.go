package pipeline

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/zxfpro/expenditure-analyse/internal/dateutils"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/parsererror"
)

// exportRow is the flat CSV shape of a classified transaction.
type exportRow struct {
	Date        string `csv:"日期"`
	Time        string `csv:"时间"`
	Description string `csv:"商户/摘要"`
	Amount      string `csv:"金额"`
	Category    string `csv:"类别"`
	Type        string `csv:"交易类型"`
}

// ExportCSV writes the session's classified transactions to a CSV file. The
// session must hold analyzed data.
func (p *Pipeline) ExportCSV(path string, session *Session) error {
	txs, _, ok := session.Snapshot()
	if !ok {
		return &parsererror.NotLoadedError{}
	}

	rows := make([]exportRow, 0, len(txs))
	for _, tx := range txs {
		txType := p.cfg.Columns.ExpenseKeyword
		if tx.IsIncome {
			txType = p.cfg.Columns.IncomeKeyword
		}
		rows = append(rows, exportRow{
			Date:        tx.Date.Format(dateutils.DateLayoutISO),
			Time:        tx.Date.Format("15:04:05"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category,
			Type:        txType,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Exported classified transactions to CSV file")
	return nil
}
