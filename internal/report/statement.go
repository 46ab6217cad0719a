// Package report renders account statements as XLSX workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the statement sheet.
const SheetName = "Statement"

// ContentType is the MIME type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{"Kind", "Date", "Description", "Amount", "Counterparty", "Contribution"}

var widths = []float64{18, 12, 30, 12, 20, 14}

// counterparty returns the other side of a transfer as seen by the account.
func counterparty(account string, t domain.Transaction) string {
	var tr *domain.Transfer

	switch v := t.(type) {
	case *domain.Transfer:
		tr = v
	case *domain.IncomingTransfer:
		tr = &v.Transfer
	case *domain.OutgoingTransfer:
		tr = &v.Transfer
	default:
		return ""
	}

	if tr.Sender() == account {
		return tr.Recipient()
	}

	return tr.Sender()
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// WriteStatement writes a workbook listing txs of the account, one row per
// transaction, followed by a balance row.
func WriteStatement(w io.Writer, account string, txs []domain.Transaction, balance decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range headers {
		if err := f.SetCellValue(SheetName, cell(i+1, 1), h); err != nil {
			return err
		}
	}

	for i, t := range txs {
		row := i + 2

		values := []any{
			string(t.Kind()),
			t.Date(),
			t.Description(),
			t.Amount().InexactFloat64(),
			counterparty(account, t),
			t.Contribution().InexactFloat64(),
		}

		for col, v := range values {
			if err := f.SetCellValue(SheetName, cell(col+1, row), v); err != nil {
				return err
			}
		}
	}

	last := len(txs) + 2

	if err := f.SetCellValue(SheetName, cell(1, last), "Balance"); err != nil {
		return err
	}

	if err := f.SetCellValue(SheetName, cell(len(headers), last), balance.InexactFloat64()); err != nil {
		return err
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: "Statement of " + account}); err != nil {
		return err
	}

	return f.Write(w)
}
