// =============================================================================
// Disbursement Report Generator - Report Builder
// =============================================================================
//
// This module orchestrates the three sheets of a disbursement report:
//
//   Transaction : all purchase records, in input order
//   Refund      : all refund records, in input order
//   Ledger      : purchases and refunds merged, ascending by transaction date
//
// Each sheet gets its own context, computed from its own data in a scan
// phase that completes before any row is emitted. The Ledger sheet never
// shows the TERMINAL ID column, even when underlying records carry one.
//
// =============================================================================

package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/heggies-id/disbursement-report/internal/format"
	"github.com/heggies-id/disbursement-report/internal/schema"
	"github.com/heggies-id/disbursement-report/internal/types"
)

// Sheet names, in creation order.
const (
	SheetTransaction = "Transaction"
	SheetRefund      = "Refund"
	SheetLedger      = "Ledger"
)

// BuildReport assembles the full three-sheet report document.
//
// PARAMETERS:
//   - purchaseRecords: Records from the purchase sub-report. Left unmodified.
//   - refundRecords: Records from the refund sub-report. Left unmodified;
//     may be empty or nil when the period had no refunds.
//
// RETURNS:
//   - The assembled excelize document, ready to be saved or encoded as an
//     attachment.
//   - An error if any record carries an unparseable date; no partial
//     document is returned.
func BuildReport(purchaseRecords, refundRecords []types.TransactionRecord) (*excelize.File, error) {
	purchases := tagRecords(purchaseRecords, types.TransactionTypePurchase)
	refunds := tagRecords(refundRecords, types.TransactionTypeRefund)

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	if err := BuildWorksheet(f, SheetTransaction, purchases, schema.ReportContext{
		TransactionType:              types.TransactionTypePurchase,
		HasTransactionWithTerminalID: hasTerminalID(purchases),
	}); err != nil {
		return nil, err
	}

	if err := BuildWorksheet(f, SheetRefund, refunds, schema.ReportContext{
		TransactionType:              types.TransactionTypeRefund,
		HasTransactionWithTerminalID: hasTerminalID(refunds),
	}); err != nil {
		return nil, err
	}

	ledger, err := mergeLedger(purchases, refunds)
	if err != nil {
		return nil, err
	}
	// The zero-valued context keeps both conditional columns off the
	// ledger: it never shows REFUND IDS or TERMINAL ID, even when the
	// underlying records carry them.
	if err := BuildWorksheet(f, SheetLedger, ledger, schema.ReportContext{}); err != nil {
		return nil, err
	}

	// Drop excelize's default sheet and land readers on the first report
	// sheet when they open the file.
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet %q: %w", defaultSheet, err)
	}
	index, err := f.GetSheetIndex(SheetTransaction)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	return f, nil
}

// tagRecords copies the input and assigns the transaction type to every
// copy. The originals stay untouched; a record's type is assigned exactly
// once per report run.
func tagRecords(records []types.TransactionRecord, txType types.TransactionType) []types.TransactionRecord {
	tagged := make([]types.TransactionRecord, len(records))
	for i, record := range records {
		record.TransactionType = txType
		tagged[i] = record
	}
	return tagged
}

// hasTerminalID reports whether any record in the list carries a terminal
// ID. The first match wins; which record matched carries no further meaning.
func hasTerminalID(records []types.TransactionRecord) bool {
	for _, record := range records {
		if record.TerminalID != "" {
			return true
		}
	}
	return false
}

// mergeLedger concatenates the tagged purchase and refund lists and orders
// the result by transaction date, ascending. The sort is stable and
// purchases are concatenated first, so equal dates keep purchases before
// refunds.
func mergeLedger(purchases, refunds []types.TransactionRecord) ([]types.TransactionRecord, error) {
	merged := make([]types.TransactionRecord, 0, len(purchases)+len(refunds))
	merged = append(merged, purchases...)
	merged = append(merged, refunds...)

	// Scan phase: parse every date up front so a bad record aborts the run
	// before any ordering decision is made on garbage.
	dates := make([]int64, len(merged))
	for i, record := range merged {
		t, err := format.ParseDate(record.TransactionDate)
		if err != nil {
			return nil, err
		}
		dates[i] = t.UnixNano()
	}

	indexes := make([]int, len(merged))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return dates[indexes[a]] < dates[indexes[b]]
	})

	ordered := make([]types.TransactionRecord, len(merged))
	for i, idx := range indexes {
		ordered[i] = merged[idx]
	}
	return ordered, nil
}
