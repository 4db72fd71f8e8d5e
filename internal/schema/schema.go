// =============================================================================
// Disbursement Report Generator - Column Schema Builder
// =============================================================================
//
// This module derives the ordered column layout for a report sheet from its
// ReportContext. Every sheet starts from the same fixed 13-column base; up to
// two conditional columns are appended depending on the context:
//
//   | Position | Header            | Row key          | Condition           |
//   |----------|-------------------|------------------|---------------------|
//   | 1-13     | NO ... TENURE     | (fixed base)     | always              |
//   | 14       | REFUND IDS        | refundIds        | refund sheet        |
//   | 15       | TERMINAL ID       | terminalId       | any record in the   |
//   |          |                   |                  | sheet has one       |
//
// The context is computed once per sheet by the report builder (scan phase)
// and frozen before any row is emitted, so a column can never appear or
// disappear mid-sheet.
//
// =============================================================================

package schema

import (
	"github.com/heggies-id/disbursement-report/internal/types"
)

// =============================================================================
// COLUMN DEFINITION
// =============================================================================

// ColumnDefinition describes one sheet column: its header label, the row key
// the row mapper fills it from, and its display width in Excel column units.
type ColumnDefinition struct {
	// Header is the label written in the sheet's first row.
	Header string

	// Key is the row-field key the column reads its cell values from.
	Key string

	// Width is the column display width.
	Width float64
}

// Row keys shared between the schema builder and the row mapper. The row
// mapper must emit exactly the keys the active schema declares.
const (
	KeyNo              = "no"
	KeyMerchantName    = "merchantName"
	KeyTransactionDate = "transactionDate"
	KeyTransactionID   = "transactionId"
	KeyCustomerName    = "customerName"
	KeyAmount          = "amount"
	KeyFee             = "fee"
	KeyFeeTax          = "feeTax"
	KeyMerchantSupport = "merchantSupport"
	KeyPayToMerchant   = "payToMerchant"
	KeyPayoutDate      = "payoutDate"
	KeyTransactionType = "transactionType"
	KeyTenure          = "transactionLoanTenure"
	KeyRefundIDs       = "refundIds"
	KeyTerminalID      = "terminalId"
)

// =============================================================================
// REPORT CONTEXT
// =============================================================================

// ReportContext is the per-sheet configuration consumed by the schema builder
// and the row mapper. It is computed from the sheet's own data, never
// globally: the Refund sheet may carry a TERMINAL ID column while the
// Transaction sheet does not, and vice versa.
type ReportContext struct {
	// TransactionType controls whether the REFUND IDS column appears and
	// whether row mapping includes the refundIds key.
	TransactionType types.TransactionType

	// HasTransactionWithTerminalID controls whether the TERMINAL ID column
	// appears. True when at least one record in the sheet's data carries a
	// terminal ID.
	HasTransactionWithTerminalID bool
}

// =============================================================================
// SCHEMA BUILDER
// =============================================================================

// baseColumns returns the fixed 13-column layout every sheet starts from.
// A fresh slice is returned on every call so appending conditional columns
// never mutates shared state.
func baseColumns() []ColumnDefinition {
	return []ColumnDefinition{
		{Header: "NO", Key: KeyNo, Width: 5},
		{Header: "MERCHANT NAME", Key: KeyMerchantName, Width: 25},
		{Header: "TRANSACTION DATE", Key: KeyTransactionDate, Width: 25},
		{Header: "TRANSIDMERCHANT", Key: KeyTransactionID, Width: 25},
		{Header: "CUSTOMER NAME", Key: KeyCustomerName, Width: 25},
		{Header: "AMOUNT", Key: KeyAmount, Width: 15},
		{Header: "FEE", Key: KeyFee, Width: 15},
		{Header: "TAX", Key: KeyFeeTax, Width: 15},
		{Header: "MERCHANT SUPPORT", Key: KeyMerchantSupport, Width: 18},
		{Header: "PAY TO MERCHANT", Key: KeyPayToMerchant, Width: 18},
		{Header: "PAY OUT DATE", Key: KeyPayoutDate, Width: 25},
		{Header: "TRANSACTION TYPE", Key: KeyTransactionType, Width: 18},
		{Header: "TENURE", Key: KeyTenure, Width: 10},
	}
}

// BuildColumns produces the ordered column layout for the given context.
// Conditional columns are appended after the fixed base, refundIds before
// terminalId.
func BuildColumns(ctx ReportContext) []ColumnDefinition {
	columns := baseColumns()

	if ctx.TransactionType == types.TransactionTypeRefund {
		columns = append(columns, ColumnDefinition{Header: "REFUND IDS", Key: KeyRefundIDs, Width: 30})
	}
	if ctx.HasTransactionWithTerminalID {
		columns = append(columns, ColumnDefinition{Header: "TERMINAL ID", Key: KeyTerminalID, Width: 15})
	}

	return columns
}
