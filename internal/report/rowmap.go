// =============================================================================
// Disbursement Report Generator - Row Mapper
// =============================================================================
//
// This module turns one TransactionRecord into a fully formatted row keyed by
// the schema package's column keys. The key set of a mapped row matches the
// column set produced by schema.BuildColumns for the same context, exactly:
// a purchase row never carries a refundIds key even if the raw record
// happened to have refund IDs attached.
//
// =============================================================================

package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heggies-id/disbursement-report/internal/format"
	"github.com/heggies-id/disbursement-report/internal/schema"
	"github.com/heggies-id/disbursement-report/internal/types"
)

// Row maps column keys to formatted cell values. Values are strings except
// for the "no" ordinal, which stays numeric so spreadsheet consumers can
// sort on it.
type Row map[string]any

// refundIDSeparator joins the refund IDs of a refund record into one cell.
const refundIDSeparator = ";"

// MapRow formats a single record into a row for the sheet it belongs to.
//
// PARAMETERS:
//   - record: The tagged transaction record.
//   - positionIndex: The 0-based position of the record within its sheet;
//     the NO cell is rendered 1-based.
//   - ctx: The frozen per-sheet context.
//
// RETURNS:
//   - The mapped row.
//   - An *format.InvalidDateError if either date on the record cannot be
//     parsed. The error aborts the whole report; no partial sheet survives.
func MapRow(record types.TransactionRecord, positionIndex int, ctx schema.ReportContext) (Row, error) {
	transactionDate, err := format.FormatDate(record.TransactionDate)
	if err != nil {
		return nil, err
	}
	payoutDate, err := format.FormatDate(record.PayoutDate)
	if err != nil {
		return nil, err
	}

	row := Row{
		schema.KeyNo:              positionIndex + 1,
		schema.KeyMerchantName:    record.MerchantName,
		schema.KeyTransactionDate: transactionDate,
		schema.KeyTransactionID:   record.TransactionID,
		schema.KeyCustomerName:    record.CustomerName,
		schema.KeyAmount:          format.Money(record.Amount),
		schema.KeyFee:             format.Money(record.Fee),
		schema.KeyFeeTax:          format.Money(coalesce(record.FeeTax)),
		schema.KeyMerchantSupport: format.Money(coalesce(record.MerchantSupport)),
		schema.KeyPayToMerchant:   format.Money(record.PayToMerchant),
		schema.KeyPayoutDate:      payoutDate,
		schema.KeyTransactionType: string(record.TransactionType),
		schema.KeyTenure:          record.Tenure.String(),
	}

	if ctx.TransactionType == types.TransactionTypeRefund {
		row[schema.KeyRefundIDs] = strings.Join(record.RefundIDs, refundIDSeparator)
	}
	if ctx.HasTransactionWithTerminalID {
		// The sheet has the column even when this specific record lacks a
		// terminal ID; such records get a blank cell.
		row[schema.KeyTerminalID] = record.TerminalID
	}

	return row, nil
}

// coalesce resolves an optional monetary field to zero when absent. This is
// the only place the feeTax/merchantSupport defaults are applied, so the
// record type stays honestly optional.
func coalesce(amount *decimal.Decimal) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return *amount
}
