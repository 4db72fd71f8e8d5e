// =============================================================================
// Disbursement Report Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - schema
//   - report
//   - summary
//   - mailer
//
// =============================================================================

package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// TransactionType classifies a transaction record as a purchase or a refund.
// The type is assigned once by the report builder when the record is ingested
// into a report run, and is immutable afterwards.
type TransactionType string

const (
	// TransactionTypePurchase marks records from the purchase sub-report.
	TransactionTypePurchase TransactionType = "Purchase"

	// TransactionTypeRefund marks records from the refund sub-report.
	TransactionTypeRefund TransactionType = "Refund"
)

// TransactionRecord represents a single purchase or refund event as it
// appears in the payment summary.
//
// Date fields are carried as the raw strings received from the upstream
// source; parsing and timezone normalization happen in the format package so
// that an unparseable value fails loudly at formatting time instead of being
// silently coerced at decode time.
type TransactionRecord struct {
	// MerchantName is the display name of the merchant being disbursed.
	MerchantName string `json:"merchantName"`

	// TransactionID is the merchant-side transaction identifier
	// (TRANSIDMERCHANT in the report).
	TransactionID string `json:"transactionId"`

	// TransactionDate is the raw timestamp of the transaction event.
	TransactionDate string `json:"transactionDate"`

	// CustomerName is the name of the paying customer.
	CustomerName string `json:"customerName"`

	// Amount is the gross transaction amount.
	Amount decimal.Decimal `json:"amount"`

	// Fee is the processing fee charged for the transaction.
	Fee decimal.Decimal `json:"fee"`

	// FeeTax is the tax on the fee. Optional; absent means zero, but the
	// coalescing happens at the row-mapping boundary so the record stays
	// honestly optional.
	FeeTax *decimal.Decimal `json:"feeTax,omitempty"`

	// MerchantSupport is an optional support/subsidy amount. Same optional
	// semantics as FeeTax.
	MerchantSupport *decimal.Decimal `json:"merchantSupport,omitempty"`

	// PayToMerchant is the net amount paid out to the merchant.
	PayToMerchant decimal.Decimal `json:"payToMerchant"`

	// PayoutDate is the raw timestamp of the disbursement payout.
	PayoutDate string `json:"payoutDate"`

	// Tenure is the loan repayment term. It is an opaque passthrough: the
	// upstream source sends either a string or a number and the report
	// renders it verbatim.
	Tenure Tenure `json:"transactionLoanTenure"`

	// TransactionType is assigned by the report builder, never present on
	// raw input.
	TransactionType TransactionType `json:"-"`

	// RefundIDs lists the refund identifiers attached to a refund record.
	// Only meaningful for refund-type records; may be empty.
	RefundIDs []string `json:"refundIds,omitempty"`

	// TerminalID identifies the point-of-sale device that initiated the
	// transaction. Only present for certain merchant integrations; empty
	// means absent.
	TerminalID string `json:"terminalId,omitempty"`
}

// =============================================================================
// TENURE PASSTHROUGH TYPE
// =============================================================================

// Tenure is the loan repayment term associated with a transaction. The
// upstream source is inconsistent about whether it sends "3" or 3, so the
// type accepts both JSON forms and preserves the literal rendering.
type Tenure string

// UnmarshalJSON accepts a JSON string or number and stores its verbatim text.
func (t *Tenure) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*t = Tenure(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*t = Tenure(asNumber.String())
		return nil
	}

	return fmt.Errorf("tenure must be a string or a number, got %s", string(data))
}

// String returns the tenure exactly as received.
func (t Tenure) String() string {
	return string(t)
}

// =============================================================================
// ATTACHMENT DESCRIPTOR
// =============================================================================

// Attachment is the email-attachment payload wrapping a finished report
// document. Content is the base64-encoded XLSX bytes.
type Attachment struct {
	// Type is the attachment MIME type.
	Type string `json:"type"`

	// Name is the attachment file name, including the .xlsx extension.
	Name string `json:"name"`

	// Content is the base64 (standard encoding) of the serialized document.
	Content string `json:"content"`
}
