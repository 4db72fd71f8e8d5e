// =============================================================================
// Disbursement Report Generator - Payment Summary Ingestion
// =============================================================================
//
// This module decodes the payment-summary JSON supplied by the upstream
// disbursement service and checks it before any report is built.
//
// SUMMARY STRUCTURE:
//   {
//     "purchase": { merchant fields, "transactions": [...], "count", ... },
//     "refund":   { ... }   // may be entirely absent: zero refunds is valid
//   }
//
// VALIDATION STRATEGY:
//   Required fields absent on a record fail loudly with MissingFieldError
//   instead of surfacing later as a blank or garbled report cell. Monetary
//   fields are decoded as decimals; a non-numeric amount fails at decode
//   time. Date fields are deliberately NOT validated here: the formatters
//   own date parsing and raise InvalidDateError during report building.
//
// =============================================================================

package summary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/heggies-id/disbursement-report/internal/types"
)

// =============================================================================
// SUMMARY STRUCTURES
// =============================================================================

// PaymentSummary is the decoded disbursement payment summary: one purchase
// sub-report and an optional refund sub-report.
type PaymentSummary struct {
	// Purchase is the purchase sub-report. Always present.
	Purchase SubReport `json:"purchase"`

	// Refund is the refund sub-report. Nil when the period had no refunds;
	// the Refund and Ledger sheets are still produced.
	Refund *SubReport `json:"refund,omitempty"`
}

// SubReport is one side of the payment summary: the merchant being paid,
// the reporting period, and the transaction details backing the totals.
type SubReport struct {
	// MerchantName is the merchant this disbursement belongs to.
	MerchantName string `json:"merchantName"`

	// MerchantEmail is the delivery address for the report attachment.
	MerchantEmail string `json:"merchantEmail"`

	// ReportDate is the raw reporting-period date.
	ReportDate string `json:"reportDate"`

	// DisbursementAmount is the aggregate amount paid out.
	DisbursementAmount decimal.Decimal `json:"disbursementAmount"`

	// Transactions are the detail records behind the totals.
	Transactions []types.TransactionRecord `json:"transactions"`

	// Count is the number of transactions reported upstream.
	Count int `json:"count"`

	// TotalAmount is the aggregate transaction amount reported upstream.
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// =============================================================================
// MISSING FIELD ERROR
// =============================================================================

// MissingFieldError reports a required field absent on a transaction record.
type MissingFieldError struct {
	// Field is the JSON name of the missing field.
	Field string

	// TransactionID identifies the offending record when it at least had an
	// identifier; empty otherwise.
	TransactionID string

	// Section is the sub-report the record came from ("purchase"/"refund").
	Section string

	// Position is the 0-based index of the record within its sub-report.
	Position int
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.TransactionID != "" {
		return fmt.Sprintf("%s transaction %q (index %d): missing required field %q",
			e.Section, e.TransactionID, e.Position, e.Field)
	}
	return fmt.Sprintf("%s transaction at index %d: missing required field %q",
		e.Section, e.Position, e.Field)
}

// =============================================================================
// LOADING & VALIDATION
// =============================================================================

// Load reads and parses a payment summary from a JSON file.
func Load(path string) (*PaymentSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a payment summary from JSON and validates every transaction
// record.
//
// RETURNS:
//   - The decoded summary.
//   - A decode error for malformed JSON or non-numeric amounts, or a
//     *MissingFieldError for a record lacking a required field.
func Parse(data []byte) (*PaymentSummary, error) {
	var summary PaymentSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse payment summary: %w", err)
	}
	if err := summary.Validate(); err != nil {
		return nil, err
	}
	if err := validateAmountPresence(data); err != nil {
		return nil, err
	}
	return &summary, nil
}

// validateAmountPresence re-decodes the raw summary through pointer-typed
// shadows so that an absent amount, fee, or payToMerchant is told apart from
// a legitimate zero. A decimal zero-value cannot make that distinction.
func validateAmountPresence(data []byte) error {
	type recordShadow struct {
		TransactionID string           `json:"transactionId"`
		Amount        *decimal.Decimal `json:"amount"`
		Fee           *decimal.Decimal `json:"fee"`
		PayToMerchant *decimal.Decimal `json:"payToMerchant"`
	}
	type subReportShadow struct {
		Transactions []recordShadow `json:"transactions"`
	}
	var shadow struct {
		Purchase subReportShadow  `json:"purchase"`
		Refund   *subReportShadow `json:"refund"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return fmt.Errorf("failed to parse payment summary: %w", err)
	}

	type sectionShadow struct {
		name    string
		records []recordShadow
	}
	sections := []sectionShadow{{"purchase", shadow.Purchase.Transactions}}
	if shadow.Refund != nil {
		sections = append(sections, sectionShadow{"refund", shadow.Refund.Transactions})
	}

	for _, section := range sections {
		for i, record := range section.records {
			required := []struct {
				field string
				value *decimal.Decimal
			}{
				{"amount", record.Amount},
				{"fee", record.Fee},
				{"payToMerchant", record.PayToMerchant},
			}
			for _, check := range required {
				if check.value == nil {
					return &MissingFieldError{
						Field:         check.field,
						TransactionID: record.TransactionID,
						Section:       section.name,
						Position:      i,
					}
				}
			}
		}
	}
	return nil
}

// Validate checks every transaction record for the fields the report cannot
// be built without. Aggregate totals are passed through untouched: checking
// their business correctness is explicitly out of scope.
func (s *PaymentSummary) Validate() error {
	if err := validateRecords("purchase", s.Purchase.Transactions); err != nil {
		return err
	}
	if s.Refund != nil {
		if err := validateRecords("refund", s.Refund.Transactions); err != nil {
			return err
		}
	}
	return nil
}

// validateRecords checks the required fields of each record in one
// sub-report.
func validateRecords(section string, records []types.TransactionRecord) error {
	for i, record := range records {
		required := []struct {
			field string
			value string
		}{
			{"merchantName", record.MerchantName},
			{"transactionId", record.TransactionID},
			{"transactionDate", record.TransactionDate},
			{"customerName", record.CustomerName},
			{"payoutDate", record.PayoutDate},
		}
		for _, check := range required {
			if check.value == "" {
				return &MissingFieldError{
					Field:         check.field,
					TransactionID: record.TransactionID,
					Section:       section,
					Position:      i,
				}
			}
		}
	}
	return nil
}

// =============================================================================
// REFUND ACCESSORS
// =============================================================================
// The refund sub-report may be entirely absent. These accessors make the
// empty case a valid zero, never a crash.

// RefundTransactions returns the refund detail records, or nil when the
// refund sub-report is absent.
func (s *PaymentSummary) RefundTransactions() []types.TransactionRecord {
	if s.Refund == nil {
		return nil
	}
	return s.Refund.Transactions
}

// RefundCount returns the reported refund count, defaulting to 0 when the
// refund sub-report is absent.
func (s *PaymentSummary) RefundCount() int {
	if s.Refund == nil {
		return 0
	}
	return s.Refund.Count
}

// RefundTotal returns the reported refund total, defaulting to zero when the
// refund sub-report is absent.
func (s *PaymentSummary) RefundTotal() decimal.Decimal {
	if s.Refund == nil {
		return decimal.Zero
	}
	return s.Refund.TotalAmount
}
