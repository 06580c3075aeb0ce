// Package ledger builds the chronological, deduplicated audit ledger
// with a running balance from normalized record sets.
package ledger

import (
	"time"

	"auditledger/internal/core/types"
)

// Source identifiers for ledger rows.
const (
	SourceInvoice         = "invoice"
	SourcePayment         = "payment"
	SourceSupplierPayment = "supplier_payment"
	SourcePurchase        = "purchase"
	SourceVehicleExpense  = "vehicle_expense"
	SourceMiscExpense     = "expense"
)

// Category labels for ledger rows.
const (
	CategorySales           = "Sales"
	CategoryReceipt         = "Receipt"
	CategorySupplierPayment = "Supplier Payment"
	CategoryPurchase        = "Purchase"
	CategoryVehicleExpense  = "Vehicle Expense"
	CategoryExpense         = "Expense"
)

// Entry is one itemized, dated financial movement. At most one of
// Debit/Credit is non-zero by construction; a row where no amount was
// found stays in the ledger as a zero row rather than being dropped.
type Entry struct {
	Source      string      `json:"source"`
	SourceID    string      `json:"sourceId"`
	Date        *time.Time  `json:"date"`
	Particulars string      `json:"particulars"`
	Voucher     string      `json:"voucher"`
	Category    string      `json:"category"`
	Debit       types.Money `json:"debit"`
	Credit      types.Money `json:"credit"`

	// RunningBalance is only meaningful over the current deduplicated,
	// date-sorted sequence. It is recomputed from zero after every
	// structural change, never patched incrementally.
	RunningBalance types.Money `json:"runningBalance"`
}

// sortDate is the chronological sort key. Rows without a usable date
// sort as if dated at the Unix epoch, ahead of everything real.
func (e Entry) sortDate() time.Time {
	if e.Date == nil {
		return time.Unix(0, 0).UTC()
	}
	return *e.Date
}
