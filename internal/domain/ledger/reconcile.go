package ledger

import (
	"time"

	"auditledger/internal/core/types"
	"auditledger/internal/domain/records"
)

// LegacyReceipt is the portion of an invoice's cumulative amountPaid field
// not covered by any explicit Payment record. It exists only in the cash
// summary and the receipts time series, dated by the invoice date; it is
// never a ledger row of its own.
type LegacyReceipt struct {
	InvoiceID string
	Date      *time.Time
	Amount    types.Money
}

// Reconciliation is the result of matching invoice paid fields against
// explicit payment records.
type Reconciliation struct {
	Receipts []LegacyReceipt
	Total    types.Money
}

// ReconcileLegacyReceipts computes, per invoice,
// max(0, amountPaid - sum of payments linked to that invoice). Explicit
// payments exceeding the legacy field clamp the remainder to zero rather
// than going negative.
func ReconcileLegacyReceipts(invoices []records.Invoice, payments []records.Payment) Reconciliation {
	recorded := make(map[string]types.Money, len(payments))
	for _, pay := range payments {
		if pay.InvoiceID == "" {
			continue
		}
		recorded[pay.InvoiceID] = recorded[pay.InvoiceID].Add(pay.Amount)
	}

	result := Reconciliation{Total: types.Zero()}
	for _, inv := range invoices {
		legacy := types.MaxZero(inv.AmountPaid.Sub(recorded[inv.ID]))
		if legacy.IsZero() {
			continue
		}
		result.Receipts = append(result.Receipts, LegacyReceipt{
			InvoiceID: inv.ID,
			Date:      inv.Date,
			Amount:    legacy,
		})
		result.Total = result.Total.Add(legacy)
	}
	return result
}
