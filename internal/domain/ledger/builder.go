package ledger

import (
	"sort"
	"strings"

	"auditledger/internal/core/types"
	"auditledger/internal/domain/records"
)

// Build produces the final ordered, deduplicated, balanced ledger for one
// fiscal period. Legacy receipts reconciled from invoice paid fields are
// deliberately NOT materialized as rows here; the itemized ledger is
// accrual-complete for sales and payment-complete for receipts, while the
// cash summary separately folds in legacy amounts.
func Build(set records.Set) []Entry {
	entries := buildRows(set)
	entries = DedupIdentity(entries)
	entries = DedupSemantic(entries)
	sortByDate(entries)
	recomputeBalance(entries)
	return entries
}

// buildRows constructs one row per normalized record, in fixed category
// insertion order. Ties on equal (or missing) dates keep this order under
// the stable sort, which makes the final ordering deterministic.
func buildRows(set records.Set) []Entry {
	entries := make([]Entry, 0,
		len(set.Invoices)+len(set.Payments)+len(set.SupplierPayments)+
			len(set.Purchases)+len(set.VehicleExpenses)+len(set.MiscExpenses))

	for _, inv := range set.Invoices {
		entries = append(entries, Entry{
			Source:      SourceInvoice,
			SourceID:    inv.ID,
			Date:        inv.Date,
			Particulars: fallback(inv.Description, "Sales Invoice - "+inv.Customer),
			Voucher:     fallback(inv.Reference, invoiceVoucher(inv.ID)),
			Category:    CategorySales,
			Credit:      inv.Amount,
		})
	}

	for _, pay := range set.Payments {
		entries = append(entries, Entry{
			Source:      SourcePayment,
			SourceID:    pay.ID,
			Date:        pay.Date,
			Particulars: fallback(pay.Description, "Receipt - "+pay.Customer),
			Voucher:     fallback(pay.Reference, fallback(pay.Mode, "-")),
			Category:    CategoryReceipt,
			Credit:      pay.Amount,
		})
	}

	for _, sp := range set.SupplierPayments {
		entries = append(entries, Entry{
			Source:      SourceSupplierPayment,
			SourceID:    sp.ID,
			Date:        sp.Date,
			Particulars: fallback(sp.Description, "Supplier Payment - "+sp.Supplier),
			Voucher:     fallback(sp.Reference, "-"),
			Category:    CategorySupplierPayment,
			Debit:       sp.Amount,
		})
	}

	for _, pur := range set.Purchases {
		particulars := fallback(pur.Type, "Purchase")
		if pur.ItemName != "" {
			particulars += " - " + pur.ItemName
		}
		entries = append(entries, Entry{
			Source:      SourcePurchase,
			SourceID:    pur.ID,
			Date:        pur.Date,
			Particulars: particulars,
			Voucher:     fallback(pur.InvoiceNo, fallback(pur.Supplier, "-")),
			Category:    CategoryPurchase,
			Debit:       pur.Amount,
		})
	}

	for _, ve := range set.VehicleExpenses {
		entries = append(entries, Entry{
			Source:      SourceVehicleExpense,
			SourceID:    ve.ID,
			Date:        ve.Date,
			Particulars: fallback(ve.Description, fallback(ve.Type, "Vehicle Expense")),
			Voucher:     "-",
			Category:    CategoryVehicleExpense,
			Debit:       ve.Amount,
		})
	}

	for _, me := range set.MiscExpenses {
		entries = append(entries, Entry{
			Source:      SourceMiscExpense,
			SourceID:    me.ID,
			Date:        me.Date,
			Particulars: fallback(me.Description, fallback(me.Type, CategoryExpense)),
			Voucher:     fallback(me.Reference, "-"),
			Category:    fallback(me.Type, CategoryExpense),
			Debit:       me.Amount,
		})
	}

	return entries
}

// sortByDate orders entries ascending by date. The sort is stable so rows
// with equal dates keep their insertion order.
func sortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortDate().Before(entries[j].sortDate())
	})
}

// recomputeBalance recalculates the running balance from zero in the
// current order: balance += credit - debit.
func recomputeBalance(entries []Entry) {
	balance := types.Zero()
	for i := range entries {
		balance = balance.Add(entries[i].Credit).Sub(entries[i].Debit)
		entries[i].RunningBalance = balance
	}
}

// invoiceVoucher derives a voucher number from the invoice ID:
// INV- plus the first six characters, uppercased.
func invoiceVoucher(id string) string {
	short := id
	if len(short) > 6 {
		short = short[:6]
	}
	return "INV-" + strings.ToUpper(short)
}

func fallback(value, alt string) string {
	if value != "" {
		return value
	}
	return alt
}
