// Package summary computes the scalar financial metrics and monthly time
// series of an audit report. Totals here are derived from the normalized
// record sets, not from the deduplicated ledger; the two may legitimately
// diverge by the reconciled legacy-receipt amount.
package summary

import (
	"auditledger/internal/core/types"
	"auditledger/internal/domain/ledger"
	"auditledger/internal/domain/records"
)

// Audit holds the aggregate scalars of one report. Recomputed in full on
// every generation; never persisted by the core itself.
type Audit struct {
	// GrossRevenue is accrual: invoice value at issuance.
	GrossRevenue types.Money `json:"grossRevenue"`

	// CollectedReceipts is cash: explicit payments plus legacy receipts.
	CollectedReceipts types.Money `json:"collectedReceipts"`

	OperatingExpense types.Money `json:"operatingExpense"`

	// NetProfit is cash-basis: collected receipts minus operating expense.
	NetProfit types.Money `json:"netProfit"`

	Receivables types.Money `json:"receivables"`
	Payables    types.Money `json:"payables"`

	GstDocsCount    int         `json:"gstDocsCount"`
	TaxableTurnover types.Money `json:"taxableTurnover"`
	EstimatedGst    types.Money `json:"estimatedGst"`
	GstInvoiceValue types.Money `json:"gstInvoiceValue"`
}

// Aggregate computes the audit summary from normalized records and the
// legacy-receipt reconciliation.
func Aggregate(set records.Set, legacy ledger.Reconciliation) Audit {
	var a Audit
	a.GrossRevenue = types.Zero()
	a.Receivables = types.Zero()
	for _, inv := range set.Invoices {
		a.GrossRevenue = a.GrossRevenue.Add(inv.Amount)
		a.Receivables = a.Receivables.Add(types.MaxZero(inv.Amount.Sub(inv.AmountPaid)))
	}

	paymentsTotal := types.Zero()
	for _, pay := range set.Payments {
		paymentsTotal = paymentsTotal.Add(pay.Amount)
	}
	a.CollectedReceipts = paymentsTotal.Add(legacy.Total)

	a.OperatingExpense = types.Zero()
	for _, pur := range set.Purchases {
		a.OperatingExpense = a.OperatingExpense.Add(pur.Amount)
	}
	for _, ve := range set.VehicleExpenses {
		a.OperatingExpense = a.OperatingExpense.Add(ve.Amount)
	}
	for _, sp := range set.SupplierPayments {
		a.OperatingExpense = a.OperatingExpense.Add(sp.Amount)
	}
	for _, me := range set.MiscExpenses {
		a.OperatingExpense = a.OperatingExpense.Add(me.Amount)
	}

	a.NetProfit = a.CollectedReceipts.Sub(a.OperatingExpense)

	a.Payables = types.Zero()
	for _, sup := range set.Suppliers {
		a.Payables = a.Payables.Add(types.MaxZero(sup.Balance))
	}

	gst := ReduceGst(set.GstDocuments)
	a.GstDocsCount = gst.DocumentCount
	a.TaxableTurnover = gst.Taxable
	a.EstimatedGst = gst.Gst
	a.GstInvoiceValue = gst.InvoiceValue

	return a
}
