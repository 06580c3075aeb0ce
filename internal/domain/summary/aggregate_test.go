package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"auditledger/internal/core/types"
	"auditledger/internal/domain/ledger"
	"auditledger/internal/domain/records"
)

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestAggregate_RevenueAndReceipts(t *testing.T) {
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "i1", Amount: types.NewMoney(10000), AmountPaid: types.NewMoney(4000)},
			{ID: "i2", Amount: types.NewMoney(5000), AmountPaid: types.NewMoney(5000)},
		},
		Payments: []records.Payment{
			{ID: "p1", InvoiceID: "i1", Amount: types.NewMoney(4000)},
		},
	}
	legacy := ledger.ReconcileLegacyReceipts(set.Invoices, set.Payments)

	a := Aggregate(set, legacy)

	// Accrual revenue counts full invoice value.
	assert.Equal(t, "15000", a.GrossRevenue.String())
	// Cash receipts: explicit 4000 plus i2's 5000 legacy remainder.
	assert.Equal(t, "9000", a.CollectedReceipts.String())
	// Receivables: i1 still owes 6000, i2 nothing.
	assert.Equal(t, "6000", a.Receivables.String())
}

func TestAggregate_OperatingExpenseAndNetProfit(t *testing.T) {
	set := records.Set{
		Payments: []records.Payment{
			{ID: "p1", Amount: types.NewMoney(1000)},
		},
		Purchases: []records.Purchase{
			{ID: "pu1", Amount: types.NewMoney(200)},
		},
		VehicleExpenses: []records.VehicleExpense{
			{ID: "v1", Amount: types.NewMoney(100)},
		},
		SupplierPayments: []records.SupplierPayment{
			{ID: "s1", Amount: types.NewMoney(150)},
		},
		MiscExpenses: []records.MiscExpense{
			{ID: "m1", Amount: types.NewMoney(50)},
		},
	}

	a := Aggregate(set, ledger.Reconciliation{Total: types.Zero()})

	assert.Equal(t, "500", a.OperatingExpense.String())
	// Cash-basis profit: receipts minus expenses, not accrual.
	assert.Equal(t, "500", a.NetProfit.String())
}

func TestAggregate_ReceivablesNeverNegative(t *testing.T) {
	// Overpaid invoice must not subtract from receivables.
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "i1", Amount: types.NewMoney(1000), AmountPaid: types.NewMoney(2500)},
			{ID: "i2", Amount: types.NewMoney(300), AmountPaid: types.Zero()},
		},
	}

	a := Aggregate(set, ledger.Reconciliation{Total: types.Zero()})

	assert.Equal(t, "300", a.Receivables.String())
}

func TestAggregate_PayablesClampNegativeBalances(t *testing.T) {
	set := records.Set{
		Suppliers: []records.Supplier{
			{ID: "s1", Balance: types.NewMoney(1500)},
			{ID: "s2", Balance: types.NewMoney(-400)},
		},
	}

	a := Aggregate(set, ledger.Reconciliation{Total: types.Zero()})

	assert.Equal(t, "1500", a.Payables.String())
}

func TestReduceGst_SingleItem(t *testing.T) {
	// One item {price 100, quantity 2, rate 18}: taxable 200, gst 36.
	docs := []records.GstDocument{
		{
			ID:     "g1",
			Amount: types.NewMoney(236),
			Items: []records.GstItem{
				{Price: types.NewMoney(100), Quantity: types.NewMoney(2), Rate: types.NewMoney(18)},
			},
		},
	}

	totals := ReduceGst(docs)

	assert.Equal(t, 1, totals.DocumentCount)
	assert.Equal(t, "200", totals.Taxable.String())
	assert.Equal(t, "36", totals.Gst.String())
	assert.Equal(t, "236", totals.InvoiceValue.String())
}

func TestReduceGst_MultipleDocuments(t *testing.T) {
	docs := []records.GstDocument{
		{
			ID:     "g1",
			Amount: types.NewMoney(118),
			Items: []records.GstItem{
				{Price: types.NewMoney(50), Quantity: types.NewMoney(2), Rate: types.NewMoney(18)},
			},
		},
		{
			ID:     "g2",
			Amount: types.NewMoney(105),
			Items: []records.GstItem{
				{Price: types.NewMoney(100), Quantity: types.NewMoney(1), Rate: types.NewMoney(5)},
			},
		},
		{ID: "g3", Amount: types.NewMoney(10)},
	}

	totals := ReduceGst(docs)

	assert.Equal(t, 3, totals.DocumentCount)
	assert.Equal(t, "200", totals.Taxable.String())
	assert.Equal(t, "23", totals.Gst.String())
	assert.Equal(t, "233", totals.InvoiceValue.String())
}
