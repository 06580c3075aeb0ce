package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditledger/internal/core/types"
	"auditledger/internal/domain/records"
)

func TestBuild_RowConstruction(t *testing.T) {
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "abcdef123", Date: datePtr("2024-04-05"), Amount: types.NewMoney(1000), Customer: "Acme"},
		},
		Payments: []records.Payment{
			{ID: "p1", Date: datePtr("2024-04-06"), Amount: types.NewMoney(400), Customer: "Acme", Mode: "UPI"},
		},
		SupplierPayments: []records.SupplierPayment{
			{ID: "s1", Date: datePtr("2024-04-07"), Amount: types.NewMoney(300), Supplier: "Steel Co"},
		},
		Purchases: []records.Purchase{
			{ID: "pu1", Date: datePtr("2024-04-08"), Amount: types.NewMoney(150), Type: "Raw Material", ItemName: "Rods", InvoiceNo: "PN-9"},
		},
		VehicleExpenses: []records.VehicleExpense{
			{ID: "v1", Date: datePtr("2024-04-09"), Amount: types.NewMoney(80), Type: "Fuel"},
		},
		MiscExpenses: []records.MiscExpense{
			{ID: "m1", Date: datePtr("2024-04-10"), Amount: types.NewMoney(60), Type: "Salary"},
		},
	}

	entries := Build(set)
	require.Len(t, entries, 6)

	inv := entries[0]
	assert.Equal(t, SourceInvoice, inv.Source)
	assert.Equal(t, "Sales Invoice - Acme", inv.Particulars)
	assert.Equal(t, "INV-ABCDEF", inv.Voucher)
	assert.Equal(t, CategorySales, inv.Category)
	assert.Equal(t, "1000", inv.Credit.String())
	assert.True(t, inv.Debit.IsZero())

	pay := entries[1]
	assert.Equal(t, "Receipt - Acme", pay.Particulars)
	assert.Equal(t, "UPI", pay.Voucher)
	assert.Equal(t, "400", pay.Credit.String())

	sp := entries[2]
	assert.Equal(t, "Supplier Payment - Steel Co", sp.Particulars)
	assert.Equal(t, "300", sp.Debit.String())
	assert.True(t, sp.Credit.IsZero())

	pur := entries[3]
	assert.Equal(t, "Raw Material - Rods", pur.Particulars)
	assert.Equal(t, "PN-9", pur.Voucher)
	assert.Equal(t, "150", pur.Debit.String())

	ve := entries[4]
	assert.Equal(t, "Fuel", ve.Particulars)
	assert.Equal(t, "80", ve.Debit.String())

	me := entries[5]
	assert.Equal(t, "Salary", me.Category)
	assert.Equal(t, "60", me.Debit.String())
}

func TestBuild_VoucherFallbacks(t *testing.T) {
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "ab", Amount: types.NewMoney(10), Reference: ""},
			{ID: "x", Amount: types.NewMoney(10), Reference: "REF-1"},
		},
		Payments: []records.Payment{
			{ID: "p1", Amount: types.NewMoney(10)},
		},
		Purchases: []records.Purchase{
			{ID: "pu1", Amount: types.NewMoney(10), Supplier: "Steel Co"},
		},
	}

	entries := Build(set)
	require.Len(t, entries, 4)

	// Short invoice IDs use the whole ID.
	assert.Equal(t, "INV-AB", entries[0].Voucher)
	assert.Equal(t, "REF-1", entries[1].Voucher)
	// Payment with neither reference nor mode.
	assert.Equal(t, "-", entries[2].Voucher)
	// Purchase without invoiceNo falls back to supplier.
	assert.Equal(t, "Steel Co", entries[3].Voucher)
}

func TestBuild_SortsByDateWithNullsFirst(t *testing.T) {
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "late", Date: datePtr("2024-09-01"), Amount: types.NewMoney(1)},
			{ID: "early", Date: datePtr("2024-04-02"), Amount: types.NewMoney(1)},
		},
		Payments: []records.Payment{
			{ID: "undated", Amount: types.NewMoney(1)},
		},
	}

	entries := Build(set)
	require.Len(t, entries, 3)

	assert.Equal(t, "undated", entries[0].SourceID)
	assert.Equal(t, "early", entries[1].SourceID)
	assert.Equal(t, "late", entries[2].SourceID)
}

func TestBuild_EqualDatesKeepInsertionOrder(t *testing.T) {
	// Invoice rows are built before payment rows; a stable sort keeps
	// that order for identical dates.
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "i1", Date: datePtr("2024-05-01"), Amount: types.NewMoney(1)},
		},
		Payments: []records.Payment{
			{ID: "p1", Date: datePtr("2024-05-01"), Amount: types.NewMoney(1)},
		},
	}

	entries := Build(set)
	require.Len(t, entries, 2)
	assert.Equal(t, "i1", entries[0].SourceID)
	assert.Equal(t, "p1", entries[1].SourceID)
}

func TestBuild_RunningBalance(t *testing.T) {
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "i1", Date: datePtr("2024-04-01"), Amount: types.NewMoney(1000)},
		},
		SupplierPayments: []records.SupplierPayment{
			{ID: "s1", Date: datePtr("2024-04-02"), Amount: types.NewMoney(300)},
		},
		Payments: []records.Payment{
			{ID: "p1", Date: datePtr("2024-04-03"), Amount: types.NewMoney(500)},
		},
	}

	entries := Build(set)
	require.Len(t, entries, 3)

	assert.Equal(t, "1000", entries[0].RunningBalance.String())
	assert.Equal(t, "700", entries[1].RunningBalance.String())
	assert.Equal(t, "1200", entries[2].RunningBalance.String())
}

// The final running balance always equals total credits minus total
// debits over the deduplicated sequence.
func TestBuild_FinalBalanceEqualsCreditMinusDebit(t *testing.T) {
	set := records.Set{
		Invoices: []records.Invoice{
			{ID: "i1", Date: datePtr("2024-04-01"), Amount: types.NewMoney(1234.56)},
			{ID: "i2", Date: datePtr("2024-07-13"), Amount: types.NewMoney(99.99)},
		},
		Purchases: []records.Purchase{
			{ID: "pu1", Date: datePtr("2024-05-20"), Amount: types.NewMoney(431.07)},
		},
		MiscExpenses: []records.MiscExpense{
			{ID: "m1", Amount: types.NewMoney(12.5), Type: "Expense"},
		},
	}

	entries := Build(set)
	require.NotEmpty(t, entries)

	total := types.Zero()
	for _, e := range entries {
		total = total.Add(e.Credit).Sub(e.Debit)
	}
	assert.True(t, total.Equal(entries[len(entries)-1].RunningBalance))
}

func TestBuild_ZeroAmountRowsAreKept(t *testing.T) {
	// A record with no resolvable amount renders as a zero row, not dropped.
	set := records.Set{
		Purchases: []records.Purchase{
			{ID: "pu1", Date: datePtr("2024-06-01")},
		},
	}

	entries := Build(set)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Debit.IsZero())
	assert.True(t, entries[0].Credit.IsZero())
	assert.True(t, entries[0].RunningBalance.IsZero())
}
