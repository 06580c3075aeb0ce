package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditledger/internal/core/types"
	"auditledger/internal/domain/records"
)

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestReconcile_PaidFieldWithoutPaymentRecord(t *testing.T) {
	// One invoice fully paid via the legacy cumulative field only.
	invoices := []records.Invoice{
		{ID: "i1", Date: datePtr("2024-05-10"), Amount: types.NewMoney(10000), AmountPaid: types.NewMoney(10000)},
	}

	rec := ReconcileLegacyReceipts(invoices, nil)

	assert.Equal(t, "10000", rec.Total.String())
	require.Len(t, rec.Receipts, 1)
	assert.Equal(t, "i1", rec.Receipts[0].InvoiceID)
	assert.Equal(t, datePtr("2024-05-10"), rec.Receipts[0].Date)
}

func TestReconcile_ExplicitPaymentCoversPaidField(t *testing.T) {
	// Same invoice plus an explicit payment record: nothing legacy remains.
	invoices := []records.Invoice{
		{ID: "i1", Amount: types.NewMoney(10000), AmountPaid: types.NewMoney(10000)},
	}
	payments := []records.Payment{
		{ID: "p1", InvoiceID: "i1", Amount: types.NewMoney(10000)},
	}

	rec := ReconcileLegacyReceipts(invoices, payments)

	assert.True(t, rec.Total.IsZero())
	assert.Empty(t, rec.Receipts)
}

func TestReconcile_PartialPaymentRecord(t *testing.T) {
	invoices := []records.Invoice{
		{ID: "i1", Amount: types.NewMoney(10000), AmountPaid: types.NewMoney(6000)},
	}
	payments := []records.Payment{
		{ID: "p1", InvoiceID: "i1", Amount: types.NewMoney(2500)},
		{ID: "p2", InvoiceID: "i1", Amount: types.NewMoney(1500)},
	}

	rec := ReconcileLegacyReceipts(invoices, payments)

	assert.Equal(t, "2000", rec.Total.String())
}

func TestReconcile_OverRecordedPaymentsClampToZero(t *testing.T) {
	// Explicit payments exceeding the legacy field never go negative.
	invoices := []records.Invoice{
		{ID: "i1", Amount: types.NewMoney(10000), AmountPaid: types.NewMoney(1000)},
	}
	payments := []records.Payment{
		{ID: "p1", InvoiceID: "i1", Amount: types.NewMoney(50000)},
	}

	rec := ReconcileLegacyReceipts(invoices, payments)

	assert.True(t, rec.Total.IsZero())
	assert.Empty(t, rec.Receipts)
}

func TestReconcile_UnlinkedPaymentsDoNotReduceLegacy(t *testing.T) {
	invoices := []records.Invoice{
		{ID: "i1", Amount: types.NewMoney(5000), AmountPaid: types.NewMoney(5000)},
	}
	payments := []records.Payment{
		{ID: "p1", InvoiceID: "", Amount: types.NewMoney(5000)},
		{ID: "p2", InvoiceID: "other", Amount: types.NewMoney(5000)},
	}

	rec := ReconcileLegacyReceipts(invoices, payments)

	assert.Equal(t, "5000", rec.Total.String())
}
