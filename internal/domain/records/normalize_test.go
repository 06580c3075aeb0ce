package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestNormalize_PartitionsTransactionsByType(t *testing.T) {
	raw := RawSets{
		Transactions: []Document{
			{ID: "i1", Type: "Invoice", Fields: Fields{"amount": 1000.0, "amountPaid": 400.0, "customerName": "Acme"}},
			{ID: "p1", Type: "Payment", Fields: Fields{"amount": 400.0, "invoiceId": "i1"}},
			{ID: "s1", Type: "SupplierPayment", Fields: Fields{"amount": 300.0, "supplierName": "Steel Co"}},
			{ID: "e1", Type: "Office Expense", Fields: Fields{"amount": 50.0}},
			{ID: "e2", Type: "Salary", Fields: Fields{"amount": 900.0}},
			{ID: "e3", Type: "Wages", Fields: Fields{"amount": 120.0}},
			{ID: "x1", Type: "Transfer", Fields: Fields{"amount": 999.0}},
			{ID: "x2", Type: "", Fields: Fields{"amount": 999.0}},
		},
	}

	set := Normalize(raw)

	require.Len(t, set.Invoices, 1)
	assert.Equal(t, "i1", set.Invoices[0].ID)
	assert.Equal(t, "Acme", set.Invoices[0].Customer)
	assert.Equal(t, "1000", set.Invoices[0].Amount.String())
	assert.Equal(t, "400", set.Invoices[0].AmountPaid.String())

	require.Len(t, set.Payments, 1)
	assert.Equal(t, "i1", set.Payments[0].InvoiceID)

	require.Len(t, set.SupplierPayments, 1)
	assert.Equal(t, "Steel Co", set.SupplierPayments[0].Supplier)

	// Transfer and empty types are neither known nor expense-like.
	require.Len(t, set.MiscExpenses, 3)
	assert.Equal(t, "Office Expense", set.MiscExpenses[0].Type)
	assert.Equal(t, "Salary", set.MiscExpenses[1].Type)
	assert.Equal(t, "Wages", set.MiscExpenses[2].Type)
}

func TestIsMiscExpenseType(t *testing.T) {
	tests := []struct {
		typ  string
		want bool
	}{
		{"Office Expense", true},
		{"expense", true},
		{"SALARY", true},
		{"Daily Wages", true},
		{"Transfer", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMiscExpenseType(tt.typ), "type %q", tt.typ)
	}
}

func TestPurchaseValue_AliasPriority(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{"amount wins", Fields{"amount": 100.0, "totalAmount": 999.0}, "100"},
		{"totalAmount next", Fields{"totalAmount": 200.0, "total": 999.0}, "200"},
		{"total next", Fields{"total": 300.0, "grandTotal": 999.0}, "300"},
		{"grandTotal next", Fields{"grandTotal": 400.0, "netAmount": 999.0}, "400"},
		{"netAmount last alias", Fields{"netAmount": 500.0}, "500"},
		{"quantity times unitCost fallback", Fields{"quantity": 3.0, "unitCost": 25.0}, "75"},
		{"nothing present", Fields{}, "0"},
		{"quantity without unitCost", Fields{"quantity": 3.0}, "0"},
		{"present garbage stops the chain", Fields{"amount": "n/a", "totalAmount": 999.0}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PurchaseValue(tt.fields).String())
		})
	}
}

func TestVehicleExpenseValue_AliasPriority(t *testing.T) {
	assert.Equal(t, "10", VehicleExpenseValue(Fields{"amount": 10.0, "cost": 999.0}).String())
	assert.Equal(t, "20", VehicleExpenseValue(Fields{"cost": 20.0, "total": 999.0}).String())
	assert.Equal(t, "30", VehicleExpenseValue(Fields{"total": 30.0}).String())
	assert.Equal(t, "0", VehicleExpenseValue(Fields{}).String())
}

func TestNormalize_MissingAmountsCoerceToZero(t *testing.T) {
	raw := RawSets{
		Transactions: []Document{
			{ID: "i1", Type: "Invoice", Fields: Fields{"amount": "not a number"}},
			{ID: "p1", Type: "Payment", Fields: Fields{}},
		},
	}

	set := Normalize(raw)

	require.Len(t, set.Invoices, 1)
	assert.True(t, set.Invoices[0].Amount.IsZero())
	require.Len(t, set.Payments, 1)
	assert.True(t, set.Payments[0].Amount.IsZero())
}

func TestNormalize_GstDocumentItems(t *testing.T) {
	raw := RawSets{
		GstDocuments: []Document{
			{
				ID:   "g1",
				Date: datePtr("2024-06-01"),
				Fields: Fields{
					"amount": 236.0,
					"items": []any{
						map[string]any{"price": 100.0, "quantity": 2.0, "gstRate": 18.0},
						map[string]any{"price": "bad"},
						"not an object",
					},
				},
			},
		},
	}

	set := Normalize(raw)

	require.Len(t, set.GstDocuments, 1)
	doc := set.GstDocuments[0]
	assert.Equal(t, "236", doc.Amount.String())
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "100", doc.Items[0].Price.String())
	assert.Equal(t, "2", doc.Items[0].Quantity.String())
	assert.Equal(t, "18", doc.Items[0].Rate.String())
	assert.True(t, doc.Items[1].Price.IsZero())
}

func TestNormalize_Suppliers(t *testing.T) {
	raw := RawSets{
		Suppliers: []Document{
			{ID: "s1", Fields: Fields{"name": "Steel Co", "balance": 1500.0}},
			{ID: "s2", Fields: Fields{"name": "Paint Co", "balance": -200.0}},
		},
	}

	set := Normalize(raw)

	require.Len(t, set.Suppliers, 2)
	assert.Equal(t, "1500", set.Suppliers[0].Balance.String())
	assert.Equal(t, "-200", set.Suppliers[1].Balance.String())
}
