// Package records normalizes raw, loosely-typed financial documents into
// canonical shapes the ledger and summary layers can trust.
package records

import (
	"time"

	"auditledger/internal/core/types"
)

// Transaction type discriminators as written by upstream capture flows.
const (
	TypeInvoice         = "Invoice"
	TypePayment         = "Payment"
	TypeSupplierPayment = "SupplierPayment"
)

// Fields is the loosely-typed payload of a stored document.
// Every field is optional and untrusted; accessors never fail.
type Fields map[string]any

// Amount returns the first present alias field coerced to Money.
// Presence wins over parseability: a present but garbage value coerces to
// zero and still stops the alias chain, matching upstream behavior.
func (f Fields) Amount(aliases ...string) (types.Money, bool) {
	for _, key := range aliases {
		if v, ok := f[key]; ok && v != nil {
			return types.CoerceMoney(v), true
		}
	}
	return types.Zero(), false
}

// Text returns the first present non-empty string among aliases, else "".
func (f Fields) Text(aliases ...string) string {
	for _, key := range aliases {
		if v, ok := f[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// List returns the field as a slice of nested Fields, or nil.
func (f Fields) List(key string) []Fields {
	raw, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Fields, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Fields(m))
		}
	}
	return out
}

// Document is one raw record fetched from the store. Read-only snapshot;
// the core never mutates it.
type Document struct {
	ID     string
	Type   string
	Date   *time.Time
	Fields Fields
}

// --- Canonical shapes ---

// Invoice is an accrual sale. AmountPaid is the legacy cumulative
// "money received" field reconciled against explicit Payments.
type Invoice struct {
	ID          string
	Date        *time.Time
	Amount      types.Money
	AmountPaid  types.Money
	Customer    string
	Description string
	Reference   string
}

// Payment is an explicit customer receipt, optionally linked to an invoice.
type Payment struct {
	ID          string
	Date        *time.Time
	Amount      types.Money
	InvoiceID   string
	Customer    string
	Description string
	Reference   string
	Mode        string
}

// SupplierPayment is money paid out to a supplier.
type SupplierPayment struct {
	ID          string
	Date        *time.Time
	Amount      types.Money
	Supplier    string
	Description string
	Reference   string
}

// Purchase is an inventory purchase from the purchases collection.
type Purchase struct {
	ID        string
	Date      *time.Time
	Amount    types.Money
	Type      string
	ItemName  string
	InvoiceNo string
	Supplier  string
}

// VehicleExpense is a vehicle running cost from its own collection.
type VehicleExpense struct {
	ID          string
	Date        *time.Time
	Amount      types.Money
	Type        string
	Description string
}

// MiscExpense is any transaction classified as an expense by type name
// (expense, salary, wage).
type MiscExpense struct {
	ID          string
	Date        *time.Time
	Amount      types.Money
	Type        string
	Description string
	Reference   string
}

// GstItem is one line of a tax document.
type GstItem struct {
	Price    types.Money
	Quantity types.Money
	Rate     types.Money
}

// GstDocument is a tax document with its line items.
type GstDocument struct {
	ID     string
	Date   *time.Time
	Amount types.Money
	Items  []GstItem
}

// Supplier carries the point-in-time payable balance. Not date-filtered.
type Supplier struct {
	ID      string
	Name    string
	Balance types.Money
}

// Set holds all normalized record groups for one fiscal period.
type Set struct {
	Invoices         []Invoice
	Payments         []Payment
	SupplierPayments []SupplierPayment
	MiscExpenses     []MiscExpense
	Purchases        []Purchase
	VehicleExpenses  []VehicleExpense
	GstDocuments     []GstDocument
	Suppliers        []Supplier
}
