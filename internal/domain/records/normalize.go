package records

import (
	"strings"

	"auditledger/internal/core/types"
)

// Amount alias chains, tried in priority order. Kept as named policies so
// the fallback behavior is testable instead of inline branching.
var (
	purchaseAmountAliases = []string{"amount", "totalAmount", "total", "grandTotal", "netAmount"}
	vehicleAmountAliases  = []string{"amount", "cost", "total"}
)

// Substrings that classify a transaction type as a miscellaneous expense.
var miscExpenseMarkers = []string{"expense", "salary", "wage"}

// PurchaseValue resolves the monetary value of a purchase document:
// first present alias field, else quantity * unitCost, else zero.
func PurchaseValue(f Fields) types.Money {
	if v, ok := f.Amount(purchaseAmountAliases...); ok {
		return v
	}
	qty, qok := f.Amount("quantity")
	cost, cok := f.Amount("unitCost")
	if qok && cok {
		return qty.Mul(cost)
	}
	return types.Zero()
}

// VehicleExpenseValue resolves the monetary value of a vehicle expense.
func VehicleExpenseValue(f Fields) types.Money {
	v, _ := f.Amount(vehicleAmountAliases...)
	return v
}

// IsMiscExpenseType reports whether a transaction type string marks a
// miscellaneous expense. Empty types are excluded; the three dedicated
// transaction types are handled before this check.
func IsMiscExpenseType(typ string) bool {
	if typ == "" {
		return false
	}
	lower := strings.ToLower(typ)
	for _, marker := range miscExpenseMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// RawSets holds the raw fetch results of the five period queries.
type RawSets struct {
	Transactions    []Document
	Purchases       []Document
	VehicleExpenses []Document
	GstDocuments    []Document
	Suppliers       []Document
}

// Normalize partitions and coerces raw documents into a Set.
// Never fails: missing or malformed fields degrade to zero/empty values.
func Normalize(raw RawSets) Set {
	var set Set

	for _, doc := range raw.Transactions {
		switch doc.Type {
		case TypeInvoice:
			amount, _ := doc.Fields.Amount("amount")
			paid, _ := doc.Fields.Amount("amountPaid")
			set.Invoices = append(set.Invoices, Invoice{
				ID:          doc.ID,
				Date:        doc.Date,
				Amount:      amount,
				AmountPaid:  paid,
				Customer:    doc.Fields.Text("customerName", "customer"),
				Description: doc.Fields.Text("description"),
				Reference:   doc.Fields.Text("reference"),
			})
		case TypePayment:
			amount, _ := doc.Fields.Amount("amount")
			set.Payments = append(set.Payments, Payment{
				ID:          doc.ID,
				Date:        doc.Date,
				Amount:      amount,
				InvoiceID:   doc.Fields.Text("invoiceId"),
				Customer:    doc.Fields.Text("customerName", "customer"),
				Description: doc.Fields.Text("description"),
				Reference:   doc.Fields.Text("reference"),
				Mode:        doc.Fields.Text("mode"),
			})
		case TypeSupplierPayment:
			amount, _ := doc.Fields.Amount("amount")
			set.SupplierPayments = append(set.SupplierPayments, SupplierPayment{
				ID:          doc.ID,
				Date:        doc.Date,
				Amount:      amount,
				Supplier:    doc.Fields.Text("supplierName", "supplier"),
				Description: doc.Fields.Text("description"),
				Reference:   doc.Fields.Text("reference"),
			})
		default:
			if !IsMiscExpenseType(doc.Type) {
				continue
			}
			amount, _ := doc.Fields.Amount("amount")
			set.MiscExpenses = append(set.MiscExpenses, MiscExpense{
				ID:          doc.ID,
				Date:        doc.Date,
				Amount:      amount,
				Type:        doc.Type,
				Description: doc.Fields.Text("description"),
				Reference:   doc.Fields.Text("reference"),
			})
		}
	}

	for _, doc := range raw.Purchases {
		set.Purchases = append(set.Purchases, Purchase{
			ID:        doc.ID,
			Date:      doc.Date,
			Amount:    PurchaseValue(doc.Fields),
			Type:      doc.Fields.Text("type"),
			ItemName:  doc.Fields.Text("itemName"),
			InvoiceNo: doc.Fields.Text("invoiceNo"),
			Supplier:  doc.Fields.Text("supplierName", "supplier"),
		})
	}

	for _, doc := range raw.VehicleExpenses {
		set.VehicleExpenses = append(set.VehicleExpenses, VehicleExpense{
			ID:          doc.ID,
			Date:        doc.Date,
			Amount:      VehicleExpenseValue(doc.Fields),
			Type:        doc.Fields.Text("type"),
			Description: doc.Fields.Text("description"),
		})
	}

	for _, doc := range raw.GstDocuments {
		amount, _ := doc.Fields.Amount("amount")
		gstDoc := GstDocument{
			ID:     doc.ID,
			Date:   doc.Date,
			Amount: amount,
		}
		for _, item := range doc.Fields.List("items") {
			price, _ := item.Amount("price")
			qty, _ := item.Amount("quantity")
			rate, _ := item.Amount("gstRate", "rate")
			gstDoc.Items = append(gstDoc.Items, GstItem{Price: price, Quantity: qty, Rate: rate})
		}
		set.GstDocuments = append(set.GstDocuments, gstDoc)
	}

	for _, doc := range raw.Suppliers {
		balance, _ := doc.Fields.Amount("balance")
		set.Suppliers = append(set.Suppliers, Supplier{
			ID:      doc.ID,
			Name:    doc.Fields.Text("name", "supplierName"),
			Balance: balance,
		})
	}

	return set
}
