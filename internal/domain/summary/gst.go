package summary

import (
	"auditledger/internal/core/types"
	"auditledger/internal/domain/records"
)

var hundred = types.NewMoney(100)

// GstTotals accumulates tax-document line reductions across a period.
type GstTotals struct {
	Taxable       types.Money `json:"taxableTurnover"`
	Gst           types.Money `json:"estimatedGst"`
	InvoiceValue  types.Money `json:"invoiceValue"`
	DocumentCount int         `json:"documentCount"`
}

// ReduceGst folds every document's items into period totals:
// taxable += price*quantity, gst += price*quantity*rate/100,
// invoiceValue += document amount.
func ReduceGst(docs []records.GstDocument) GstTotals {
	totals := GstTotals{
		Taxable:      types.Zero(),
		Gst:          types.Zero(),
		InvoiceValue: types.Zero(),
	}
	for _, doc := range docs {
		totals.DocumentCount++
		totals.InvoiceValue = totals.InvoiceValue.Add(doc.Amount)
		for _, item := range doc.Items {
			line := item.Price.Mul(item.Quantity)
			totals.Taxable = totals.Taxable.Add(line)
			totals.Gst = totals.Gst.Add(line.Mul(item.Rate).Div(hundred))
		}
	}
	return totals
}
