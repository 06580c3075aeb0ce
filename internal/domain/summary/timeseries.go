package summary

import (
	"time"

	"auditledger/internal/core/fiscal"
	"auditledger/internal/core/types"
	"auditledger/internal/domain/ledger"
	"auditledger/internal/domain/records"
)

// Series holds the 12-month receipts and expenses trend of a fiscal year,
// index 0 is April, 11 is March.
type Series struct {
	Labels   [12]string      `json:"labels"`
	Receipts [12]types.Money `json:"receipts"`
	Expenses [12]types.Money `json:"expenses"`
}

// BinMonthly buckets receipts and expenses into the fiscal year's months.
// Records dated outside the window (or not dated at all) are silently
// dropped from the series; scalar summaries still include them.
// Legacy receipts are bucketed by their invoice date, not a payment date.
func BinMonthly(period fiscal.Period, set records.Set, legacy []ledger.LegacyReceipt) Series {
	var s Series
	s.Labels = fiscal.MonthLabels()
	for i := 0; i < 12; i++ {
		s.Receipts[i] = types.Zero()
		s.Expenses[i] = types.Zero()
	}

	addTo := func(bucket *[12]types.Money, date *time.Time, amount types.Money) {
		if date == nil {
			return
		}
		idx, ok := period.MonthIndex(*date)
		if !ok {
			return
		}
		bucket[idx] = bucket[idx].Add(amount)
	}

	for _, pay := range set.Payments {
		addTo(&s.Receipts, pay.Date, pay.Amount)
	}
	for _, lr := range legacy {
		addTo(&s.Receipts, lr.Date, lr.Amount)
	}

	for _, sp := range set.SupplierPayments {
		addTo(&s.Expenses, sp.Date, sp.Amount)
	}
	for _, pur := range set.Purchases {
		addTo(&s.Expenses, pur.Date, pur.Amount)
	}
	for _, ve := range set.VehicleExpenses {
		addTo(&s.Expenses, ve.Date, ve.Amount)
	}
	for _, me := range set.MiscExpenses {
		addTo(&s.Expenses, me.Date, me.Amount)
	}

	return s
}
