package audit

import (
	"context"

	"auditledger/internal/core/fiscal"
	"auditledger/internal/domain/records"
)

// Repository defines the record-store boundary. Every query is scoped to
// the tenant carried in context; period queries filter on date within
// [period.Start, period.End]. Result fields are optional and untrusted.
type Repository interface {
	// FindTransactions returns invoices, payments, supplier payments and
	// miscellaneous expense transactions for the period.
	FindTransactions(ctx context.Context, period fiscal.Period) ([]records.Document, error)

	// FindPurchases returns inventory purchases for the period.
	FindPurchases(ctx context.Context, period fiscal.Period) ([]records.Document, error)

	// FindVehicleExpenses returns vehicle expenses for the period.
	FindVehicleExpenses(ctx context.Context, period fiscal.Period) ([]records.Document, error)

	// FindSuppliers returns the full supplier set. Not date-filtered:
	// payables are a point-in-time balance.
	FindSuppliers(ctx context.Context) ([]records.Document, error)

	// FindGstDocuments returns tax documents for the period.
	FindGstDocuments(ctx context.Context, period fiscal.Period) ([]records.Document, error)
}

// SnapshotStore persists the last generated report per tenant and fiscal
// year. The report itself is always recomputed in full; snapshots are a
// record of the last run, never consulted during generation.
type SnapshotStore interface {
	Save(ctx context.Context, report *Report) error
	Load(ctx context.Context, startYear int) (*Report, error)
}
