// Package audit_repo provides the PostgreSQL implementation of the audit
// record store. Documents are loosely-typed JSONB rows partitioned by
// collection table and scoped to a tenant.
package audit_repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"auditledger/internal/core/fiscal"
	"auditledger/internal/core/tenant"
	"auditledger/internal/domain/records"
	"auditledger/pkg/logger"
)

// Collection tables.
const (
	transactionsTable    = "transactions"
	purchasesTable       = "purchases"
	vehicleExpensesTable = "vehicle_expenses"
	suppliersTable       = "suppliers"
	gstDocumentsTable    = "gst_documents"
)

// RecordRepo implements audit.Repository over PostgreSQL.
type RecordRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewRecordRepo creates a new record repository.
func NewRecordRepo(pool *pgxpool.Pool) *RecordRepo {
	return &RecordRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// documentRow is the raw scan target for any collection table.
type documentRow struct {
	ID   string     `db:"id"`
	Type *string    `db:"type"`
	Date *time.Time `db:"doc_date"`
	Data []byte     `db:"data"`
}

// FindTransactions returns all transaction documents dated in the period.
func (r *RecordRepo) FindTransactions(ctx context.Context, period fiscal.Period) ([]records.Document, error) {
	return r.findPeriod(ctx, transactionsTable, period)
}

// FindPurchases returns purchase documents dated in the period.
func (r *RecordRepo) FindPurchases(ctx context.Context, period fiscal.Period) ([]records.Document, error) {
	return r.findPeriod(ctx, purchasesTable, period)
}

// FindVehicleExpenses returns vehicle expense documents dated in the period.
func (r *RecordRepo) FindVehicleExpenses(ctx context.Context, period fiscal.Period) ([]records.Document, error) {
	return r.findPeriod(ctx, vehicleExpensesTable, period)
}

// FindGstDocuments returns tax documents dated in the period.
func (r *RecordRepo) FindGstDocuments(ctx context.Context, period fiscal.Period) ([]records.Document, error) {
	return r.findPeriod(ctx, gstDocumentsTable, period)
}

// FindSuppliers returns the full supplier set for the tenant. Payables are
// a point-in-time balance, so no date filter applies.
func (r *RecordRepo) FindSuppliers(ctx context.Context) ([]records.Document, error) {
	tenantID, err := tenant.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	q := r.builder.
		Select("id", "type", "doc_date", "data").
		From(suppliersTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at")

	return r.selectDocuments(ctx, suppliersTable, q)
}

// findPeriod selects documents dated inside the fiscal window. Rows whose
// date could not be parsed at capture time carry a NULL doc_date; they
// still belong to the books and surface as undated ledger rows.
func (r *RecordRepo) findPeriod(ctx context.Context, table string, period fiscal.Period) ([]records.Document, error) {
	tenantID, err := tenant.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	q := r.builder.
		Select("id", "type", "doc_date", "data").
		From(table).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"doc_date": period.Start},
				squirrel.LtOrEq{"doc_date": period.End},
			},
			squirrel.Eq{"doc_date": nil},
		}).
		OrderBy("doc_date NULLS FIRST", "created_at")

	return r.selectDocuments(ctx, table, q)
}

func (r *RecordRepo) selectDocuments(ctx context.Context, table string, q squirrel.SelectBuilder) ([]records.Document, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	var rows []documentRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	docs := make([]records.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, records.Document{
			ID:     row.ID,
			Type:   derefOr(row.Type, ""),
			Date:   row.Date,
			Fields: decodeFields(ctx, table, row.ID, row.Data),
		})
	}
	return docs, nil
}

// decodeFields parses the JSONB payload into loosely-typed fields.
// Numbers decode as json.Number so money survives without float rounding.
// A corrupt payload degrades to an empty field set instead of failing the
// fetch; the row still renders as a zero ledger entry.
func decodeFields(ctx context.Context, table, id string, data []byte) records.Fields {
	if len(data) == 0 {
		return records.Fields{}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		logger.Warn(ctx, "malformed document payload",
			"collection", table, "id", id, "error", err)
		return records.Fields{}
	}
	return records.Fields(fields)
}

func derefOr(s *string, alt string) string {
	if s == nil {
		return alt
	}
	return *s
}
