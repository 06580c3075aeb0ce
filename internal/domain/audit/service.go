package audit

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"auditledger/internal/core/apperror"
	"auditledger/internal/core/fiscal"
	"auditledger/internal/core/tenant"
	"auditledger/internal/domain/ledger"
	"auditledger/internal/domain/records"
	"auditledger/internal/domain/summary"
	"auditledger/pkg/logger"
)

var tracer = otel.Tracer("auditledger/audit")

// ErrStaleReport is returned when a newer generation for the same tenant
// started while this one was still fetching. The result is discarded;
// callers should simply drop it.
var ErrStaleReport = errors.New("audit report superseded by a newer request")

// Service generates audit reports. One logical unit of work per call:
// all five store queries fan out concurrently and join all-or-nothing
// before any normalization happens.
type Service struct {
	repo      Repository
	snapshots SnapshotStore // optional
	loc       *time.Location

	mu          sync.Mutex
	generations map[string]uint64
}

// Option configures a Service.
type Option func(*Service)

// WithSnapshots enables persisting the last generated report.
func WithSnapshots(store SnapshotStore) Option {
	return func(s *Service) { s.snapshots = store }
}

// WithLocation sets the time zone used to resolve fiscal windows.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// NewService creates a new audit report service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		loc:         time.UTC,
		generations: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolvePeriod returns the fiscal window for a start year, inferring the
// current fiscal year when startYear is zero. Never fails.
func (s *Service) ResolvePeriod(startYear int) fiscal.Period {
	if startYear == 0 {
		startYear = fiscal.CurrentStartYear(time.Now().In(s.loc))
	}
	return fiscal.Resolve(startYear, s.loc)
}

// Generate builds the full audit report for one fiscal year.
//
// Failure semantics: malformed individual records degrade to zero/empty
// values inside normalization; any store-level fetch failure aborts the
// whole generation with a single retryable error and no partial report.
func (s *Service) Generate(ctx context.Context, startYear int) (*Report, error) {
	period := s.ResolvePeriod(startYear)

	ctx, span := tracer.Start(ctx, "audit.Generate")
	span.SetAttributes(
		attribute.Int("fiscal.start_year", period.StartYear),
		attribute.String("fiscal.label", period.Label),
	)
	defer span.End()

	key := s.generationKey(ctx)
	gen := s.nextGeneration(key)

	raw, err := s.fetchAll(ctx, period)
	if err != nil {
		return nil, apperror.NewReportLoadFailed(err).
			WithDetail("startYear", period.StartYear)
	}

	// A newer request for the same tenant supersedes this one; its results
	// must not reach the caller after the fact.
	if s.isStale(key, gen) {
		logger.Debug(ctx, "discarding stale audit report", "start_year", period.StartYear)
		return nil, ErrStaleReport
	}

	set := records.Normalize(raw)
	legacy := ledger.ReconcileLegacyReceipts(set.Invoices, set.Payments)

	report := &Report{
		Period:      period,
		Entries:     ledger.Build(set),
		Summary:     summary.Aggregate(set, legacy),
		Gst:         summary.ReduceGst(set.GstDocuments),
		Series:      summary.BinMonthly(period, set, legacy.Receipts),
		GeneratedAt: time.Now().In(s.loc),
	}

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, report); err != nil {
			// Snapshot persistence is best-effort; the report itself is done.
			logger.Warn(ctx, "failed to save report snapshot",
				"start_year", period.StartYear, "error", err)
		}
	}

	logger.Info(ctx, "audit report generated",
		"start_year", period.StartYear,
		"entries", len(report.Entries),
	)
	return report, nil
}

// LoadSnapshot returns the last persisted report for a fiscal year.
func (s *Service) LoadSnapshot(ctx context.Context, startYear int) (*Report, error) {
	if s.snapshots == nil {
		return nil, apperror.NewNotFound("report snapshot", startYear)
	}
	period := s.ResolvePeriod(startYear)
	return s.snapshots.Load(ctx, period.StartYear)
}

// fetchAll issues the five category queries concurrently and waits for
// every one of them. All-or-nothing join: the first failure cancels the
// rest and fails the fetch as a unit.
func (s *Service) fetchAll(ctx context.Context, period fiscal.Period) (records.RawSets, error) {
	ctx, span := tracer.Start(ctx, "audit.fetchAll")
	defer span.End()

	var raw records.RawSets
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		docs, err := s.repo.FindTransactions(ctx, period)
		raw.Transactions = docs
		return err
	})
	g.Go(func() error {
		docs, err := s.repo.FindPurchases(ctx, period)
		raw.Purchases = docs
		return err
	})
	g.Go(func() error {
		docs, err := s.repo.FindVehicleExpenses(ctx, period)
		raw.VehicleExpenses = docs
		return err
	})
	g.Go(func() error {
		docs, err := s.repo.FindSuppliers(ctx)
		raw.Suppliers = docs
		return err
	})
	g.Go(func() error {
		docs, err := s.repo.FindGstDocuments(ctx, period)
		raw.GstDocuments = docs
		return err
	})

	if err := g.Wait(); err != nil {
		return records.RawSets{}, err
	}
	return raw, nil
}

// --- generation tracking ---

func (s *Service) generationKey(ctx context.Context) string {
	tenantID, _ := tenant.FromContext(ctx)
	return tenantID
}

func (s *Service) nextGeneration(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key]++
	return s.generations[key]
}

func (s *Service) isStale(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key] != gen
}
