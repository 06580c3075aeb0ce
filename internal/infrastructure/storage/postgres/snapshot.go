package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/zstd"

	"auditledger/internal/core/apperror"
	"auditledger/internal/core/tenant"
	"auditledger/internal/domain/audit"
)

// CompressionAlgo specifies the compression applied to a stored snapshot.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// snapshotCompressThreshold is the payload size above which snapshots are
// zstd-compressed before storage.
const snapshotCompressThreshold = 10 * 1024 // 10KB

// SnapshotStore persists the last generated report per tenant and fiscal
// year as a (possibly compressed) JSON payload.
type SnapshotStore struct {
	pool    *pgxpool.Pool
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewSnapshotStore creates a snapshot store.
func NewSnapshotStore(pool *pgxpool.Pool) (*SnapshotStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &SnapshotStore{
		pool:    pool,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Save upserts the snapshot for the report's tenant and fiscal year.
func (s *SnapshotStore) Save(ctx context.Context, report *audit.Report) error {
	tenantID, err := tenant.MustFromContext(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report snapshot: %w", err)
	}

	algo := CompressionNone
	if len(payload) > snapshotCompressThreshold {
		payload = s.encoder.EncodeAll(payload, nil)
		algo = CompressionZstd
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO report_snapshots (tenant_id, start_year, payload, compression, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id, start_year)
		DO UPDATE SET payload = $3, compression = $4, generated_at = $5
	`, tenantID, report.Period.StartYear, payload, string(algo), report.GeneratedAt)
	if err != nil {
		return fmt.Errorf("save report snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot for a fiscal year.
func (s *SnapshotStore) Load(ctx context.Context, startYear int) (*audit.Report, error) {
	tenantID, err := tenant.MustFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var algo string
	err = s.pool.QueryRow(ctx, `
		SELECT payload, compression
		FROM report_snapshots
		WHERE tenant_id = $1 AND start_year = $2
	`, tenantID, startYear).Scan(&payload, &algo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("report snapshot", startYear)
		}
		return nil, fmt.Errorf("load report snapshot: %w", err)
	}

	if CompressionAlgo(algo) == CompressionZstd {
		payload, err = s.decoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress report snapshot: %w", err)
		}
	}

	var report audit.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report snapshot: %w", err)
	}
	return &report, nil
}
