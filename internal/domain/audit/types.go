// Package audit orchestrates fiscal-year audit report generation:
// concurrent record fetch, normalization, ledger build and aggregation.
package audit

import (
	"time"

	"auditledger/internal/core/fiscal"
	"auditledger/internal/domain/ledger"
	"auditledger/internal/domain/summary"
)

// Report is the complete output of one generation run. Plain serializable
// data; money formatting, CSV/PDF emission and charting are downstream
// concerns.
type Report struct {
	Period      fiscal.Period     `json:"period"`
	Entries     []ledger.Entry    `json:"entries"`
	Summary     summary.Audit     `json:"summary"`
	Gst         summary.GstTotals `json:"gst"`
	Series      summary.Series    `json:"series"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
