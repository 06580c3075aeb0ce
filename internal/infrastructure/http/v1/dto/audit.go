// Package dto maps domain results onto wire shapes. Money leaves the
// service as plain JSON numbers; formatting stays with the consumers.
package dto

import (
	"time"

	"auditledger/internal/domain/audit"
	"auditledger/internal/domain/ledger"
	"auditledger/internal/domain/summary"
)

// FiscalPeriodResponse describes a resolved fiscal window.
type FiscalPeriodResponse struct {
	StartYear int       `json:"startYear"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Label     string    `json:"label"`
}

// LedgerEntryResponse is one itemized ledger row.
type LedgerEntryResponse struct {
	Source         string     `json:"source"`
	SourceID       string     `json:"sourceId"`
	Date           *time.Time `json:"date"`
	Particulars    string     `json:"particulars"`
	Voucher        string     `json:"voucher"`
	Category       string     `json:"category"`
	Debit          float64    `json:"debit"`
	Credit         float64    `json:"credit"`
	RunningBalance float64    `json:"runningBalance"`
}

// AuditSummaryResponse carries the scalar metrics.
type AuditSummaryResponse struct {
	GrossRevenue      float64 `json:"grossRevenue"`
	CollectedReceipts float64 `json:"collectedReceipts"`
	OperatingExpense  float64 `json:"operatingExpense"`
	NetProfit         float64 `json:"netProfit"`
	Receivables       float64 `json:"receivables"`
	Payables          float64 `json:"payables"`
	GstDocsCount      int     `json:"gstDocsCount"`
	TaxableTurnover   float64 `json:"taxableTurnover"`
	EstimatedGst      float64 `json:"estimatedGst"`
	GstInvoiceValue   float64 `json:"gstInvoiceValue"`
}

// GstSummaryResponse carries the period GST totals.
type GstSummaryResponse struct {
	TaxableTurnover float64 `json:"taxableTurnover"`
	EstimatedGst    float64 `json:"estimatedGst"`
	InvoiceValue    float64 `json:"invoiceValue"`
	DocumentCount   int     `json:"documentCount"`
}

// MonthlySeriesResponse is the 12-month receipts/expenses trend.
type MonthlySeriesResponse struct {
	Labels   []string  `json:"labels"`
	Receipts []float64 `json:"receipts"`
	Expenses []float64 `json:"expenses"`
}

// AuditReportResponse is the full report payload.
type AuditReportResponse struct {
	Period      FiscalPeriodResponse  `json:"period"`
	Entries     []LedgerEntryResponse `json:"entries"`
	Summary     AuditSummaryResponse  `json:"summary"`
	Gst         GstSummaryResponse    `json:"gst"`
	Series      MonthlySeriesResponse `json:"series"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// FromReport converts a domain report to its response shape.
func FromReport(report *audit.Report) AuditReportResponse {
	entries := make([]LedgerEntryResponse, 0, len(report.Entries))
	for _, e := range report.Entries {
		entries = append(entries, fromEntry(e))
	}

	return AuditReportResponse{
		Period: FiscalPeriodResponse{
			StartYear: report.Period.StartYear,
			Start:     report.Period.Start,
			End:       report.Period.End,
			Label:     report.Period.Label,
		},
		Entries:     entries,
		Summary:     fromSummary(report.Summary),
		Gst:         fromGst(report.Gst),
		Series:      fromSeries(report.Series),
		GeneratedAt: report.GeneratedAt,
	}
}

func fromEntry(e ledger.Entry) LedgerEntryResponse {
	return LedgerEntryResponse{
		Source:         e.Source,
		SourceID:       e.SourceID,
		Date:           e.Date,
		Particulars:    e.Particulars,
		Voucher:        e.Voucher,
		Category:       e.Category,
		Debit:          e.Debit.InexactFloat64(),
		Credit:         e.Credit.InexactFloat64(),
		RunningBalance: e.RunningBalance.InexactFloat64(),
	}
}

func fromSummary(a summary.Audit) AuditSummaryResponse {
	return AuditSummaryResponse{
		GrossRevenue:      a.GrossRevenue.InexactFloat64(),
		CollectedReceipts: a.CollectedReceipts.InexactFloat64(),
		OperatingExpense:  a.OperatingExpense.InexactFloat64(),
		NetProfit:         a.NetProfit.InexactFloat64(),
		Receivables:       a.Receivables.InexactFloat64(),
		Payables:          a.Payables.InexactFloat64(),
		GstDocsCount:      a.GstDocsCount,
		TaxableTurnover:   a.TaxableTurnover.InexactFloat64(),
		EstimatedGst:      a.EstimatedGst.InexactFloat64(),
		GstInvoiceValue:   a.GstInvoiceValue.InexactFloat64(),
	}
}

func fromGst(g summary.GstTotals) GstSummaryResponse {
	return GstSummaryResponse{
		TaxableTurnover: g.Taxable.InexactFloat64(),
		EstimatedGst:    g.Gst.InexactFloat64(),
		InvoiceValue:    g.InvoiceValue.InexactFloat64(),
		DocumentCount:   g.DocumentCount,
	}
}

func fromSeries(s summary.Series) MonthlySeriesResponse {
	out := MonthlySeriesResponse{
		Labels:   make([]string, 12),
		Receipts: make([]float64, 12),
		Expenses: make([]float64, 12),
	}
	for i := 0; i < 12; i++ {
		out.Labels[i] = s.Labels[i]
		out.Receipts[i] = s.Receipts[i].InexactFloat64()
		out.Expenses[i] = s.Expenses[i].InexactFloat64()
	}
	return out
}
