package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"auditledger/internal/domain/audit"
	"auditledger/internal/infrastructure/http/v1/dto"
)

// AuditHandler handles audit report requests.
type AuditHandler struct {
	*BaseHandler
	service *audit.Service
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, service *audit.Service) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetReport handles GET /audit/report?year=2024
// Generates the full report for the requested fiscal year; missing year
// means the current fiscal year.
func (h *AuditHandler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	year, ok := h.ParseYearQuery(c, "year")
	if !ok {
		return
	}

	report, err := h.service.Generate(ctx, year)
	if err != nil {
		// A superseded generation has nothing to show; the newer request
		// carries the response the client actually wants.
		if errors.Is(err, audit.ErrStaleReport) {
			c.Status(http.StatusNoContent)
			return
		}
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReport(report))
}

// GetPeriod handles GET /audit/period?year=2024
func (h *AuditHandler) GetPeriod(c *gin.Context) {
	year, ok := h.ParseYearQuery(c, "year")
	if !ok {
		return
	}

	period := h.service.ResolvePeriod(year)
	c.JSON(http.StatusOK, dto.FiscalPeriodResponse{
		StartYear: period.StartYear,
		Start:     period.Start,
		End:       period.End,
		Label:     period.Label,
	})
}

// GetSnapshot handles GET /audit/report/snapshot?year=2024
// Returns the last persisted report for the fiscal year.
func (h *AuditHandler) GetSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	year, ok := h.ParseYearQuery(c, "year")
	if !ok {
		return
	}

	report, err := h.service.LoadSnapshot(ctx, year)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReport(report))
}

// RegisterRoutes registers audit routes.
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/report", h.GetReport)
	rg.GET("/report/snapshot", h.GetSnapshot)
	rg.GET("/period", h.GetPeriod)
}
