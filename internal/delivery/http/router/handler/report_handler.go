package handler

import (
	"log/slog"
	"net/http"
	"time"

	"arklane/internal/delivery/http/response"
	"arklane/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for performance report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPerformanceReport builds a vendor performance report for the inclusive
// period given by the start and end query parameters (RFC 3339).
func (h *ReportHandler) GetPerformanceReport(c echo.Context) error {
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "start must be an RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "end must be an RFC 3339 timestamp")
	}

	report, err := h.uc.GeneratePerformanceReport(c.Request().Context(), c.Param("id"), start, end)
	if err != nil {
		return errors.WithStack(err)
	}

	history := make([]priceEntryDTO, 0, len(report.PricingHistory))
	for _, entry := range report.PricingHistory {
		history = append(history, toPriceEntryDTO(entry))
	}

	return response.Success(c, http.StatusOK, &reportResponse{
		VendorID:    report.VendorID,
		VendorName:  report.VendorName,
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
		Metrics: metricsDTO{
			OnTimeDeliveryRate:  report.Metrics.OnTimeDeliveryRate,
			AverageResponseTime: report.Metrics.AverageResponseTime,
			DisputeRate:         report.Metrics.DisputeRate,
			LastReviewDate:      report.Metrics.LastReviewDate,
		},
		PricingHistory: history,
		Recommendation: report.Recommendation,
	}, "")
}
