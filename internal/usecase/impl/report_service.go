package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "arklane/internal/delivery/context"
	"arklane/internal/domain/entity"
	domainerrors "arklane/internal/domain/errors"
	"arklane/internal/domain/repository"
	"arklane/internal/errors"
	"arklane/internal/usecase"
)

// recommendationRule maps a metric band to a qualitative finding. The
// thresholds are business policy, kept in one table so they can be tuned
// without touching the report logic.
type recommendationRule struct {
	applies func(*entity.Vendor) bool
	text    string
}

var recommendationRules = []recommendationRule{
	{
		applies: func(v *entity.Vendor) bool { return v.Performance.OnTimeDeliveryRate >= 95 },
		text:    "High on-time delivery rate; consider for preferred vendor status.",
	},
	{
		applies: func(v *entity.Vendor) bool { return v.Performance.OnTimeDeliveryRate < 85 },
		text:    "On-time delivery rate below 85%; review delivery reliability before new commitments.",
	},
	{
		applies: func(v *entity.Vendor) bool { return v.Performance.AverageResponseTime <= 2 },
		text:    "Responsive vendor; average response time within two hours.",
	},
	{
		applies: func(v *entity.Vendor) bool { return v.Performance.AverageResponseTime > 8 },
		text:    "Slow response times; escalate communication expectations.",
	},
	{
		applies: func(v *entity.Vendor) bool { return v.Performance.DisputeRate == 0 },
		text:    "No disputes on record.",
	},
	{
		applies: func(v *entity.Vendor) bool { return v.Performance.DisputeRate > 5 },
		text:    "Dispute rate above 5%; audit recent invoices and claims.",
	},
	{
		applies: func(v *entity.Vendor) bool { return v.Rating >= 4.5 },
		text:    "Top-rated vendor across the network.",
	},
}

const recommendationDefault = "Metrics within normal operating bands; no action required."

// reportService implements the ReportUsecase interface.
type reportService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(vendorRepo repository.VendorRepository, logger *slog.Logger) usecase.ReportUsecase {
	return &reportService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GeneratePerformanceReport summarizes the vendor's live metrics and the
// price entries effective within [start, end], inclusive on both ends.
func (srv *reportService) GeneratePerformanceReport(ctx context.Context, vendorID string, start, end time.Time) (*usecase.PerformanceReport, error) {
	if start.After(end) {
		return nil, domainerrors.ErrInvalidPeriod
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound.WithDetails(vendorID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor")
	}

	history := make([]entity.PriceEntry, 0)
	for _, entry := range vendor.HistoricalPricing {
		if entry.EffectiveDate.Before(start) || entry.EffectiveDate.After(end) {
			continue
		}
		history = append(history, entry)
	}

	recommendations := make([]string, 0)
	for _, rule := range recommendationRules {
		if rule.applies(vendor) {
			recommendations = append(recommendations, rule.text)
		}
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, recommendationDefault)
	}

	srv.log(ctx).Debug("Performance report generated",
		slog.String("vendor_id", vendorID),
		slog.Int("entries_in_period", len(history)),
	)

	return &usecase.PerformanceReport{
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		PeriodStart:    start,
		PeriodEnd:      end,
		Metrics:        vendor.Performance,
		PricingHistory: history,
		Recommendation: recommendations,
	}, nil
}
