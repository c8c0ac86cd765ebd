package usecase

import (
	"context"
	"time"

	"arklane/internal/domain/entity"
)

// PerformanceReport summarizes a vendor's activity within a date range.
type PerformanceReport struct {
	VendorID       string
	VendorName     string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Metrics        entity.PerformanceMetrics // Live metrics at report time.
	PricingHistory []entity.PriceEntry       // Entries effective within the period, inclusive.
	Recommendation []string                  // Qualitative findings from the metric bands.
}

// ReportUsecase aggregates vendor metrics and pricing into review reports.
type ReportUsecase interface {
	// GeneratePerformanceReport builds a report for the inclusive period
	// [start, end]. A missing vendor id or an inverted period is an error.
	GeneratePerformanceReport(ctx context.Context, vendorID string, start, end time.Time) (*PerformanceReport, error)
}
