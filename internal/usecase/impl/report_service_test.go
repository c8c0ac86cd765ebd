package impl

import (
	"context"
	"testing"
	"time"

	"arklane/internal/domain/entity"
	domainerrors "arklane/internal/domain/errors"
	"arklane/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_GenerateReport_NotFound(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.reports.GeneratePerformanceReport(context.Background(), "VEN-0-missing",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestReportService_GenerateReport_InvertedPeriod(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Carrier", 4, entity.ServiceTransport)

	_, err := fx.reports.GeneratePerformanceReport(context.Background(), vendor.ID,
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPeriod)
}

func TestReportService_GenerateReport_PeriodIsInclusive(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Carrier", 4, entity.ServiceTransport)

	fx.addPricing(t, vendor.ID, usecase.AddPricingInput{
		ServiceType: entity.ServiceTransport, PricePerUnit: 100,
		EffectiveDate: datePtr(2023, time.January, 1), Origin: "USA", Destination: "Any",
	})
	fx.addPricing(t, vendor.ID, usecase.AddPricingInput{
		ServiceType: entity.ServiceTransport, PricePerUnit: 200,
		EffectiveDate: datePtr(2023, time.June, 15), Origin: "USA", Destination: "Any",
	})
	fx.addPricing(t, vendor.ID, usecase.AddPricingInput{
		ServiceType: entity.ServiceTransport, PricePerUnit: 300,
		EffectiveDate: datePtr(2023, time.December, 31), Origin: "USA", Destination: "Any",
	})
	fx.addPricing(t, vendor.ID, usecase.AddPricingInput{
		ServiceType: entity.ServiceTransport, PricePerUnit: 400,
		EffectiveDate: datePtr(2024, time.January, 1), Origin: "USA", Destination: "Any",
	})

	report, err := fx.reports.GeneratePerformanceReport(context.Background(), vendor.ID,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Both boundary entries are in; the 2024 entry is out.
	require.Len(t, report.PricingHistory, 3)
	assert.InDelta(t, 100.0, report.PricingHistory[0].PricePerUnit, 0.0001)
	assert.InDelta(t, 300.0, report.PricingHistory[2].PricePerUnit, 0.0001)
}

func TestReportService_GenerateReport_Recommendations(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Star Carrier", 4.8, entity.ServiceTransport)

	_, err := fx.vendors.UpdateVendorPerformance(context.Background(), vendor.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  97,
		AverageResponseTime: 1.5,
		DisputeRate:         0,
	})
	require.NoError(t, err)

	report, err := fx.reports.GeneratePerformanceReport(context.Background(), vendor.ID,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, report.Recommendation, "High on-time delivery rate; consider for preferred vendor status.")
	assert.Contains(t, report.Recommendation, "Responsive vendor; average response time within two hours.")
	assert.Contains(t, report.Recommendation, "No disputes on record.")
	assert.Contains(t, report.Recommendation, "Top-rated vendor across the network.")
}

func TestReportService_GenerateReport_PoorMetricsRecommendations(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Struggling Freight", 2.1, entity.ServiceTransport)

	_, err := fx.vendors.UpdateVendorPerformance(context.Background(), vendor.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  72,
		AverageResponseTime: 14,
		DisputeRate:         9,
	})
	require.NoError(t, err)

	report, err := fx.reports.GeneratePerformanceReport(context.Background(), vendor.ID,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, report.Recommendation, "On-time delivery rate below 85%; review delivery reliability before new commitments.")
	assert.Contains(t, report.Recommendation, "Slow response times; escalate communication expectations.")
	assert.Contains(t, report.Recommendation, "Dispute rate above 5%; audit recent invoices and claims.")
}

func TestReportService_GenerateReport_CarriesLiveMetrics(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Carrier", 4, entity.ServiceTransport)

	_, err := fx.vendors.UpdateVendorPerformance(context.Background(), vendor.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  88.7,
		AverageResponseTime: 6.5,
		DisputeRate:         3.4,
	})
	require.NoError(t, err)

	report, err := fx.reports.GeneratePerformanceReport(context.Background(), vendor.ID,
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, vendor.ID, report.VendorID)
	assert.InDelta(t, 88.7, report.Metrics.OnTimeDeliveryRate, 0.0001)
	assert.InDelta(t, 6.5, report.Metrics.AverageResponseTime, 0.0001)
	assert.InDelta(t, 3.4, report.Metrics.DisputeRate, 0.0001)
	require.Len(t, report.Recommendation, 1)
	assert.Equal(t, "Metrics within normal operating bands; no action required.", report.Recommendation[0])
}
