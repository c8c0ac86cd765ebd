package impl

import (
	"context"
	"testing"

	"arklane/internal/domain/entity"
	"arklane/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorScore_WorkedExample(t *testing.T) {
	vendor := &entity.Vendor{
		Rating: 4.8,
		Performance: entity.PerformanceMetrics{
			OnTimeDeliveryRate:  95.2,
			AverageResponseTime: 2.4,
			DisputeRate:         1.2,
		},
	}

	// 4.8/5*40 + 95.2/100*30 + (10-2.4)/10*20 + (10-1.2)/10*10
	assert.InDelta(t, 90.96, vendorScore(vendor), 0.0001)
}

func TestVendorScore_PureAndDeterministic(t *testing.T) {
	vendor := &entity.Vendor{
		Rating: 3.3,
		Performance: entity.PerformanceMetrics{
			OnTimeDeliveryRate:  77,
			AverageResponseTime: 4.5,
			DisputeRate:         2,
		},
	}

	first := vendorScore(vendor)
	for i := 0; i < 10; i++ {
		assert.InDelta(t, first, vendorScore(vendor), 0)
	}
}

func TestVendorScore_MonotonicInRating(t *testing.T) {
	base := &entity.Vendor{
		Rating: 2,
		Performance: entity.PerformanceMetrics{
			OnTimeDeliveryRate:  90,
			AverageResponseTime: 1,
			DisputeRate:         1,
		},
	}
	low := vendorScore(base)
	base.Rating = 4.5
	assert.Greater(t, vendorScore(base), low)
}

func TestVendorScore_SaturatesBeyondTenHours(t *testing.T) {
	vendor := &entity.Vendor{
		Rating: 4,
		Performance: entity.PerformanceMetrics{
			OnTimeDeliveryRate:  90,
			AverageResponseTime: 10,
			DisputeRate:         12,
		},
	}
	atSaturation := vendorScore(vendor)

	vendor.Performance.AverageResponseTime = 48
	vendor.Performance.DisputeRate = 60
	assert.InDelta(t, atSaturation, vendorScore(vendor), 0.0001)
}

func TestSelectionService_FindBestVendor_PicksHighestScore(t *testing.T) {
	fx := createTestServices(t)

	weak := fx.addVendor(t, "Weak", 2.0, entity.ServiceTransport)
	strong := fx.addVendor(t, "Strong", 4.9, entity.ServiceTransport)

	_, err := fx.vendors.UpdateVendorPerformance(context.Background(), weak.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  60,
		AverageResponseTime: 12,
		DisputeRate:         15,
	})
	require.NoError(t, err)
	_, err = fx.vendors.UpdateVendorPerformance(context.Background(), strong.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  98,
		AverageResponseTime: 1,
		DisputeRate:         0,
	})
	require.NoError(t, err)

	result, err := fx.selection.FindBestVendor(context.Background(), entity.ServiceTransport, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Strong", result.Vendor.Name)
	assert.Greater(t, result.Score, 90.0)
}

func TestSelectionService_FindBestVendor_NoOfferingVendors(t *testing.T) {
	fx := createTestServices(t)
	fx.addVendor(t, "Transporter", 4, entity.ServiceTransport)

	result, err := fx.selection.FindBestVendor(context.Background(), entity.ServiceVeterinary, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSelectionService_FindBestVendor_AreaFilterEmptiesSet(t *testing.T) {
	fx := createTestServices(t)
	fx.addVendor(t, "US Only", 4, entity.ServiceTransport) // fixture serves USA

	area := "Antarctica"
	result, err := fx.selection.FindBestVendor(context.Background(), entity.ServiceTransport, &usecase.SelectionCriteria{
		ServiceArea: &area,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSelectionService_FindBestVendor_MinRatingFilter(t *testing.T) {
	fx := createTestServices(t)
	fx.addVendor(t, "Low", 3.0, entity.ServiceTransport)
	fx.addVendor(t, "High", 4.8, entity.ServiceTransport)

	minRating := 4.0
	result, err := fx.selection.FindBestVendor(context.Background(), entity.ServiceTransport, &usecase.SelectionCriteria{
		MinRating: &minRating,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "High", result.Vendor.Name)

	minRating = 4.9
	result, err = fx.selection.FindBestVendor(context.Background(), entity.ServiceTransport, &usecase.SelectionCriteria{
		MinRating: &minRating,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSelectionService_FindBestVendor_TieKeepsStoreOrder(t *testing.T) {
	fx := createTestServices(t)

	// Identical ratings and default metrics: identical scores. The stable
	// sort keeps insertion order, so the earliest-registered vendor wins.
	fx.addVendor(t, "First Registered", 4.0, entity.ServiceCrating)
	fx.addVendor(t, "Second Registered", 4.0, entity.ServiceCrating)

	for i := 0; i < 5; i++ {
		result, err := fx.selection.FindBestVendor(context.Background(), entity.ServiceCrating, nil)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "First Registered", result.Vendor.Name)
	}
}
