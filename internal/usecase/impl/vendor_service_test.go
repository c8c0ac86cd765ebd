package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"arklane/internal/domain/entity"
	domainerrors "arklane/internal/domain/errors"
	"arklane/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorService_AddVendor_Defaults(t *testing.T) {
	fx := createTestServices(t)

	vendor := fx.addVendor(t, "Global Animal Transport", 4.8, entity.ServiceTransport)

	assert.NotEmpty(t, vendor.ID)
	assert.Empty(t, vendor.HistoricalPricing)
	assert.InDelta(t, 100.0, vendor.Performance.OnTimeDeliveryRate, 0.0001)
	assert.Zero(t, vendor.Performance.AverageResponseTime)
	assert.Zero(t, vendor.Performance.DisputeRate)
	assert.Nil(t, vendor.Performance.LastReviewDate)
	assert.WithinDuration(t, time.Now(), vendor.DateAdded, time.Minute)
}

func TestVendorService_AddVendor_UniqueIDs(t *testing.T) {
	fx := createTestServices(t)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		vendor := fx.addVendor(t, "Vendor", 3, entity.ServiceFeeding)
		assert.False(t, seen[vendor.ID], "duplicate id %s", vendor.ID)
		seen[vendor.ID] = true
	}
}

func TestVendorService_AddVendor_InvalidRating(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.vendors.AddVendor(context.Background(), &usecase.AddVendorInput{
		Name:         "Overrated",
		ServiceTypes: []entity.ServiceType{entity.ServiceTransport},
		Rating:       5.5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}

func TestVendorService_AddVendor_InvalidServiceType(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.vendors.AddVendor(context.Background(), &usecase.AddVendorInput{
		Name:         "Mystery Services",
		ServiceTypes: []entity.ServiceType{"Telepathy"},
		Rating:       4,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_SERVICE_TYPE", appErr.ErrorCode())
}

func TestVendorService_GetVendor_AbsentIsNilNotError(t *testing.T) {
	fx := createTestServices(t)

	vendor, err := fx.vendors.GetVendor(context.Background(), "VEN-0-missing")
	require.NoError(t, err)
	assert.Nil(t, vendor)
}

func TestVendorService_UpdateVendor_PartialMerge(t *testing.T) {
	fx := createTestServices(t)
	created := fx.addVendor(t, "Before", 3.5, entity.ServiceTransport)

	newName := "After"
	newRating := 4.2
	updated, err := fx.vendors.UpdateVendor(context.Background(), created.ID, &usecase.UpdateVendorInput{
		Name:   &newName,
		Rating: &newRating,
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.InDelta(t, 4.2, updated.Rating, 0.0001)
	// Untouched fields keep their stored values.
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.ServiceTypes, updated.ServiceTypes)
}

func TestVendorService_UpdateVendor_NotFound(t *testing.T) {
	fx := createTestServices(t)

	name := "Nobody"
	_, err := fx.vendors.UpdateVendor(context.Background(), "VEN-0-missing", &usecase.UpdateVendorInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_UpdateVendor_ConcurrentWithPricingLosesNothing(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Contended", 4, entity.ServiceTransport)

	// Partial updates and pricing appends race on one record; every
	// acknowledged append must survive the update write-backs.
	const writes = 20
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			name := fmt.Sprintf("Renamed %d", i)
			_, err := fx.vendors.UpdateVendor(context.Background(), vendor.ID, &usecase.UpdateVendorInput{Name: &name})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			_, err := fx.vendors.AddVendorPricing(context.Background(), vendor.ID, &usecase.AddPricingInput{
				ServiceType:   entity.ServiceTransport,
				PricePerUnit:  float64(100 + i),
				EffectiveDate: datePtr(2023, time.January, 1+i%27),
				Origin:        "USA",
				Destination:   "Any",
			})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	after, err := fx.vendors.GetVendor(context.Background(), vendor.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Len(t, after.HistoricalPricing, writes)
}

func TestVendorService_DeleteVendor_NotFoundLeavesStoreUnmodified(t *testing.T) {
	fx := createTestServices(t)
	kept := fx.addVendor(t, "Keeper", 4, entity.ServiceCrating)

	err := fx.vendors.DeleteVendor(context.Background(), "VEN-0-missing")
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)

	still, err := fx.vendors.GetVendor(context.Background(), kept.ID)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, kept.ID, still.ID)
}

func TestVendorService_AddVendorPricing_DefaultsEffectiveDate(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Carrier", 4, entity.ServiceTransport)

	updated, err := fx.vendors.AddVendorPricing(context.Background(), vendor.ID, &usecase.AddPricingInput{
		ServiceType:  entity.ServiceTransport,
		PricePerUnit: 900,
		Origin:       "USA",
		Destination:  "Any",
	})
	require.NoError(t, err)
	require.Len(t, updated.HistoricalPricing, 1)

	entry := updated.HistoricalPricing[0]
	assert.WithinDuration(t, time.Now(), entry.EffectiveDate, time.Minute)
	scope, ok := entry.Scope.(entity.RouteScope)
	require.True(t, ok)
	assert.True(t, scope.Destination.IsAny())
}

func TestVendorService_AddVendorPricing_ScopeMismatch(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Vet", 4, entity.ServiceVeterinary)

	_, err := fx.vendors.AddVendorPricing(context.Background(), vendor.ID, &usecase.AddPricingInput{
		ServiceType:  entity.ServiceVeterinary,
		PricePerUnit: 120,
		// Missing animalType for an animal-service entry.
		Origin:      "USA",
		Destination: "Europe",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PRICE_SCOPE", appErr.ErrorCode())
}

func TestVendorService_AddVendorPricing_NotFound(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.vendors.AddVendorPricing(context.Background(), "VEN-0-missing", &usecase.AddPricingInput{
		ServiceType:  entity.ServiceTransport,
		PricePerUnit: 100,
		Origin:       "USA",
		Destination:  "Any",
	})
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_UpdatePerformance_StampsReviewDate(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Carrier", 4, entity.ServiceTransport)

	updated, err := fx.vendors.UpdateVendorPerformance(context.Background(), vendor.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  95.2,
		AverageResponseTime: 2.4,
		DisputeRate:         1.2,
	})
	require.NoError(t, err)

	assert.InDelta(t, 95.2, updated.Performance.OnTimeDeliveryRate, 0.0001)
	require.NotNil(t, updated.Performance.LastReviewDate)
	assert.WithinDuration(t, time.Now(), *updated.Performance.LastReviewDate, time.Minute)
}

func TestVendorService_UpdatePerformance_RejectsOutOfRange(t *testing.T) {
	fx := createTestServices(t)
	vendor := fx.addVendor(t, "Carrier", 4, entity.ServiceTransport)

	_, err := fx.vendors.UpdateVendorPerformance(context.Background(), vendor.ID, &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate: 130,
	})
	assert.Error(t, err)
}

func TestVendorService_ListVendorsByRating_SortedDescending(t *testing.T) {
	fx := createTestServices(t)
	fx.addVendor(t, "Low", 2.5, entity.ServiceTransport)
	fx.addVendor(t, "High", 4.9, entity.ServiceTransport)
	fx.addVendor(t, "Mid", 3.7, entity.ServiceTransport)

	vendors, err := fx.vendors.ListVendorsByRating(context.Background(), 3.0)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "High", vendors[0].Name)
	assert.Equal(t, "Mid", vendors[1].Name)
}
