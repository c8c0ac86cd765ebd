package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"arklane/internal/domain/entity"
	"arklane/internal/domain/repository"
	"arklane/internal/infra/persistence/memory"
	"arklane/internal/usecase"

	"github.com/stretchr/testify/require"
)

// serviceFixtures wires every service against one real in-memory store, so
// tests exercise the same store semantics production uses.
type serviceFixtures struct {
	repo      repository.VendorRepository
	vendors   usecase.VendorUsecase
	quotes    usecase.QuoteUsecase
	selection usecase.SelectionUsecase
	reports   usecase.ReportUsecase
}

func createTestServices(t *testing.T) serviceFixtures {
	t.Helper()

	repo := memory.NewVendorRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return serviceFixtures{
		repo:      repo,
		vendors:   NewVendorService(repo, logger),
		quotes:    NewQuoteService(repo, logger),
		selection: NewSelectionService(repo, logger),
		reports:   NewReportService(repo, logger),
	}
}

// addVendor registers a minimal vendor offering the given services.
func (fx serviceFixtures) addVendor(t *testing.T, name string, rating float64, serviceTypes ...entity.ServiceType) *entity.Vendor {
	t.Helper()

	vendor, err := fx.vendors.AddVendor(context.Background(), &usecase.AddVendorInput{
		Name:         name,
		VendorType:   "Carrier",
		Email:        name + "@example.com",
		ServiceTypes: serviceTypes,
		ServiceAreas: []string{"USA"},
		Rating:       rating,
	})
	require.NoError(t, err)

	return vendor
}

// addPricing appends a price entry with an explicit effective date.
func (fx serviceFixtures) addPricing(t *testing.T, vendorID string, input usecase.AddPricingInput) {
	t.Helper()

	_, err := fx.vendors.AddVendorPricing(context.Background(), vendorID, &input)
	require.NoError(t, err)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &t
}
