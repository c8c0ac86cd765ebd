package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	deliverycontext "arklane/internal/delivery/context"
	"arklane/internal/domain/entity"
	domainerrors "arklane/internal/domain/errors"
	"arklane/internal/domain/repository"
	"arklane/internal/errors"
	"arklane/internal/usecase"
)

// Fitness score weights. The four components sum to 100 for a perfect vendor.
const (
	ratingWeight   = 40.0
	onTimeWeight   = 30.0
	responseWeight = 20.0
	disputeWeight  = 10.0
)

// selectionService implements the SelectionUsecase interface.
type selectionService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewSelectionService is the constructor for selectionService.
func NewSelectionService(vendorRepo repository.VendorRepository, logger *slog.Logger) usecase.SelectionUsecase {
	return &selectionService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (srv *selectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindBestVendor filters candidates by service type, service area and
// minimum rating, scores the survivors and returns the top one. Equal scores
// keep store order (stable sort), so the earliest-registered vendor wins a
// tie. An empty candidate set at any stage is a nil result, not an error.
func (srv *selectionService) FindBestVendor(ctx context.Context, serviceType entity.ServiceType, criteria *usecase.SelectionCriteria) (*usecase.SelectionResult, error) {
	if !serviceType.IsValid() {
		return nil, domainerrors.ErrInvalidServiceType.WithDetails(serviceType.String())
	}

	candidates, err := srv.vendorRepo.ListByServiceType(ctx, serviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors by service type")
	}

	if criteria != nil && criteria.ServiceArea != nil {
		candidates = filterVendors(candidates, func(v *entity.Vendor) bool {
			return v.ServesArea(*criteria.ServiceArea)
		})
	}
	if criteria != nil && criteria.MinRating != nil {
		candidates = filterVendors(candidates, func(v *entity.Vendor) bool {
			return v.Rating >= *criteria.MinRating
		})
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	scored := make([]usecase.SelectionResult, 0, len(candidates))
	for _, vendor := range candidates {
		scored = append(scored, usecase.SelectionResult{
			Vendor: vendor,
			Score:  vendorScore(vendor),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	best := scored[0]
	srv.log(ctx).Debug("Vendor selected",
		slog.String("vendor_id", best.Vendor.ID),
		slog.String("service_type", serviceType.String()),
		slog.Float64("score", best.Score),
		slog.Int("candidates", len(scored)),
	)

	return &best, nil
}

// vendorScore computes the weighted fitness score in [0, 100]. It is a pure
// function of the vendor's rating and performance metrics: monotonic in
// rating and on-time rate, inversely related to response time and dispute
// rate, with the latter two saturating at 10 hours and 10% respectively.
func vendorScore(v *entity.Vendor) float64 {
	score := v.Rating / 5 * ratingWeight
	score += v.Performance.OnTimeDeliveryRate / 100 * onTimeWeight
	score += math.Max(0, 10-v.Performance.AverageResponseTime) / 10 * responseWeight
	score += math.Max(0, 10-v.Performance.DisputeRate) / 10 * disputeWeight

	return score
}

func filterVendors(vendors []*entity.Vendor, keep func(*entity.Vendor) bool) []*entity.Vendor {
	matched := vendors[:0]
	for _, vendor := range vendors {
		if keep(vendor) {
			matched = append(matched, vendor)
		}
	}

	return matched
}
