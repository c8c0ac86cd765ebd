package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	deliverycontext "arklane/internal/delivery/context"
	"arklane/internal/domain/entity"
	domainerrors "arklane/internal/domain/errors"
	"arklane/internal/domain/repository"
	"arklane/internal/errors"
	"arklane/internal/usecase"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(vendorRepo repository.VendorRepository, logger *slog.Logger) usecase.QuoteUsecase {
	return &quoteService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPriceQuote resolves the applicable price for one vendor and one request.
func (srv *quoteService) GetPriceQuote(ctx context.Context, vendorID string, serviceType entity.ServiceType, req *usecase.QuoteRequest) (*usecase.Quote, error) {
	if !serviceType.IsValid() {
		return nil, domainerrors.ErrInvalidServiceType.WithDetails(serviceType.String())
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound.WithDetails(vendorID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return resolveQuote(vendor, serviceType, req), nil
}

// CompareQuotes resolves a quote from every vendor offering the service type
// and returns the non-nil results sorted ascending by price. The sort is
// stable, so equal prices keep store order.
func (srv *quoteService) CompareQuotes(ctx context.Context, serviceType entity.ServiceType, req *usecase.QuoteRequest) ([]*usecase.Quote, error) {
	if !serviceType.IsValid() {
		return nil, domainerrors.ErrInvalidServiceType.WithDetails(serviceType.String())
	}

	vendors, err := srv.vendorRepo.ListByServiceType(ctx, serviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors by service type")
	}

	quotes := make([]*usecase.Quote, 0, len(vendors))
	for _, vendor := range vendors {
		fresh, err := srv.vendorRepo.FindByID(ctx, vendor.ID)
		if err != nil {
			// One bad vendor must not abort the whole comparison.
			srv.log(ctx).Warn("Skipping vendor in price comparison",
				slog.String("vendor_id", vendor.ID),
				slog.Any("error", err),
			)

			continue
		}
		if quote := resolveQuote(fresh, serviceType, req); quote != nil {
			quotes = append(quotes, quote)
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].PricePerUnit < quotes[j].PricePerUnit
	})

	return quotes, nil
}

// resolveQuote filters the vendor's price history to entries of the requested
// service type whose scope matches the request, then picks the most recent
// effective date. Ties keep the first-encountered entry, so the result is
// deterministic for a fixed history order. Returns nil when nothing matches.
func resolveQuote(vendor *entity.Vendor, serviceType entity.ServiceType, req *usecase.QuoteRequest) *usecase.Quote {
	var best *entity.PriceEntry
	matched := 0
	for i := range vendor.HistoricalPricing {
		entry := &vendor.HistoricalPricing[i]
		if entry.ServiceType != serviceType || !scopeMatches(entry, req) {
			continue
		}
		matched++
		if best == nil || entry.EffectiveDate.After(best.EffectiveDate) {
			best = entry
		}
	}

	if best == nil {
		return nil
	}

	return &usecase.Quote{
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		ServiceType:   serviceType,
		PricePerUnit:  best.PricePerUnit,
		EffectiveDate: best.EffectiveDate,
		Note: fmt.Sprintf("most recent of %d matching %s entries, effective %s",
			matched, serviceType, best.EffectiveDate.Format("2006-01-02")),
	}
}

// scopeMatches applies the service-type-specific match rule. Transport routes
// and animal types honour the wildcard; Documentation and CustomsBrokerage
// match exactly.
func scopeMatches(entry *entity.PriceEntry, req *usecase.QuoteRequest) bool {
	switch scope := entry.Scope.(type) {
	case entity.RouteScope:
		if entry.ServiceType == entity.ServiceCustomsBrokerage {
			return scope.Origin.String() == req.Origin && scope.Destination.String() == req.Destination
		}

		return scope.Matches(req.Origin, req.Destination)
	case entity.AnimalScope:
		return scope.Matches(req.AnimalType)
	case entity.DocumentScope:
		return scope.Matches(req.DocumentType, req.Country)
	default:
		// Entry stored with a scope its service type does not use; never match.
		return false
	}
}
