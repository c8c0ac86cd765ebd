package usecase

import (
	"context"
	"time"

	"arklane/internal/domain/entity"
)

// QuoteRequest carries the service-specific details a price entry is matched
// against. Only the fields relevant to the requested service type are read.
type QuoteRequest struct {
	// Transport / CustomsBrokerage
	Origin      string
	Destination string
	// Veterinary / Feeding / Crating
	AnimalType string
	// Documentation
	DocumentType string
	Country      string
}

// Quote is a resolved price for one vendor/service/request combination.
type Quote struct {
	VendorID      string
	VendorName    string
	ServiceType   entity.ServiceType
	PricePerUnit  float64
	EffectiveDate time.Time
	Note          string // Human-readable provenance of the chosen entry.
}

// QuoteUsecase resolves applicable prices from vendors' historical price
// lists.
type QuoteUsecase interface {
	// GetPriceQuote resolves the applicable price for one vendor and one
	// request: entries of the requested service type whose scope matches the
	// request, most recent effective date wins. Returns (nil, nil) when no
	// entry matches; a missing vendor id is an error.
	GetPriceQuote(ctx context.Context, vendorID string, serviceType entity.ServiceType, req *QuoteRequest) (*Quote, error)

	// CompareQuotes resolves a quote from every vendor offering the service
	// type and returns the non-nil results sorted ascending by price. A
	// failure for one vendor is logged and skipped, never aborting the
	// comparison.
	CompareQuotes(ctx context.Context, serviceType entity.ServiceType, req *QuoteRequest) ([]*Quote, error)
}
