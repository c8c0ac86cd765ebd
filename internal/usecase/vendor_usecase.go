// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"arklane/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries a vendor mailing address across the API boundary.
type AddressInput struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// BankDetailsInput carries vendor payment routing details.
type BankDetailsInput struct {
	AccountNumber string
	RoutingNumber string
	SwiftCode     string
}

// AddVendorInput defines the data required to register a new vendor.
// The registry assigns the id, the date added and the default performance
// metrics itself.
type AddVendorInput struct {
	Name          string
	VendorType    string
	ContactPerson string
	Email         string
	Phone         string
	Address       AddressInput
	PaymentTerms  string
	TaxID         string
	BankDetails   BankDetailsInput
	ServiceTypes  []entity.ServiceType
	ServiceAreas  []string
	Rating        float64
}

// UpdateVendorInput defines a partial vendor update. Nil fields keep the
// stored value; non-nil fields replace it.
type UpdateVendorInput struct {
	Name          *string
	VendorType    *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *AddressInput
	PaymentTerms  *string
	TaxID         *string
	BankDetails   *BankDetailsInput
	ServiceTypes  []entity.ServiceType
	ServiceAreas  []string
	Rating        *float64
}

// AddPricingInput defines one new price entry for a vendor. The match fields
// are flat at the boundary; the registry builds the typed scope the service
// type requires. A nil EffectiveDate defaults to now.
type AddPricingInput struct {
	ServiceType   entity.ServiceType
	PricePerUnit  float64
	EffectiveDate *time.Time

	// Transport / CustomsBrokerage
	Origin      string
	Destination string
	// Veterinary / Feeding / Crating
	AnimalType string
	// Documentation
	DocumentType string
	Country      string
}

// UpdatePerformanceInput replaces a vendor's performance metrics wholesale.
// The registry stamps the review date itself.
type UpdatePerformanceInput struct {
	OnTimeDeliveryRate  float64
	AverageResponseTime float64
	DisputeRate         float64
}

// VendorUsecase defines the interface for vendor registry operations.
// This is the contract that the delivery layer will depend on.
type VendorUsecase interface {
	// GetVendor returns the vendor with the given id, or (nil, nil) if no
	// such vendor exists.
	GetVendor(ctx context.Context, id string) (*entity.Vendor, error)

	// ListVendorsByServiceType returns vendors offering the service type,
	// in stable store order.
	ListVendorsByServiceType(ctx context.Context, serviceType entity.ServiceType) ([]*entity.Vendor, error)

	// ListVendorsByServiceArea returns vendors serving the area tag.
	ListVendorsByServiceArea(ctx context.Context, area string) ([]*entity.Vendor, error)

	// ListVendorsByRating returns vendors with rating >= minRating, sorted
	// descending by rating.
	ListVendorsByRating(ctx context.Context, minRating float64) ([]*entity.Vendor, error)

	// AddVendor registers a new vendor and returns the stored record with
	// its generated id.
	AddVendor(ctx context.Context, input *AddVendorInput) (*entity.Vendor, error)

	// UpdateVendor merges the non-nil input fields onto the stored record.
	UpdateVendor(ctx context.Context, id string, input *UpdateVendorInput) (*entity.Vendor, error)

	// DeleteVendor removes the vendor from the registry.
	DeleteVendor(ctx context.Context, id string) error

	// AddVendorPricing appends a price entry to the vendor's history.
	AddVendorPricing(ctx context.Context, id string, input *AddPricingInput) (*entity.Vendor, error)

	// UpdateVendorPerformance replaces the vendor's metrics and stamps the
	// review date.
	UpdateVendorPerformance(ctx context.Context, id string, input *UpdatePerformanceInput) (*entity.Vendor, error)
}
