// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"arklane/internal/domain/entity"
)

// ErrVendorNotFound is a domain-specific error returned when a vendor id has
// no record in the store. It is distinct from an empty list result, which is
// a normal return.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the standard operations for vendor persistence.
// The application layer depends on this interface, not the concrete store.
type VendorRepository interface {
	// FindByID retrieves a single vendor by id, or ErrVendorNotFound.
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)

	// ListByServiceType retrieves vendors offering the given service type.
	// Order is insertion order and stable across calls.
	ListByServiceType(ctx context.Context, serviceType entity.ServiceType) ([]*entity.Vendor, error)

	// ListByServiceArea retrieves vendors serving the given area tag.
	ListByServiceArea(ctx context.Context, area string) ([]*entity.Vendor, error)

	// ListByMinRating retrieves vendors with rating >= minRating, sorted
	// descending by rating; ties keep insertion order.
	ListByMinRating(ctx context.Context, minRating float64) ([]*entity.Vendor, error)

	// Create persists a new vendor record.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// UpdateFields applies a mutation to an existing vendor record
	// atomically: apply runs while the store holds the record's write lock,
	// so a concurrent append or metrics update can never be lost. Returning
	// an error from apply aborts the update and leaves the record untouched.
	// Returns the updated record, or ErrVendorNotFound.
	UpdateFields(ctx context.Context, id string, apply func(*entity.Vendor) error) (*entity.Vendor, error)

	// Delete removes a vendor record, or returns ErrVendorNotFound.
	Delete(ctx context.Context, id string) error

	// AppendPricing appends a price entry to a vendor's history, or returns
	// ErrVendorNotFound.
	AppendPricing(ctx context.Context, id string, entry entity.PriceEntry) (*entity.Vendor, error)

	// UpdateMetrics replaces a vendor's performance metrics wholesale, or
	// returns ErrVendorNotFound.
	UpdateMetrics(ctx context.Context, id string, metrics entity.PerformanceMetrics) (*entity.Vendor, error)
}
