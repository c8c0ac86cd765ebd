package entity

import (
	"slices"
	"time"
)

// Vendor is a third-party service provider in the animal-logistics network.
// It owns its price history and performance metrics exclusively, so there
// are no cascading concerns on delete.
type Vendor struct {
	ID            string // Opaque unique identifier, assigned by the registry.
	Name          string
	VendorType    string
	ContactPerson string
	Email         string
	Phone         string
	Address       Address
	PaymentTerms  string
	TaxID         string
	BankDetails   BankDetails

	ServiceTypes ServiceTypes // Service categories the vendor offers.
	ServiceAreas []string     // Country/region tags the vendor serves.
	Rating       float64      // In [0, 5].

	HistoricalPricing []PriceEntry // Ordered by insertion, not by date.
	Performance       PerformanceMetrics
	DateAdded         time.Time
}

// Address is a vendor's mailing address. Informational only.
type Address struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// BankDetails holds a vendor's payment routing details. Informational only.
type BankDetails struct {
	AccountNumber string
	RoutingNumber string
	SwiftCode     string
}

// PerformanceMetrics is the mutable operational record kept per vendor.
type PerformanceMetrics struct {
	OnTimeDeliveryRate  float64    // Percentage in [0, 100].
	AverageResponseTime float64    // Hours, >= 0.
	DisputeRate         float64    // Percentage in [0, 100].
	LastReviewDate      *time.Time // Nil means never reviewed.
}

// DefaultPerformanceMetrics returns the metrics a vendor starts with:
// a clean record, never reviewed.
func DefaultPerformanceMetrics() PerformanceMetrics {
	return PerformanceMetrics{
		OnTimeDeliveryRate:  100,
		AverageResponseTime: 0,
		DisputeRate:         0,
		LastReviewDate:      nil,
	}
}

// OffersService reports whether the vendor offers the given service type.
func (v *Vendor) OffersService(t ServiceType) bool {
	return v.ServiceTypes.Contains(t)
}

// ServesArea reports whether the vendor serves the given country/region tag.
func (v *Vendor) ServesArea(area string) bool {
	return slices.Contains(v.ServiceAreas, area)
}

// Clone returns a deep copy of the vendor. The repository returns clones so
// callers never observe an in-flight mutation of the shared record.
func (v *Vendor) Clone() *Vendor {
	clone := *v
	clone.ServiceTypes = slices.Clone(v.ServiceTypes)
	clone.ServiceAreas = slices.Clone(v.ServiceAreas)
	clone.HistoricalPricing = slices.Clone(v.HistoricalPricing)
	if v.Performance.LastReviewDate != nil {
		reviewed := *v.Performance.LastReviewDate
		clone.Performance.LastReviewDate = &reviewed
	}

	return &clone
}
