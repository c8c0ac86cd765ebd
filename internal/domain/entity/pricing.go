package entity

import "time"

// MatchKey is a single price-entry match field. A key is either a concrete
// value or the wildcard, which matches any requested value. Modelling the
// wildcard explicitly keeps sentinel-string comparisons out of the resolver.
type MatchKey string

// Wildcard matches any requested value for its field.
const Wildcard MatchKey = "Any"

// IsAny reports whether the key is the wildcard.
func (k MatchKey) IsAny() bool {
	return k == Wildcard
}

// Matches reports whether the key accepts the requested value.
func (k MatchKey) Matches(value string) bool {
	return k.IsAny() || string(k) == value
}

// String returns the string representation of the MatchKey.
func (k MatchKey) String() string {
	return string(k)
}

// PriceScope is the service-specific part of a price entry. It is a sealed
// union: exactly one concrete scope type exists per family of service types,
// so the quote resolver can switch over it exhaustively.
type PriceScope interface {
	isPriceScope()
}

// RouteScope scopes a price to an origin/destination pair. Used by Transport
// (where either end may be the wildcard) and CustomsBrokerage (exact ends).
type RouteScope struct {
	Origin      MatchKey
	Destination MatchKey
}

func (RouteScope) isPriceScope() {}

// Matches reports whether the route accepts the requested origin and destination.
func (s RouteScope) Matches(origin, destination string) bool {
	return s.Origin.Matches(origin) && s.Destination.Matches(destination)
}

// AnimalScope scopes a price to an animal type, wildcard allowed. Used by
// Veterinary, Feeding and Crating.
type AnimalScope struct {
	AnimalType MatchKey
}

func (AnimalScope) isPriceScope() {}

// Matches reports whether the scope accepts the requested animal type.
func (s AnimalScope) Matches(animalType string) bool {
	return s.AnimalType.Matches(animalType)
}

// DocumentScope scopes a price to a document type in a country. Documentation
// pricing has no wildcard: both fields must match exactly.
type DocumentScope struct {
	DocumentType string
	Country      string
}

func (DocumentScope) isPriceScope() {}

// Matches reports whether the scope accepts the requested document type and country.
func (s DocumentScope) Matches(documentType, country string) bool {
	return s.DocumentType == documentType && s.Country == country
}

// PriceEntry is one historical price point for a vendor's service. A vendor
// may carry multiple entries for the same service type; resolution prefers
// the entry with the latest effective date among those matching a request.
type PriceEntry struct {
	ServiceType   ServiceType
	PricePerUnit  float64 // USD
	EffectiveDate time.Time
	Scope         PriceScope
}

// HasValidScope reports whether the entry's scope type is the one its
// service type requires.
func (e PriceEntry) HasValidScope() bool {
	switch e.ServiceType {
	case ServiceTransport, ServiceCustomsBrokerage:
		_, ok := e.Scope.(RouteScope)
		return ok
	case ServiceVeterinary, ServiceFeeding, ServiceCrating:
		_, ok := e.Scope.(AnimalScope)
		return ok
	case ServiceDocumentation:
		_, ok := e.Scope.(DocumentScope)
		return ok
	default:
		return false
	}
}
