// Package entity contains the core business objects of the project.
package entity

import "slices"

// ServiceType represents the category of service a vendor can provide.
type ServiceType string

const (
	// ServiceTransport indicates live-animal transport between countries.
	ServiceTransport ServiceType = "Transport"
	// ServiceVeterinary indicates veterinary care and health certification.
	ServiceVeterinary ServiceType = "Veterinary"
	// ServiceDocumentation indicates export/import document preparation.
	ServiceDocumentation ServiceType = "Documentation"
	// ServiceFeeding indicates feeding and care during transit.
	ServiceFeeding ServiceType = "Feeding"
	// ServiceCrating indicates crate construction and fitting.
	ServiceCrating ServiceType = "Crating"
	// ServiceCustomsBrokerage indicates customs clearance brokerage.
	ServiceCustomsBrokerage ServiceType = "CustomsBrokerage"
)

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid checks if the ServiceType is a valid value.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTransport, ServiceVeterinary, ServiceDocumentation,
		ServiceFeeding, ServiceCrating, ServiceCustomsBrokerage:
		return true
	default:
		return false
	}
}

// ServiceTypes is a slice of ServiceType for convenience.
type ServiceTypes []ServiceType

// Contains checks if the slice contains a specific service type.
func (ss ServiceTypes) Contains(t ServiceType) bool {
	return slices.Contains(ss, t)
}
