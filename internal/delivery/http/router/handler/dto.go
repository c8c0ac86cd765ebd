// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"arklane/internal/domain/entity"
	"arklane/internal/usecase"
)

// addressDTO mirrors entity.Address at the JSON boundary.
type addressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type bankDetailsDTO struct {
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
	SwiftCode     string `json:"swiftCode"`
}

// priceEntryDTO flattens the typed price scope back into the per-service
// fields API clients send and receive.
type priceEntryDTO struct {
	ServiceType   string    `json:"serviceType"`
	PricePerUnit  float64   `json:"pricePerUnit"`
	EffectiveDate time.Time `json:"effectiveDate"`
	Origin        string    `json:"origin,omitempty"`
	Destination   string    `json:"destination,omitempty"`
	AnimalType    string    `json:"animalType,omitempty"`
	DocumentType  string    `json:"documentType,omitempty"`
	Country       string    `json:"country,omitempty"`
}

type metricsDTO struct {
	OnTimeDeliveryRate  float64    `json:"onTimeDeliveryRate"`
	AverageResponseTime float64    `json:"averageResponseTime"`
	DisputeRate         float64    `json:"disputeRate"`
	LastReviewDate      *time.Time `json:"lastReviewDate"`
}

type vendorResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	VendorType        string          `json:"vendorType"`
	ContactPerson     string          `json:"contactPerson"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Address           addressDTO      `json:"address"`
	PaymentTerms      string          `json:"paymentTerms"`
	TaxID             string          `json:"taxId"`
	BankDetails       bankDetailsDTO  `json:"bankDetails"`
	ServiceTypes      []string        `json:"serviceTypes"`
	ServiceAreas      []string        `json:"serviceAreas"`
	Rating            float64         `json:"rating"`
	HistoricalPricing []priceEntryDTO `json:"historicalPricing"`
	Performance       metricsDTO      `json:"performanceMetrics"`
	DateAdded         time.Time       `json:"dateAdded"`
}

type quoteResponse struct {
	VendorID      string    `json:"vendorId"`
	VendorName    string    `json:"vendorName"`
	ServiceType   string    `json:"serviceType"`
	PricePerUnit  float64   `json:"pricePerUnit"`
	EffectiveDate time.Time `json:"effectiveDate"`
	Note          string    `json:"note"`
}

type reportResponse struct {
	VendorID       string          `json:"vendorId"`
	VendorName     string          `json:"vendorName"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	Metrics        metricsDTO      `json:"performanceMetrics"`
	PricingHistory []priceEntryDTO `json:"pricingHistory"`
	Recommendation []string        `json:"recommendations"`
}

type selectionResponse struct {
	Vendor *vendorResponse `json:"vendor"`
	Score  float64         `json:"score"`
}

func toVendorResponse(v *entity.Vendor) *vendorResponse {
	serviceTypes := make([]string, 0, len(v.ServiceTypes))
	for _, t := range v.ServiceTypes {
		serviceTypes = append(serviceTypes, t.String())
	}

	pricing := make([]priceEntryDTO, 0, len(v.HistoricalPricing))
	for _, entry := range v.HistoricalPricing {
		pricing = append(pricing, toPriceEntryDTO(entry))
	}

	return &vendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		VendorType:    v.VendorType,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address: addressDTO{
			Street:  v.Address.Street,
			City:    v.Address.City,
			State:   v.Address.State,
			Zip:     v.Address.Zip,
			Country: v.Address.Country,
		},
		PaymentTerms: v.PaymentTerms,
		TaxID:        v.TaxID,
		BankDetails: bankDetailsDTO{
			AccountNumber: v.BankDetails.AccountNumber,
			RoutingNumber: v.BankDetails.RoutingNumber,
			SwiftCode:     v.BankDetails.SwiftCode,
		},
		ServiceTypes:      serviceTypes,
		ServiceAreas:      v.ServiceAreas,
		Rating:            v.Rating,
		HistoricalPricing: pricing,
		Performance: metricsDTO{
			OnTimeDeliveryRate:  v.Performance.OnTimeDeliveryRate,
			AverageResponseTime: v.Performance.AverageResponseTime,
			DisputeRate:         v.Performance.DisputeRate,
			LastReviewDate:      v.Performance.LastReviewDate,
		},
		DateAdded: v.DateAdded,
	}
}

func toVendorResponses(vendors []*entity.Vendor) []*vendorResponse {
	out := make([]*vendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorResponse(v))
	}

	return out
}

func toPriceEntryDTO(entry entity.PriceEntry) priceEntryDTO {
	dto := priceEntryDTO{
		ServiceType:   entry.ServiceType.String(),
		PricePerUnit:  entry.PricePerUnit,
		EffectiveDate: entry.EffectiveDate,
	}

	switch scope := entry.Scope.(type) {
	case entity.RouteScope:
		dto.Origin = scope.Origin.String()
		dto.Destination = scope.Destination.String()
	case entity.AnimalScope:
		dto.AnimalType = scope.AnimalType.String()
	case entity.DocumentScope:
		dto.DocumentType = scope.DocumentType
		dto.Country = scope.Country
	}

	return dto
}

func toQuoteResponse(q *usecase.Quote) *quoteResponse {
	return &quoteResponse{
		VendorID:      q.VendorID,
		VendorName:    q.VendorName,
		ServiceType:   q.ServiceType.String(),
		PricePerUnit:  q.PricePerUnit,
		EffectiveDate: q.EffectiveDate,
		Note:          q.Note,
	}
}
