package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"arklane/internal/delivery/http/response"
	"arklane/internal/domain/entity"
	"arklane/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler holds dependencies for vendor registry handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

type addVendorRequest struct {
	Name          string         `json:"name" validate:"required"`
	VendorType    string         `json:"vendorType"`
	ContactPerson string         `json:"contactPerson"`
	Email         string         `json:"email" validate:"omitempty,email"`
	Phone         string         `json:"phone"`
	Address       addressDTO     `json:"address"`
	PaymentTerms  string         `json:"paymentTerms"`
	TaxID         string         `json:"taxId"`
	BankDetails   bankDetailsDTO `json:"bankDetails"`
	ServiceTypes  []string       `json:"serviceTypes" validate:"required,min=1"`
	ServiceAreas  []string       `json:"serviceAreas"`
	Rating        float64        `json:"rating" validate:"gte=0,lte=5"`
}

type updateVendorRequest struct {
	Name          *string         `json:"name"`
	VendorType    *string         `json:"vendorType"`
	ContactPerson *string         `json:"contactPerson"`
	Email         *string         `json:"email" validate:"omitempty,email"`
	Phone         *string         `json:"phone"`
	Address       *addressDTO     `json:"address"`
	PaymentTerms  *string         `json:"paymentTerms"`
	TaxID         *string         `json:"taxId"`
	BankDetails   *bankDetailsDTO `json:"bankDetails"`
	ServiceTypes  []string        `json:"serviceTypes"`
	ServiceAreas  []string        `json:"serviceAreas"`
	Rating        *float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

type addPricingRequest struct {
	ServiceType   string     `json:"serviceType" validate:"required"`
	PricePerUnit  float64    `json:"pricePerUnit" validate:"gte=0"`
	EffectiveDate *time.Time `json:"effectiveDate"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	AnimalType    string     `json:"animalType"`
	DocumentType  string     `json:"documentType"`
	Country       string     `json:"country"`
}

type updatePerformanceRequest struct {
	OnTimeDeliveryRate  float64 `json:"onTimeDeliveryRate" validate:"gte=0,lte=100"`
	AverageResponseTime float64 `json:"averageResponseTime" validate:"gte=0"`
	DisputeRate         float64 `json:"disputeRate" validate:"gte=0,lte=100"`
}

// AddVendor handles vendor registration.
func (h *VendorHandler) AddVendor(c echo.Context) error {
	var req addVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	serviceTypes := make([]entity.ServiceType, 0, len(req.ServiceTypes))
	for _, t := range req.ServiceTypes {
		serviceTypes = append(serviceTypes, entity.ServiceType(t))
	}

	vendor, err := h.uc.AddVendor(c.Request().Context(), &usecase.AddVendorInput{
		Name:          req.Name,
		VendorType:    req.VendorType,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address: usecase.AddressInput{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			Zip:     req.Address.Zip,
			Country: req.Address.Country,
		},
		PaymentTerms: req.PaymentTerms,
		TaxID:        req.TaxID,
		BankDetails: usecase.BankDetailsInput{
			AccountNumber: req.BankDetails.AccountNumber,
			RoutingNumber: req.BankDetails.RoutingNumber,
			SwiftCode:     req.BankDetails.SwiftCode,
		},
		ServiceTypes: serviceTypes,
		ServiceAreas: req.ServiceAreas,
		Rating:       req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVendorResponse(vendor), "Vendor registered successfully")
}

// GetVendor returns a single vendor by id.
func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendor, err := h.uc.GetVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if vendor == nil {
		return response.NotFound(c, "VENDOR_NOT_FOUND", "No vendor exists with the given id")
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor), "")
}

// ListVendors lists vendors filtered by serviceType, serviceArea or
// minRating query parameters. Exactly one filter applies, checked in that
// order.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	ctx := c.Request().Context()

	if serviceType := c.QueryParam("serviceType"); serviceType != "" {
		vendors, err := h.uc.ListVendorsByServiceType(ctx, entity.ServiceType(serviceType))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toVendorResponses(vendors), "")
	}

	if area := c.QueryParam("serviceArea"); area != "" {
		vendors, err := h.uc.ListVendorsByServiceArea(ctx, area)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toVendorResponses(vendors), "")
	}

	if raw := c.QueryParam("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "minRating must be a number")
		}
		vendors, err := h.uc.ListVendorsByRating(ctx, minRating)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toVendorResponses(vendors), "")
	}

	return response.BadRequest(c, "MISSING_FILTER", "One of serviceType, serviceArea or minRating is required")
}

// UpdateVendor merges the provided fields onto an existing vendor.
func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	var req updateVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateVendorInput{
		Name:          req.Name,
		VendorType:    req.VendorType,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		PaymentTerms:  req.PaymentTerms,
		TaxID:         req.TaxID,
		ServiceAreas:  req.ServiceAreas,
		Rating:        req.Rating,
	}
	if req.Address != nil {
		input.Address = &usecase.AddressInput{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			Zip:     req.Address.Zip,
			Country: req.Address.Country,
		}
	}
	if req.BankDetails != nil {
		input.BankDetails = &usecase.BankDetailsInput{
			AccountNumber: req.BankDetails.AccountNumber,
			RoutingNumber: req.BankDetails.RoutingNumber,
			SwiftCode:     req.BankDetails.SwiftCode,
		}
	}
	if req.ServiceTypes != nil {
		serviceTypes := make([]entity.ServiceType, 0, len(req.ServiceTypes))
		for _, t := range req.ServiceTypes {
			serviceTypes = append(serviceTypes, entity.ServiceType(t))
		}
		input.ServiceTypes = serviceTypes
	}

	vendor, err := h.uc.UpdateVendor(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor), "Vendor updated successfully")
}

// DeleteVendor removes a vendor from the registry.
func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	if err := h.uc.DeleteVendor(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Vendor deleted successfully")
}

// AddPricing appends a price entry to a vendor's history.
func (h *VendorHandler) AddPricing(c echo.Context) error {
	var req addPricingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price entry input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vendor, err := h.uc.AddVendorPricing(c.Request().Context(), c.Param("id"), &usecase.AddPricingInput{
		ServiceType:   entity.ServiceType(req.ServiceType),
		PricePerUnit:  req.PricePerUnit,
		EffectiveDate: req.EffectiveDate,
		Origin:        req.Origin,
		Destination:   req.Destination,
		AnimalType:    req.AnimalType,
		DocumentType:  req.DocumentType,
		Country:       req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVendorResponse(vendor), "Price entry recorded successfully")
}

// UpdatePerformance replaces a vendor's performance metrics.
func (h *VendorHandler) UpdatePerformance(c echo.Context) error {
	var req updatePerformanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid performance input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vendor, err := h.uc.UpdateVendorPerformance(c.Request().Context(), c.Param("id"), &usecase.UpdatePerformanceInput{
		OnTimeDeliveryRate:  req.OnTimeDeliveryRate,
		AverageResponseTime: req.AverageResponseTime,
		DisputeRate:         req.DisputeRate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor), "Performance metrics updated successfully")
}
