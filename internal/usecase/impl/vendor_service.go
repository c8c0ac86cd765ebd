// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "arklane/internal/delivery/context"
	"arklane/internal/domain/entity"
	domainerrors "arklane/internal/domain/errors"
	"arklane/internal/domain/repository"
	"arklane/internal/errors"
	"arklane/internal/usecase"

	"github.com/google/uuid"
)

const vendorIDPrefix = "VEN"

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(vendorRepo repository.VendorRepository, logger *slog.Logger) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// generateVendorID produces an opaque id: fixed prefix, millisecond
// timestamp, random suffix. The uuid fragment makes collisions under normal
// operation a non-concern.
func generateVendorID(now time.Time) string {
	suffix, _, _ := strings.Cut(uuid.NewString(), "-")

	return fmt.Sprintf("%s-%d-%s", vendorIDPrefix, now.UnixMilli(), suffix)
}

// GetVendor returns the vendor with the given id. A missing id is a normal
// empty result here, not an error; vendor-scoped mutations treat it as one.
func (srv *vendorService) GetVendor(ctx context.Context, id string) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return vendor, nil
}

// ListVendorsByServiceType returns vendors offering the service type.
func (srv *vendorService) ListVendorsByServiceType(ctx context.Context, serviceType entity.ServiceType) ([]*entity.Vendor, error) {
	if !serviceType.IsValid() {
		return nil, domainerrors.ErrInvalidServiceType.WithDetails(serviceType.String())
	}

	vendors, err := srv.vendorRepo.ListByServiceType(ctx, serviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors by service type")
	}

	return vendors, nil
}

// ListVendorsByServiceArea returns vendors serving the area tag.
func (srv *vendorService) ListVendorsByServiceArea(ctx context.Context, area string) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.ListByServiceArea(ctx, area)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors by service area")
	}

	return vendors, nil
}

// ListVendorsByRating returns vendors with rating >= minRating, best first.
func (srv *vendorService) ListVendorsByRating(ctx context.Context, minRating float64) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.ListByMinRating(ctx, minRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors by rating")
	}

	return vendors, nil
}

// AddVendor registers a new vendor with a generated id, empty price history
// and default performance metrics.
func (srv *vendorService) AddVendor(ctx context.Context, input *usecase.AddVendorInput) (*entity.Vendor, error) {
	for _, serviceType := range input.ServiceTypes {
		if !serviceType.IsValid() {
			return nil, domainerrors.ErrInvalidServiceType.WithDetails(serviceType.String())
		}
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	now := time.Now()
	vendor := &entity.Vendor{
		ID:            generateVendorID(now),
		Name:          input.Name,
		VendorType:    input.VendorType,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address: entity.Address{
			Street:  input.Address.Street,
			City:    input.Address.City,
			State:   input.Address.State,
			Zip:     input.Address.Zip,
			Country: input.Address.Country,
		},
		PaymentTerms: input.PaymentTerms,
		TaxID:        input.TaxID,
		BankDetails: entity.BankDetails{
			AccountNumber: input.BankDetails.AccountNumber,
			RoutingNumber: input.BankDetails.RoutingNumber,
			SwiftCode:     input.BankDetails.SwiftCode,
		},
		ServiceTypes:      append(entity.ServiceTypes(nil), input.ServiceTypes...),
		ServiceAreas:      append([]string(nil), input.ServiceAreas...),
		Rating:            input.Rating,
		HistoricalPricing: []entity.PriceEntry{},
		Performance:       entity.DefaultPerformanceMetrics(),
		DateAdded:         now,
	}

	if err := srv.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to create vendor")
	}

	srv.log(ctx).Info("Vendor registered",
		slog.String("vendor_id", vendor.ID),
		slog.String("name", vendor.Name),
	)

	return vendor, nil
}

// UpdateVendor merges the non-nil input fields onto the stored record. The
// merge runs inside the store's atomic update, so a concurrent pricing or
// metrics change can never be overwritten by the write-back.
func (srv *vendorService) UpdateVendor(ctx context.Context, id string, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.UpdateFields(ctx, id, func(vendor *entity.Vendor) error {
		applyVendorUpdate(vendor, input)

		if vendor.Rating < 0 || vendor.Rating > 5 {
			return domainerrors.ErrInvalidRating
		}
		for _, serviceType := range vendor.ServiceTypes {
			if !serviceType.IsValid() {
				return domainerrors.ErrInvalidServiceType.WithDetails(serviceType.String())
			}
		}

		return nil
	})
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound.WithDetails(id)
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vendor")
	}

	return vendor, nil
}

func applyVendorUpdate(vendor *entity.Vendor, input *usecase.UpdateVendorInput) {
	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.VendorType != nil {
		vendor.VendorType = *input.VendorType
	}
	if input.ContactPerson != nil {
		vendor.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Address != nil {
		vendor.Address = entity.Address{
			Street:  input.Address.Street,
			City:    input.Address.City,
			State:   input.Address.State,
			Zip:     input.Address.Zip,
			Country: input.Address.Country,
		}
	}
	if input.PaymentTerms != nil {
		vendor.PaymentTerms = *input.PaymentTerms
	}
	if input.TaxID != nil {
		vendor.TaxID = *input.TaxID
	}
	if input.BankDetails != nil {
		vendor.BankDetails = entity.BankDetails{
			AccountNumber: input.BankDetails.AccountNumber,
			RoutingNumber: input.BankDetails.RoutingNumber,
			SwiftCode:     input.BankDetails.SwiftCode,
		}
	}
	if input.ServiceTypes != nil {
		vendor.ServiceTypes = append(entity.ServiceTypes(nil), input.ServiceTypes...)
	}
	if input.ServiceAreas != nil {
		vendor.ServiceAreas = append([]string(nil), input.ServiceAreas...)
	}
	if input.Rating != nil {
		vendor.Rating = *input.Rating
	}
}

// DeleteVendor removes the vendor from the registry.
func (srv *vendorService) DeleteVendor(ctx context.Context, id string) error {
	if err := srv.vendorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound.WithDetails(id)
		}

		return errors.Wrap(err, "failed to delete vendor")
	}

	srv.log(ctx).Info("Vendor removed", slog.String("vendor_id", id))

	return nil
}

// AddVendorPricing builds the typed scope for the entry's service type,
// defaults the effective date to now and appends the entry.
func (srv *vendorService) AddVendorPricing(ctx context.Context, id string, input *usecase.AddPricingInput) (*entity.Vendor, error) {
	if !input.ServiceType.IsValid() {
		return nil, domainerrors.ErrInvalidServiceType.WithDetails(input.ServiceType.String())
	}

	scope, err := buildPriceScope(input)
	if err != nil {
		return nil, err
	}

	effective := time.Now()
	if input.EffectiveDate != nil {
		effective = *input.EffectiveDate
	}

	entry := entity.PriceEntry{
		ServiceType:   input.ServiceType,
		PricePerUnit:  input.PricePerUnit,
		EffectiveDate: effective,
		Scope:         scope,
	}

	vendor, err := srv.vendorRepo.AppendPricing(ctx, id, entry)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to append pricing")
	}

	srv.log(ctx).Info("Price entry recorded",
		slog.String("vendor_id", id),
		slog.String("service_type", entry.ServiceType.String()),
		slog.Float64("price_per_unit", entry.PricePerUnit),
	)

	return vendor, nil
}

// buildPriceScope maps the flat input fields onto the scope variant the
// service type requires.
func buildPriceScope(input *usecase.AddPricingInput) (entity.PriceScope, error) {
	switch input.ServiceType {
	case entity.ServiceTransport, entity.ServiceCustomsBrokerage:
		if input.Origin == "" || input.Destination == "" {
			return nil, domainerrors.ErrInvalidPriceScope.WithDetails("origin and destination are required for route pricing")
		}

		return entity.RouteScope{
			Origin:      entity.MatchKey(input.Origin),
			Destination: entity.MatchKey(input.Destination),
		}, nil
	case entity.ServiceVeterinary, entity.ServiceFeeding, entity.ServiceCrating:
		if input.AnimalType == "" {
			return nil, domainerrors.ErrInvalidPriceScope.WithDetails("animalType is required for animal-service pricing")
		}

		return entity.AnimalScope{AnimalType: entity.MatchKey(input.AnimalType)}, nil
	case entity.ServiceDocumentation:
		if input.DocumentType == "" || input.Country == "" {
			return nil, domainerrors.ErrInvalidPriceScope.WithDetails("documentType and country are required for documentation pricing")
		}

		return entity.DocumentScope{
			DocumentType: input.DocumentType,
			Country:      input.Country,
		}, nil
	default:
		return nil, domainerrors.ErrInvalidServiceType.WithDetails(input.ServiceType.String())
	}
}

// UpdateVendorPerformance replaces the metrics wholesale and stamps the
// review date.
func (srv *vendorService) UpdateVendorPerformance(ctx context.Context, id string, input *usecase.UpdatePerformanceInput) (*entity.Vendor, error) {
	if input.OnTimeDeliveryRate < 0 || input.OnTimeDeliveryRate > 100 ||
		input.DisputeRate < 0 || input.DisputeRate > 100 ||
		input.AverageResponseTime < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("performance rates must be percentages and response time non-negative")
	}

	now := time.Now()
	metrics := entity.PerformanceMetrics{
		OnTimeDeliveryRate:  input.OnTimeDeliveryRate,
		AverageResponseTime: input.AverageResponseTime,
		DisputeRate:         input.DisputeRate,
		LastReviewDate:      &now,
	}

	vendor, err := srv.vendorRepo.UpdateMetrics(ctx, id, metrics)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update metrics")
	}

	return vendor, nil
}
