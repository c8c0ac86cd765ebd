// Package seed loads a small set of sample vendors into the registry at
// startup. It replaces the mock data the original dashboard shipped client
// side, and is only active when seeding is enabled in configuration.
package seed

import (
	"context"
	"log/slog"
	"time"

	"arklane/config"
	"arklane/internal/domain/entity"
	"arklane/internal/usecase"

	"github.com/pkg/errors"
)

// Run registers the sample vendors through the registry usecase so seeded
// data passes the same validation as API input.
func Run(ctx context.Context, cfg *config.Config, vendors usecase.VendorUsecase, logger *slog.Logger) error {
	if cfg.Seed == nil || !cfg.Seed.Enabled {
		return nil
	}

	for _, fixture := range fixtures() {
		vendor, err := vendors.AddVendor(ctx, &fixture.vendor)
		if err != nil {
			return errors.Wrapf(err, "seed vendor %q", fixture.vendor.Name)
		}
		for i := range fixture.pricing {
			if _, err := vendors.AddVendorPricing(ctx, vendor.ID, &fixture.pricing[i]); err != nil {
				return errors.Wrapf(err, "seed pricing for %q", fixture.vendor.Name)
			}
		}
		if fixture.performance != nil {
			if _, err := vendors.UpdateVendorPerformance(ctx, vendor.ID, fixture.performance); err != nil {
				return errors.Wrapf(err, "seed performance for %q", fixture.vendor.Name)
			}
		}
	}

	logger.Info("Seeded sample vendors", slog.Int("count", len(fixtures())))

	return nil
}

type vendorFixture struct {
	vendor      usecase.AddVendorInput
	pricing     []usecase.AddPricingInput
	performance *usecase.UpdatePerformanceInput
}

func fixtures() []vendorFixture {
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		return &t
	}

	return []vendorFixture{
		{
			vendor: usecase.AddVendorInput{
				Name:          "Global Animal Transport Co.",
				VendorType:    "Carrier",
				ContactPerson: "Maria Santos",
				Email:         "ops@gatco.example",
				Phone:         "+1-555-0134",
				Address:       usecase.AddressInput{City: "Miami", State: "FL", Country: "USA"},
				PaymentTerms:  "Net 30",
				ServiceTypes:  []entity.ServiceType{entity.ServiceTransport, entity.ServiceCrating},
				ServiceAreas:  []string{"USA", "Europe", "South America"},
				Rating:        4.8,
			},
			pricing: []usecase.AddPricingInput{
				{
					ServiceType:   entity.ServiceTransport,
					PricePerUnit:  1000,
					EffectiveDate: date(2023, time.January, 1),
					Origin:        "USA",
					Destination:   "Any",
				},
				{
					ServiceType:   entity.ServiceTransport,
					PricePerUnit:  1200,
					EffectiveDate: date(2023, time.June, 1),
					Origin:        "USA",
					Destination:   "Europe",
				},
				{
					ServiceType:   entity.ServiceCrating,
					PricePerUnit:  250,
					EffectiveDate: date(2023, time.March, 15),
					AnimalType:    "Any",
				},
			},
			performance: &usecase.UpdatePerformanceInput{
				OnTimeDeliveryRate:  95.2,
				AverageResponseTime: 2.4,
				DisputeRate:         1.2,
			},
		},
		{
			vendor: usecase.AddVendorInput{
				Name:          "Safari Veterinary Services",
				VendorType:    "Clinic",
				ContactPerson: "Dr. James Okello",
				Email:         "vets@safari-vet.example",
				Phone:         "+254-20-555-019",
				Address:       usecase.AddressInput{City: "Nairobi", Country: "Kenya"},
				PaymentTerms:  "Net 15",
				ServiceTypes:  []entity.ServiceType{entity.ServiceVeterinary, entity.ServiceFeeding},
				ServiceAreas:  []string{"Africa", "Europe"},
				Rating:        4.5,
			},
			pricing: []usecase.AddPricingInput{
				{
					ServiceType:   entity.ServiceVeterinary,
					PricePerUnit:  180,
					EffectiveDate: date(2023, time.February, 10),
					AnimalType:    "Any",
				},
				{
					ServiceType:   entity.ServiceVeterinary,
					PricePerUnit:  320,
					EffectiveDate: date(2023, time.August, 1),
					AnimalType:    "Big Cat",
				},
				{
					ServiceType:   entity.ServiceFeeding,
					PricePerUnit:  45,
					EffectiveDate: date(2023, time.February, 10),
					AnimalType:    "Any",
				},
			},
			performance: &usecase.UpdatePerformanceInput{
				OnTimeDeliveryRate:  98.1,
				AverageResponseTime: 1.1,
				DisputeRate:         0,
			},
		},
		{
			vendor: usecase.AddVendorInput{
				Name:          "ClearPath Customs & Docs",
				VendorType:    "Broker",
				ContactPerson: "Lena Fischer",
				Email:         "desk@clearpath.example",
				Phone:         "+49-40-555-220",
				Address:       usecase.AddressInput{City: "Hamburg", Country: "Germany"},
				PaymentTerms:  "Net 45",
				ServiceTypes:  []entity.ServiceType{entity.ServiceDocumentation, entity.ServiceCustomsBrokerage},
				ServiceAreas:  []string{"Europe", "USA"},
				Rating:        4.1,
			},
			pricing: []usecase.AddPricingInput{
				{
					ServiceType:   entity.ServiceDocumentation,
					PricePerUnit:  90,
					EffectiveDate: date(2023, time.April, 1),
					DocumentType:  "CITES Permit",
					Country:       "Germany",
				},
				{
					ServiceType:   entity.ServiceCustomsBrokerage,
					PricePerUnit:  410,
					EffectiveDate: date(2023, time.May, 20),
					Origin:        "USA",
					Destination:   "Germany",
				},
			},
			performance: &usecase.UpdatePerformanceInput{
				OnTimeDeliveryRate:  88.7,
				AverageResponseTime: 6.5,
				DisputeRate:         3.4,
			},
		},
	}
}
