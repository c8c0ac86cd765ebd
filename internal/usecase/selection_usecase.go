package usecase

import (
	"context"

	"arklane/internal/domain/entity"
)

// SelectionCriteria narrows the candidate set before scoring. Nil fields
// apply no filter.
type SelectionCriteria struct {
	ServiceArea *string
	MinRating   *float64
}

// SelectionResult is the winning vendor together with its computed fitness
// score in [0, 100].
type SelectionResult struct {
	Vendor *entity.Vendor
	Score  float64
}

// SelectionUsecase picks the best vendor for a requested service.
type SelectionUsecase interface {
	// FindBestVendor filters vendors offering the service type by the given
	// criteria, scores the survivors and returns the top one. An empty
	// candidate set at any stage yields (nil, nil), never an error.
	FindBestVendor(ctx context.Context, serviceType entity.ServiceType, criteria *SelectionCriteria) (*SelectionResult, error)
}
