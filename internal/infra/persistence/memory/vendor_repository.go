// Package memory contains the concrete implementation of the persistence
// layer as a single shared in-memory collection. The registry core has no
// durable-persistence contract, so the store is a map guarded by one
// readers-writer lock: mutations serialize, reads observe a consistent
// snapshot via deep copies.
package memory

import (
	"context"
	"sort"
	"sync"

	"arklane/internal/domain/entity"
	"arklane/internal/domain/repository"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	mu      sync.RWMutex
	records map[string]*entity.Vendor
	order   []string // Insertion order, kept so list results are stable.
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository() repository.VendorRepository {
	return &vendorRepository{
		records: make(map[string]*entity.Vendor),
	}
}

// FindByID retrieves a single vendor by id.
func (repo *vendorRepository) FindByID(_ context.Context, id string) (*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	vendor, ok := repo.records[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}

	return vendor.Clone(), nil
}

// ListByServiceType retrieves vendors offering the given service type, in
// insertion order.
func (repo *vendorRepository) ListByServiceType(_ context.Context, serviceType entity.ServiceType) ([]*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.filterLocked(func(v *entity.Vendor) bool {
		return v.OffersService(serviceType)
	}), nil
}

// ListByServiceArea retrieves vendors serving the given area tag, in
// insertion order.
func (repo *vendorRepository) ListByServiceArea(_ context.Context, area string) ([]*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.filterLocked(func(v *entity.Vendor) bool {
		return v.ServesArea(area)
	}), nil
}

// ListByMinRating retrieves vendors with rating >= minRating, sorted
// descending by rating. The sort is stable, so equal ratings keep insertion
// order.
func (repo *vendorRepository) ListByMinRating(_ context.Context, minRating float64) ([]*entity.Vendor, error) {
	repo.mu.RLock()
	matched := repo.filterLocked(func(v *entity.Vendor) bool {
		return v.Rating >= minRating
	})
	repo.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	return matched, nil
}

// Create persists a new vendor record.
func (repo *vendorRepository) Create(_ context.Context, vendor *entity.Vendor) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.records[vendor.ID]; !exists {
		repo.order = append(repo.order, vendor.ID)
	}
	repo.records[vendor.ID] = vendor.Clone()

	return nil
}

// UpdateFields applies a mutation to an existing record under the write
// lock. The callback works on a clone, so an error from apply leaves the
// stored record untouched.
func (repo *vendorRepository) UpdateFields(_ context.Context, id string, apply func(*entity.Vendor) error) (*entity.Vendor, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	vendor, ok := repo.records[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}

	updated := vendor.Clone()
	if err := apply(updated); err != nil {
		return nil, err
	}
	repo.records[id] = updated

	return updated.Clone(), nil
}

// Delete removes a vendor record.
func (repo *vendorRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.records[id]; !ok {
		return repository.ErrVendorNotFound
	}
	delete(repo.records, id)
	for i, existing := range repo.order {
		if existing == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}

// AppendPricing appends a price entry to a vendor's history.
func (repo *vendorRepository) AppendPricing(_ context.Context, id string, entry entity.PriceEntry) (*entity.Vendor, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	vendor, ok := repo.records[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}
	vendor.HistoricalPricing = append(vendor.HistoricalPricing, entry)

	return vendor.Clone(), nil
}

// UpdateMetrics replaces a vendor's performance metrics wholesale.
func (repo *vendorRepository) UpdateMetrics(_ context.Context, id string, metrics entity.PerformanceMetrics) (*entity.Vendor, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	vendor, ok := repo.records[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}
	vendor.Performance = metrics

	return vendor.Clone(), nil
}

// filterLocked collects clones of vendors matching keep, in insertion order.
// Callers must hold at least the read lock.
func (repo *vendorRepository) filterLocked(keep func(*entity.Vendor) bool) []*entity.Vendor {
	matched := make([]*entity.Vendor, 0)
	for _, id := range repo.order {
		if vendor := repo.records[id]; keep(vendor) {
			matched = append(matched, vendor.Clone())
		}
	}

	return matched
}
