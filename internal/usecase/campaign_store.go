package usecase

import (
	"context"
	"sort"
	"sync"

	"camptrack/internal/domain"
	"camptrack/pkg/logger"
	"camptrack/pkg/metrics"
)

// CampaignStore owns the authoritative in-memory campaign collection.
// Items keep their insertion order; sorting produces a separate view and
// never reorders the canonical collection. Every mutation writes the full
// collection back through the persistence bridge.
type CampaignStore struct {
	mu            sync.RWMutex
	items         []domain.Campaign
	sortField     domain.SortField
	sortDirection domain.SortDirection

	persistence domain.CampaignPersistence
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

// creates a new campaign store with the default sort state
func NewCampaignStore(persistence domain.CampaignPersistence, logger *logger.Logger, metrics *metrics.Metrics) *CampaignStore {
	return &CampaignStore{
		items:         []domain.Campaign{},
		sortField:     domain.SortByName,
		sortDirection: domain.Ascending,
		persistence:   persistence,
		logger:        logger,
		metrics:       metrics,
	}
}

// Initialize seeds the collection from the persistence bridge. Records are
// taken as-is; validation happened at the form boundary before they were
// ever persisted.
func (s *CampaignStore) Initialize(items []domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []domain.Campaign{}
	}
	s.items = items
	s.metrics.SetCampaignCount(len(s.items))
}

// Add appends the campaign to the end of the canonical collection and
// writes the full collection back. The caller guarantees the id is unique;
// the store does not re-validate.
func (s *CampaignStore) Add(ctx context.Context, c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, c)
	s.metrics.RecordStoreOperation("add")
	s.metrics.SetCampaignCount(len(s.items))
	s.save(ctx)
}

// Remove deletes the campaign with the given id. A missing id is a no-op,
// not an error; the save still runs so the persisted state stays in step.
func (s *CampaignStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.items {
		if c.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.metrics.RecordStoreOperation("remove")
	s.metrics.SetCampaignCount(len(s.items))
	s.save(ctx)
}

// SetSort toggles the direction when the field is already active and
// resets to ascending otherwise. Sort state is session-only and never
// persisted.
func (s *CampaignStore) SetSort(field domain.SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if field == s.sortField {
		if s.sortDirection == domain.Ascending {
			s.sortDirection = domain.Descending
		} else {
			s.sortDirection = domain.Ascending
		}
	} else {
		s.sortField = field
		s.sortDirection = domain.Ascending
	}
	s.metrics.RecordStoreOperation("set_sort")
}

// SortState returns the active sort field and direction.
func (s *CampaignStore) SortState() (domain.SortField, domain.SortDirection) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortField, s.sortDirection
}

// SortedView returns a new ordered sequence of campaigns with profit
// computed in-line. The sort is stable, so records that compare equal on
// the active field keep their insertion order in both directions.
func (s *CampaignStore) SortedView() []domain.CampaignView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]domain.CampaignView, len(s.items))
	for i, c := range s.items {
		views[i] = domain.CampaignView{Campaign: c, Profit: c.Profit()}
	}

	field, direction := s.sortField, s.sortDirection
	sort.SliceStable(views, func(i, j int) bool {
		cmp := domain.Compare(views[i].Campaign, views[j].Campaign, field)
		if direction == domain.Descending {
			cmp = -cmp
		}
		return cmp < 0
	})

	s.metrics.RecordStoreOperation("sorted_view")
	return views
}

// Len returns the current number of campaigns.
func (s *CampaignStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// save writes the full collection through the bridge. It runs under the
// write lock so a save always carries the post-mutation state and an older
// save can never clobber a newer one. A write failure leaves the in-memory
// collection authoritative for the rest of the session.
func (s *CampaignStore) save(ctx context.Context) {
	snapshot := make([]domain.Campaign, len(s.items))
	copy(snapshot, s.items)

	if err := s.persistence.Save(ctx, snapshot); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to persist campaign collection, in-memory state unaffected")
	}
}
