package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"camptrack/internal/domain"
	"camptrack/pkg/logger"
	"camptrack/pkg/metrics"
)

// implements domain.CampaignPersistence over a key-value store
//
// The full collection lives under a single fixed entry as a JSON array.
// Every save is a complete overwrite; there are no partial writes.
type PersistenceBridge struct {
	store   domain.KeyValueStore
	entry   string
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// creates a new persistence bridge writing under the given entry key
func NewPersistenceBridge(store domain.KeyValueStore, entry string, logger *logger.Logger, metrics *metrics.Metrics) *PersistenceBridge {
	return &PersistenceBridge{
		store:   store,
		entry:   entry,
		logger:  logger,
		metrics: metrics,
	}
}

// Load reads the persisted collection. A missing entry yields an empty
// collection. A present but malformed entry also yields an empty
// collection: the condition is logged as a warning and must never abort
// startup.
func (b *PersistenceBridge) Load(ctx context.Context) ([]domain.Campaign, error) {
	start := time.Now()
	log := b.logger.WithContext(ctx)

	raw, found, err := b.store.Get(ctx, b.entry)
	if err != nil {
		b.metrics.RecordPersistenceFailure("load", "store_read")
		return nil, fmt.Errorf("failed to read persisted campaigns: %w", err)
	}
	if !found {
		b.metrics.RecordPersistenceOperation("load", "empty", time.Since(start))
		log.Info("No persisted campaigns found, starting with an empty collection")
		return []domain.Campaign{}, nil
	}

	var items []domain.Campaign
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// treated as absent, never as a fatal startup error
		b.metrics.RecordPersistenceFailure("load", "malformed")
		log.WithError(err).Warn("Persisted campaign data is malformed, falling back to an empty collection")
		return []domain.Campaign{}, nil
	}
	if items == nil {
		items = []domain.Campaign{}
	}

	b.metrics.RecordPersistenceOperation("load", "success", time.Since(start))
	log.WithField("count", len(items)).Info("Loaded persisted campaigns")
	return items, nil
}

// Save serializes the full collection and overwrites the entry. The caller
// treats a failure as non-fatal: in-memory state stays authoritative.
func (b *PersistenceBridge) Save(ctx context.Context, items []domain.Campaign) error {
	start := time.Now()

	if items == nil {
		items = []domain.Campaign{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		b.metrics.RecordPersistenceFailure("save", "json_marshal")
		return fmt.Errorf("failed to serialize campaigns: %w", err)
	}

	if err := b.store.Set(ctx, b.entry, string(payload)); err != nil {
		b.metrics.RecordPersistenceFailure("save", "store_write")
		return fmt.Errorf("failed to persist campaigns: %w", err)
	}

	b.metrics.RecordPersistenceOperation("save", "success", time.Since(start))
	b.logger.WithContext(ctx).WithField("count", len(items)).Debug("Persisted campaign collection")
	return nil
}
