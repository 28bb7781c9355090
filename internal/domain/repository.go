package domain

import "context"

// interface for the local durable key-value store backing persistence
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// interface for loading and saving the full campaign collection
type CampaignPersistence interface {
	Load(ctx context.Context) ([]Campaign, error)
	Save(ctx context.Context, items []Campaign) error
}
