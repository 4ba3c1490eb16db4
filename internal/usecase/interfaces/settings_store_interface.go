package interfaces

import (
	"context"
	"encoding/json"
)

// ISettingsStore abstracts the remote settings collection: arbitrary
// JSON-serializable blobs keyed by string (company_profile, price_catalog).
//
// GetSetting returns a nil payload when the key is absent.
type ISettingsStore interface {
	GetSetting(ctx context.Context, key string) (json.RawMessage, error)
	PutSetting(ctx context.Context, key string, value json.RawMessage) error
}
