package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrInvalidServiceName  = errors.New("invalid service name")
	ErrInvalidServicePrice = errors.New("invalid service price")
	ErrNoSuggestion        = errors.New("no suggestion for description")
)

// IPriceCatalogUseCase exposes the advisory name→price catalog.
type IPriceCatalogUseCase interface {
	Init(ctx context.Context)
	Add(ctx context.Context, name string, price float64) (string, error)
	Remove(ctx context.Context, name string) error
	Suggest(description string) (float64, error)
	Entries() entities.PriceCatalog
}

// PriceCatalogUseCase keeps the catalog in memory with the same dual
// persistence as the order book. The catalog is one opaque settings blob, so
// every add or remove rewrites the whole map remotely.
type PriceCatalogUseCase struct {
	settings interfaces.ISettingsStore
	cache    interfaces.ILocalCache

	mu      sync.Mutex
	catalog entities.PriceCatalog
}

var _ IPriceCatalogUseCase = (*PriceCatalogUseCase)(nil)

func NewPriceCatalogUseCase(settings interfaces.ISettingsStore, cache interfaces.ILocalCache) *PriceCatalogUseCase {
	return &PriceCatalogUseCase{settings: settings, cache: cache, catalog: entities.PriceCatalog{}}
}

// Init loads the mirror first, then prefers the remote blob when it can be
// fetched, overwriting the mirror with the fresh value.
func (u *PriceCatalogUseCase) Init(ctx context.Context) {
	var cached entities.PriceCatalog
	if u.cache.Read(cacheKeyCatalog, &cached) && cached != nil {
		u.mu.Lock()
		u.catalog = cached
		u.mu.Unlock()
	}

	raw, err := u.settings.GetSetting(ctx, settingKeyCatalog)
	if err != nil {
		log.Printf("[catalog][usecase] remote fetch failed, keeping mirror contents err=%v", err)
		return
	}
	if raw == nil {
		return
	}

	var remote entities.PriceCatalog
	if err := json.Unmarshal(raw, &remote); err != nil {
		log.Printf("[catalog][usecase] malformed remote catalog ignored err=%v", err)
		return
	}
	// A stored JSON null unmarshals into a nil map; treat it as empty so the
	// catalog stays writable.
	if remote == nil {
		remote = entities.PriceCatalog{}
	}
	u.mu.Lock()
	u.catalog = remote
	u.mu.Unlock()
	u.cache.Write(cacheKeyCatalog, remote)
}

// Add normalizes the name into the catalog key and overwrites any existing
// entry for it. Returns the key actually stored.
func (u *PriceCatalogUseCase) Add(ctx context.Context, name string, price float64) (string, error) {
	key := entities.NormalizeServiceName(name)
	if key == "" {
		return "", ErrInvalidServiceName
	}
	if price < 0 {
		return "", ErrInvalidServicePrice
	}

	u.mu.Lock()
	u.catalog[key] = price
	snapshot := u.cloneLocked()
	u.mu.Unlock()

	u.persist(ctx, snapshot)
	return key, nil
}

func (u *PriceCatalogUseCase) Remove(ctx context.Context, name string) error {
	key := entities.NormalizeServiceName(name)
	if key == "" {
		return ErrInvalidServiceName
	}

	u.mu.Lock()
	delete(u.catalog, key)
	snapshot := u.cloneLocked()
	u.mu.Unlock()

	u.persist(ctx, snapshot)
	return nil
}

// Suggest resolves an exact match after normalization. No fuzzy or prefix
// matching.
func (u *PriceCatalogUseCase) Suggest(description string) (float64, error) {
	if strings.TrimSpace(description) == "" {
		return 0, ErrInvalidServiceName
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	price, ok := u.catalog.Suggest(description)
	if !ok {
		return 0, ErrNoSuggestion
	}
	return price, nil
}

func (u *PriceCatalogUseCase) Entries() entities.PriceCatalog {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cloneLocked()
}

func (u *PriceCatalogUseCase) cloneLocked() entities.PriceCatalog {
	out := make(entities.PriceCatalog, len(u.catalog))
	for k, v := range u.catalog {
		out[k] = v
	}
	return out
}

func (u *PriceCatalogUseCase) persist(ctx context.Context, snapshot entities.PriceCatalog) {
	u.cache.Write(cacheKeyCatalog, snapshot)

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := u.settings.PutSetting(ctx, settingKeyCatalog, raw); err != nil {
		log.Printf("[catalog][usecase] remote upsert failed err=%v (catalog kept locally)", err)
	}
}
