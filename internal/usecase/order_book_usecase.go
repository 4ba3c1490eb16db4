package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// Local cache mirror keys and remote settings row ids.
const (
	cacheKeyOrders  = "orders"
	cacheKeyCatalog = "price_catalog"
	cacheKeyProfile = "company_profile"

	settingKeyProfile = "company_profile"
	settingKeyCatalog = "price_catalog"
)

// Where the current in-memory collection came from.
const (
	SourceEmpty  = "empty"
	SourceCache  = "cache"
	SourceRemote = "remote"
)

var (
	ErrMissingClientName   = errors.New("client name is required")
	ErrMissingVehiclePlate = errors.New("vehicle plate is required")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrOrderNotFound       = errors.New("order not found")
)

// IOrderBookUseCase exposes the order book operations.
type IOrderBookUseCase interface {
	Init(ctx context.Context)
	Search(term string) []entities.ServiceOrder
	Get(id string) (entities.ServiceOrder, error)
	NextID() string
	Save(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	Source() string
}

// OrderBookUseCase owns the canonical in-memory order collection and mediates
// every mutation through the remote store and the local mirror.
//
// Durability contract: the in-memory and mirror write is the boundary the user
// can rely on. Remote synchronization is best-effort; its failure is demoted
// to a log notice and never rolls back a local mutation.
type OrderBookUseCase struct {
	store    interfaces.IOrderStore
	settings interfaces.ISettingsStore
	cache    interfaces.ILocalCache

	mu     sync.Mutex
	orders []entities.ServiceOrder
	source string
}

var _ IOrderBookUseCase = (*OrderBookUseCase)(nil)

func NewOrderBookUseCase(store interfaces.IOrderStore, settings interfaces.ISettingsStore, cache interfaces.ILocalCache) *OrderBookUseCase {
	return &OrderBookUseCase{store: store, settings: settings, cache: cache, source: SourceEmpty}
}

// Init runs once per process start. The mirror is loaded first so the book is
// usable immediately, then the remote collection replaces it when the fetch
// succeeds. A failed fetch keeps whatever the mirror provided.
func (u *OrderBookUseCase) Init(ctx context.Context) {
	var cached []entities.ServiceOrder
	if u.cache.Read(cacheKeyOrders, &cached) {
		u.replace(normalizeOrders(cached), SourceCache)
		log.Printf("[orders][book] loaded %d orders from local mirror", len(cached))
	}

	remote, err := u.store.FetchOrders(ctx)
	if err != nil {
		log.Printf("[orders][book] remote fetch failed, keeping mirror contents err=%v", err)
		return
	}

	normalized := normalizeOrders(remote)
	u.replace(normalized, SourceRemote)
	u.cache.Write(cacheKeyOrders, normalized)
	log.Printf("[orders][book] loaded %d orders from remote store", len(normalized))
}

// Search filters by case-insensitive substring over client name, vehicle
// plate and id, newest first (numeric id descending). An empty term lists the
// whole book. The underlying collection is never mutated.
func (u *OrderBookUseCase) Search(term string) []entities.ServiceOrder {
	term = strings.ToLower(strings.TrimSpace(term))

	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.ServiceOrder, 0, len(u.orders))
	for _, o := range u.orders {
		if term == "" ||
			strings.Contains(strings.ToLower(o.Client.Name), term) ||
			strings.Contains(strings.ToLower(o.Vehicle.Plate), term) ||
			strings.Contains(strings.ToLower(o.ID), term) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return NumericOrderID(out[i].ID) > NumericOrderID(out[j].ID)
	})
	return out
}

func (u *OrderBookUseCase) Get(id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, o := range u.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, ErrOrderNotFound
}

func (u *OrderBookUseCase) NextID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return NextOrderID(u.orders)
}

// Save validates, allocates an id for new orders, upserts the in-memory
// collection and the mirror, then attempts the remote upsert. Saving also
// persists the order's company block as the shop profile, mirroring the
// original form behavior of "gravar OS e perfil".
func (u *OrderBookUseCase) Save(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	if strings.TrimSpace(order.Client.Name) == "" {
		return entities.ServiceOrder{}, ErrMissingClientName
	}
	if strings.TrimSpace(order.Vehicle.Plate) == "" {
		return entities.ServiceOrder{}, ErrMissingVehiclePlate
	}

	u.mu.Lock()
	if strings.TrimSpace(order.ID) == "" {
		order.ID = NextOrderID(u.orders)
	}
	if order.Date == "" {
		order.Date = entities.LocalDateString(time.Now())
	}
	order = entities.NormalizeLegacyOrder(order)

	replaced := false
	for i := range u.orders {
		if u.orders[i].ID == order.ID {
			u.orders[i] = order
			replaced = true
			break
		}
	}
	if !replaced {
		u.orders = append([]entities.ServiceOrder{order}, u.orders...)
	}
	snapshot := cloneOrders(u.orders)
	u.mu.Unlock()

	u.cache.Write(cacheKeyOrders, snapshot)
	u.rememberProfile(ctx, order.Company)

	if err := u.store.UpsertOrder(ctx, order); err != nil {
		log.Printf("[orders][book] remote upsert failed id=%s err=%v (order kept locally)", order.ID, err)
	}
	return order, nil
}

// Delete removes the order from the collection and the mirror, then attempts
// the remote delete. Deleting an id that is already gone is a no-op.
func (u *OrderBookUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	u.mu.Lock()
	kept := make([]entities.ServiceOrder, 0, len(u.orders))
	for _, o := range u.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	removed := len(kept) != len(u.orders)
	u.orders = kept
	snapshot := cloneOrders(u.orders)
	u.mu.Unlock()

	if removed {
		u.cache.Write(cacheKeyOrders, snapshot)
	}
	if err := u.store.DeleteOrder(ctx, id); err != nil {
		log.Printf("[orders][book] remote delete failed id=%s err=%v (removed locally)", id, err)
	}
	return nil
}

func (u *OrderBookUseCase) Source() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.source
}

func (u *OrderBookUseCase) replace(orders []entities.ServiceOrder, source string) {
	u.mu.Lock()
	u.orders = orders
	u.source = source
	u.mu.Unlock()
}

func (u *OrderBookUseCase) rememberProfile(ctx context.Context, company entities.Company) {
	u.cache.Write(cacheKeyProfile, company)
	raw, err := json.Marshal(company)
	if err != nil {
		return
	}
	if err := u.settings.PutSetting(ctx, settingKeyProfile, raw); err != nil {
		log.Printf("[orders][book] profile remote upsert failed err=%v", err)
	}
}

// NewDraftOrder is the editor's starting state for a fresh order: next
// sequential id, today's date, the shop profile as company block, one blank
// service item and Pix preselected.
func NewDraftOrder(nextID string, profile entities.CompanyProfile) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:            nextID,
		Date:          entities.LocalDateString(time.Now()),
		Company:       profile,
		Vehicle:       entities.Vehicle{Type: entities.VehicleTypeCaminhao},
		ServiceItems:  []entities.ServiceItem{{}},
		PaymentMethod: entities.PaymentMethodPix,
		PaymentStatus: entities.PaymentStatusPendente,
	}
}

func normalizeOrders(orders []entities.ServiceOrder) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, len(orders))
	for i, o := range orders {
		out[i] = entities.NormalizeLegacyOrder(o)
	}
	return out
}

func cloneOrders(src []entities.ServiceOrder) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, len(src))
	copy(out, src)
	return out
}
