package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPriceCatalogAdd(t *testing.T) {
	t.Run("normalizes the key and overwrites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		cache := newMemCache()

		settings.EXPECT().PutSetting(gomock.Any(), "price_catalog", gomock.Any()).Return(nil).Times(2)

		u := NewPriceCatalogUseCase(settings, cache)
		key1, err := u.Add(context.Background(), "  Troca de óleo ", 350)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		key2, err := u.Add(context.Background(), "TROCA DE ÓLEO", 400)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if key1 != key2 {
			t.Fatalf("expected same key, got %q and %q", key1, key2)
		}
		entries := u.Entries()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[key1] != 400 {
			t.Fatalf("expected the second add to overwrite, got %v", entries[key1])
		}
	})

	t.Run("blank name", func(t *testing.T) {
		u := NewPriceCatalogUseCase(nil, nil)
		if _, err := u.Add(context.Background(), "   ", 10); !errors.Is(err, ErrInvalidServiceName) {
			t.Fatalf("expected ErrInvalidServiceName, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		u := NewPriceCatalogUseCase(nil, nil)
		if _, err := u.Add(context.Background(), "Troca de óleo", -1); !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
	})

	t.Run("remote failure keeps the entry locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		cache := newMemCache()

		settings.EXPECT().PutSetting(gomock.Any(), "price_catalog", gomock.Any()).Return(errors.New("network"))

		u := NewPriceCatalogUseCase(settings, cache)
		if _, err := u.Add(context.Background(), "Regulagem de válvulas", 280); err != nil {
			t.Fatalf("local add must survive remote failure, got %v", err)
		}

		var mirrored entities.PriceCatalog
		if !cache.Read("price_catalog", &mirrored) || mirrored["REGULAGEM DE VÁLVULAS"] != 280 {
			t.Fatalf("mirror missing the entry: %+v", mirrored)
		}
	})
}

func TestPriceCatalogRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settings := mock_interfaces.NewMockISettingsStore(ctrl)
	cache := newMemCache()

	settings.EXPECT().PutSetting(gomock.Any(), "price_catalog", gomock.Any()).Return(nil).Times(3)

	u := NewPriceCatalogUseCase(settings, cache)
	u.Add(context.Background(), "Troca de óleo", 350)

	if err := u.Remove(context.Background(), " troca de óleo "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Entries()) != 0 {
		t.Fatalf("expected empty catalog, got %+v", u.Entries())
	}

	// Removing an absent key rewrites the (unchanged) blob and succeeds.
	if err := u.Remove(context.Background(), "inexistente"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPriceCatalogSuggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settings := mock_interfaces.NewMockISettingsStore(ctrl)
	cache := newMemCache()

	settings.EXPECT().PutSetting(gomock.Any(), "price_catalog", gomock.Any()).Return(nil)

	u := NewPriceCatalogUseCase(settings, cache)
	u.Add(context.Background(), "Troca de óleo", 350)

	price, err := u.Suggest("  troca de óleo ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 350 {
		t.Fatalf("expected 350, got %v", price)
	}

	if _, err := u.Suggest("troca de óleo do motor"); !errors.Is(err, ErrNoSuggestion) {
		t.Fatalf("exact match only: expected ErrNoSuggestion, got %v", err)
	}
	if _, err := u.Suggest("   "); !errors.Is(err, ErrInvalidServiceName) {
		t.Fatalf("expected ErrInvalidServiceName, got %v", err)
	}
}

func TestPriceCatalogInit(t *testing.T) {
	t.Run("remote blob wins and refreshes the mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		cache := newMemCache()

		cache.Write("price_catalog", entities.PriceCatalog{"ANTIGA": 1})
		remote, _ := json.Marshal(entities.PriceCatalog{"TROCA DE ÓLEO": 350})
		settings.EXPECT().GetSetting(gomock.Any(), "price_catalog").Return(json.RawMessage(remote), nil)

		u := NewPriceCatalogUseCase(settings, cache)
		u.Init(context.Background())

		if _, err := u.Suggest("troca de óleo"); err != nil {
			t.Fatalf("expected remote entry, got %v", err)
		}
		if _, err := u.Suggest("antiga"); !errors.Is(err, ErrNoSuggestion) {
			t.Fatalf("expected stale entry replaced, got %v", err)
		}

		var mirrored entities.PriceCatalog
		if !cache.Read("price_catalog", &mirrored) || mirrored["TROCA DE ÓLEO"] != 350 {
			t.Fatalf("mirror not refreshed: %+v", mirrored)
		}
	})

	t.Run("remote failure keeps mirror contents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		cache := newMemCache()

		cache.Write("price_catalog", entities.PriceCatalog{"TROCA DE ÓLEO": 350})
		settings.EXPECT().GetSetting(gomock.Any(), "price_catalog").Return(nil, errors.New("network"))

		u := NewPriceCatalogUseCase(settings, cache)
		u.Init(context.Background())

		if price, err := u.Suggest("troca de óleo"); err != nil || price != 350 {
			t.Fatalf("expected cached entry, got %v %v", price, err)
		}
	})

	t.Run("null remote blob leaves the catalog empty and writable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		cache := newMemCache()

		settings.EXPECT().GetSetting(gomock.Any(), "price_catalog").Return(json.RawMessage("null"), nil)
		settings.EXPECT().PutSetting(gomock.Any(), "price_catalog", gomock.Any()).Return(nil)

		u := NewPriceCatalogUseCase(settings, cache)
		u.Init(context.Background())

		if len(u.Entries()) != 0 {
			t.Fatalf("expected empty catalog, got %+v", u.Entries())
		}

		// Writes must keep working after a null blob was stored remotely.
		key, err := u.Add(context.Background(), "Troca de óleo", 350)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price, err := u.Suggest(key); err != nil || price != 350 {
			t.Fatalf("expected 350, got %v %v", price, err)
		}
	})

	t.Run("absent setting leaves the catalog empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		cache := newMemCache()

		settings.EXPECT().GetSetting(gomock.Any(), "price_catalog").Return(nil, nil)

		u := NewPriceCatalogUseCase(settings, cache)
		u.Init(context.Background())

		if len(u.Entries()) != 0 {
			t.Fatalf("expected empty catalog, got %+v", u.Entries())
		}
	})
}
