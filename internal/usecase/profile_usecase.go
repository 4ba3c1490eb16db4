package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// ICompanyProfileUseCase exposes the shop identity reused on every new order.
type ICompanyProfileUseCase interface {
	Init(ctx context.Context)
	Get() entities.CompanyProfile
	Save(ctx context.Context, profile entities.CompanyProfile) entities.CompanyProfile
}

// CompanyProfileUseCase keeps the profile in memory, mirrored locally and
// stored remotely under the company_profile settings key.
type CompanyProfileUseCase struct {
	settings interfaces.ISettingsStore
	cache    interfaces.ILocalCache

	mu      sync.Mutex
	profile entities.CompanyProfile
}

var _ ICompanyProfileUseCase = (*CompanyProfileUseCase)(nil)

func NewCompanyProfileUseCase(settings interfaces.ISettingsStore, cache interfaces.ILocalCache) *CompanyProfileUseCase {
	return &CompanyProfileUseCase{settings: settings, cache: cache, profile: entities.DefaultCompanyProfile()}
}

func (u *CompanyProfileUseCase) Init(ctx context.Context) {
	var cached entities.CompanyProfile
	if u.cache.Read(cacheKeyProfile, &cached) && cached.Name != "" {
		u.mu.Lock()
		u.profile = cached
		u.mu.Unlock()
	}

	raw, err := u.settings.GetSetting(ctx, settingKeyProfile)
	if err != nil {
		log.Printf("[profile][usecase] remote fetch failed, keeping mirror contents err=%v", err)
		return
	}
	if raw == nil {
		return
	}

	var remote entities.CompanyProfile
	if err := json.Unmarshal(raw, &remote); err != nil {
		log.Printf("[profile][usecase] malformed remote profile ignored err=%v", err)
		return
	}
	u.mu.Lock()
	u.profile = remote
	u.mu.Unlock()
	u.cache.Write(cacheKeyProfile, remote)
}

func (u *CompanyProfileUseCase) Get() entities.CompanyProfile {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.profile
}

// Save applies the profile locally and mirrors it, then attempts the remote
// upsert best-effort.
func (u *CompanyProfileUseCase) Save(ctx context.Context, profile entities.CompanyProfile) entities.CompanyProfile {
	u.mu.Lock()
	u.profile = profile
	u.mu.Unlock()

	u.cache.Write(cacheKeyProfile, profile)

	raw, err := json.Marshal(profile)
	if err != nil {
		return profile
	}
	if err := u.settings.PutSetting(ctx, settingKeyProfile, raw); err != nil {
		log.Printf("[profile][usecase] remote upsert failed err=%v (profile kept locally)", err)
	}
	return profile
}
