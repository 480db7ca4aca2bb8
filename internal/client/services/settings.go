package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/localstore"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/common"
)

const publicSettingsKey = "public-settings"

// Themes the UI understands.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SettingsService serves site settings and the local theme preference. The
// theme never leaves the machine; it lives in the durable local store.
type SettingsService interface {
	Public(ctx context.Context) api.Result[[]models.Setting]
	Upsert(ctx context.Context, s models.Setting) api.Result[models.Setting]
	Theme() string
	SetTheme(theme string) error
}

type settingsService struct {
	client api.Client
	local  localstore.Repository
	cache  *gocache.Cache
}

func NewSettingsService(client api.Client, local localstore.Repository, cacheTTL time.Duration) SettingsService {
	return &settingsService{
		client: client,
		local:  local,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Public returns the public settings, cached for the configured TTL.
func (s *settingsService) Public(ctx context.Context) api.Result[[]models.Setting] {
	if v, ok := s.cache.Get(publicSettingsKey); ok {
		return api.OKResult(200, v.([]models.Setting))
	}

	res := api.Decode[[]models.Setting](s.client.Get(ctx, "/api/settings"))
	if res.OK {
		s.cache.SetDefault(publicSettingsKey, res.Data)
	}
	return res
}

// Upsert writes one setting and invalidates the local cache.
func (s *settingsService) Upsert(ctx context.Context, set models.Setting) api.Result[models.Setting] {
	if set.Key == "" {
		return api.Invalid[models.Setting]("setting key is required")
	}
	res := api.DecodeOne[models.Setting](s.client.Post(ctx, "/api/admin/settings", set))
	if res.OK {
		s.cache.Delete(publicSettingsKey)
	}
	return res
}

// Theme returns the stored preference, defaulting to light.
func (s *settingsService) Theme() string {
	if v, ok := s.local.Get(common.ThemeKey); ok && v != "" {
		return v
	}
	return ThemeLight
}

func (s *settingsService) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return common.ErrValidation
	}
	return s.local.Set(common.ThemeKey, theme)
}
