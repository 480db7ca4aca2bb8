package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/localstore"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/common"
)

func newSettingsFixture(t *testing.T, fc *fakeClient) SettingsService {
	t.Helper()
	local, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewSettingsService(fc, local, time.Minute)
}

func TestSettings_PublicCached(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodGet, "/api/settings", api.Success(200, jsonBody(t, []models.Setting{
		{Key: "site_title", Value: "Bosphorus Fellas", IsPublic: true},
	})))

	svc := newSettingsFixture(t, fc)

	res := svc.Public(context.Background())
	require.True(t, res.OK)
	assert.Equal(t, "site_title", res.Data[0].Key)

	svc.Public(context.Background())
	assert.Len(t, fc.Calls, 1, "second read must come from the cache")
}

func TestSettings_UpsertInvalidatesCache(t *testing.T) {
	fc := newFakeClient()
	fc.respond(http.MethodGet, "/api/settings", api.Success(200, jsonBody(t, []models.Setting{})))
	fc.respond(http.MethodPost, "/api/admin/settings", api.Success(200, jsonBody(t, models.Setting{
		Key: "site_title", Value: "New title",
	})))

	svc := newSettingsFixture(t, fc)

	require.True(t, svc.Public(context.Background()).OK)
	require.True(t, svc.Upsert(context.Background(), models.Setting{Key: "site_title", Value: "New title"}).OK)

	svc.Public(context.Background())
	gets := 0
	for _, c := range fc.Calls {
		if c.Method == http.MethodGet {
			gets++
		}
	}
	assert.Equal(t, 2, gets, "an upsert must drop the cached listing")
}

func TestSettings_UpsertRequiresKey(t *testing.T) {
	fc := newFakeClient()
	svc := newSettingsFixture(t, fc)

	res := svc.Upsert(context.Background(), models.Setting{Value: "orphan"})
	require.False(t, res.OK)
	assert.ErrorIs(t, res.Err, common.ErrValidation)
	assert.Empty(t, fc.Calls)
}

func TestSettings_ThemeRoundTrip(t *testing.T) {
	svc := newSettingsFixture(t, newFakeClient())

	assert.Equal(t, ThemeLight, svc.Theme(), "default is light")

	require.NoError(t, svc.SetTheme(ThemeDark))
	assert.Equal(t, ThemeDark, svc.Theme())

	err := svc.SetTheme("sepia")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, ThemeDark, svc.Theme())
}
