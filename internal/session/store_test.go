package session

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "hub.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_CookieRoundTrip(t *testing.T) {
	store := openTestStore(t)

	cookies := []*http.Cookie{{Name: "hub_session", Value: "s3cr3t", Path: "/"}}
	require.NoError(t, store.SaveCookies("api.football-hub.app", cookies))

	got, err := store.LoadCookies("api.football-hub.app")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hub_session", got[0].Name)
	assert.Equal(t, "s3cr3t", got[0].Value)

	// A second save replaces, not appends.
	require.NoError(t, store.SaveCookies("api.football-hub.app", []*http.Cookie{{Name: "hub_session", Value: "rotated"}}))
	got, err = store.LoadCookies("api.football-hub.app")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rotated", got[0].Value)

	require.NoError(t, store.ClearCookies("api.football-hub.app"))
	got, err = store.LoadCookies("api.football-hub.app")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadCookiesUnknownHost(t *testing.T) {
	store := openTestStore(t)
	got, err := store.LoadCookies("nowhere.example")
	require.NoError(t, err)
	assert.Nil(t, got)
}

type testBundle struct {
	MatchID string `json:"matchId"`
	TeamID  string `json:"teamId"`
}

func TestStore_BundleRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveBundle("rating", "n1", testBundle{MatchID: "m1", TeamID: "t2"}))

	var got testBundle
	require.NoError(t, store.LoadBundle("rating", "n1", &got))
	assert.Equal(t, testBundle{MatchID: "m1", TeamID: "t2"}, got)
}

func TestStore_LoadBundleMissing(t *testing.T) {
	store := openTestStore(t)
	var got testBundle
	assert.ErrorIs(t, store.LoadBundle("rating", "absent", &got), ErrNoBundle)
}

func TestStore_LoadBundleKindMismatch(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveBundle("stats", "n1", testBundle{MatchID: "m1"}))

	// A reused notification id from a different flow must read as absent.
	var got testBundle
	assert.ErrorIs(t, store.LoadBundle("rating", "n1", &got), ErrNoBundle)
}

func TestStore_SaveBundleReplacesPrevious(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveBundle("rating", "n1", testBundle{MatchID: "m1"}))
	require.NoError(t, store.SaveBundle("rating", "n1", testBundle{MatchID: "m2"}))

	var got testBundle
	require.NoError(t, store.LoadBundle("rating", "n1", &got))
	assert.Equal(t, "m2", got.MatchID)
}

func TestStore_DeleteAndClearBundles(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveBundle("rating", "n1", testBundle{MatchID: "m1"}))
	require.NoError(t, store.SaveBundle("stats", "n2", testBundle{MatchID: "m2"}))

	require.NoError(t, store.DeleteBundle("n1"))
	var got testBundle
	assert.ErrorIs(t, store.LoadBundle("rating", "n1", &got), ErrNoBundle)
	require.NoError(t, store.LoadBundle("stats", "n2", &got))

	require.NoError(t, store.ClearBundles())
	assert.ErrorIs(t, store.LoadBundle("stats", "n2", &got), ErrNoBundle)
}

func TestJar_PersistsBackendHostOnly(t *testing.T) {
	store := openTestStore(t)
	jar, err := NewJar(store, "https://api.football-hub.app")
	require.NoError(t, err)

	base, _ := url.Parse("https://api.football-hub.app")
	other, _ := url.Parse("https://elsewhere.example")
	jar.SetCookies(base, []*http.Cookie{{Name: "hub_session", Value: "s3cr3t", Path: "/"}})
	jar.SetCookies(other, []*http.Cookie{{Name: "tracking", Value: "x", Path: "/"}})

	persisted, err := store.LoadCookies("api.football-hub.app")
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "hub_session", persisted[0].Name)

	foreign, err := store.LoadCookies("elsewhere.example")
	require.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestJar_RestoresSessionAcrossOpens(t *testing.T) {
	store := openTestStore(t)
	jar, err := NewJar(store, "https://api.football-hub.app")
	require.NoError(t, err)

	base, _ := url.Parse("https://api.football-hub.app")
	jar.SetCookies(base, []*http.Cookie{{Name: "hub_session", Value: "s3cr3t", Path: "/"}})

	// A fresh jar over the same store sees the persisted session.
	reopened, err := NewJar(store, "https://api.football-hub.app")
	require.NoError(t, err)
	cookies := reopened.Cookies(base)
	require.Len(t, cookies, 1)
	assert.Equal(t, "s3cr3t", cookies[0].Value)

	require.NoError(t, reopened.Clear())
	assert.Empty(t, reopened.Cookies(base))
	third, err := NewJar(store, "https://api.football-hub.app")
	require.NoError(t, err)
	assert.Empty(t, third.Cookies(base))
}
