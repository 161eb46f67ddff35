package session

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// Jar is a cookie jar that persists the backend host's cookies through the
// store, so the session survives between CLI invocations. Only the
// configured backend host is persisted; anything else stays in memory.
type Jar struct {
	inner *cookiejar.Jar
	store *Store
	base  *url.URL
}

// NewJar builds a jar for the backend at baseURL, pre-loading any persisted
// cookies.
func NewJar(store *Store, baseURL string) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	j := &Jar{inner: inner, store: store, base: base}

	cookies, err := store.LoadCookies(base.Host)
	if err != nil {
		return nil, err
	}
	if len(cookies) > 0 {
		inner.SetCookies(base, cookies)
	}
	return j, nil
}

// SetCookies stores cookies and persists the backend host's current set.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
	if u.Host == j.base.Host {
		// Best effort; a failed write only costs the next invocation a login.
		_ = j.store.SaveCookies(j.base.Host, j.inner.Cookies(j.base))
	}
}

// Cookies returns the cookies to send with a request to u.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// Clear forgets all cookies, in memory and on disk.
func (j *Jar) Clear() error {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.inner = inner
	return j.store.ClearCookies(j.base.Host)
}

var _ http.CookieJar = (*Jar)(nil)
