package web

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// isPage reports whether the path names rendered content rather than a static file.
func isPage(p string) bool {
	return strings.HasSuffix(p, "/") || strings.HasSuffix(p, ".html") || p == "/sitemap.txt"
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// ExpiresHandler adds the expires header choosing expires for dynamic content
// and staticExpires for static content.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if isPage(r.URL.Path) {
			expiry = expires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}

// CanonicalHostHandler redirects requests that arrive on another host to
// the same path on host, which is a URL such as "https://example.com".
// It does nothing when host is empty or cannot be parsed.
func CanonicalHostHandler(h http.Handler, host string) http.Handler {
	u, err := url.Parse(host)
	if host == "" || err != nil || u.Host == "" {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.Host, u.Host) {
			target := *u
			target.Path = r.URL.Path
			target.RawQuery = r.URL.RawQuery
			http.Redirect(w, r, target.String(), http.StatusMovedPermanently)
			return
		}
		h.ServeHTTP(w, r)
	})
}
