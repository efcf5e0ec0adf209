package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"
)

func TestErrorHandler(t *testing.T) {
	fsys := fstest.MapFS{
		"404.html":   {Data: []byte("<h1>Nothing here</h1>")},
		"hello.html": {Data: []byte("hello")},
	}
	h := ErrorHandler(http.FileServer(http.FS(fsys)), fsys)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/hello.html", http.StatusOK, "hello"},
		{"/missing.html", http.StatusNotFound, "<h1>Nothing here</h1>"},
	}
	for _, test := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, test.path, nil))
		res := rec.Result()
		b, _ := io.ReadAll(res.Body)
		if res.StatusCode != test.status {
			t.Errorf("%s: expected status %d but got %d", test.path, test.status, res.StatusCode)
		}
		if string(b) != test.body {
			t.Errorf("%s: expected body %q but got %q", test.path, test.body, string(b))
		}
	}
}

func TestErrorHandlerWithoutPage(t *testing.T) {
	fsys := fstest.MapFS{}
	h := ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), fsys)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != "boom\n" {
		t.Errorf("Expected the original error, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHeaderAndExpiresHandler(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := HeaderHandler(ExpiresHandler(ok, time.Minute, 0), map[string]string{"X-Frame-Options": "DENY"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/jam.html", nil))
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("Missing configured header")
	}
	if rec.Header().Get("Expires") == "" {
		t.Error("Pages should get an Expires header")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	if rec.Header().Get("Expires") != "" {
		t.Error("Static files should not get an Expires header when staticExpires is zero")
	}
}

func TestCanonicalHostHandler(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
	h := CanonicalHostHandler(ok, "https://obscurehobo.example")

	req := httptest.NewRequest(http.MethodGet, "http://www.obscurehobo.example/talks.html?x=1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMovedPermanently {
		t.Errorf("Expected a redirect but got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://obscurehobo.example/talks.html?x=1" {
		t.Errorf("Unexpected redirect target %q", loc)
	}

	req = httptest.NewRequest(http.MethodGet, "http://obscurehobo.example/talks.html", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("Expected the page on the canonical host, got %d", rec.Code)
	}

	if CanonicalHostHandler(ok, "") == nil {
		t.Error("An empty host should leave the handler in place")
	}
}
