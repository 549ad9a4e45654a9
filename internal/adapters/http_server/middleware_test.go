package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := clientKey(r); got != "10.0.0.9" {
		t.Fatalf("got %q", got)
	}
	r.RemoteAddr = "10.0.0.3"
	if got := clientKey(r); got != "10.0.0.3" {
		t.Fatalf("no port: got %q", got)
	}
}

func TestClientLimiter_KeysOnConnectionAddress(t *testing.T) {
	l := NewClientLimiter(0.001, 1)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	send := func(remote, xff string) int {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = remote
		r.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}
	if got := send("192.0.2.1:4000", "203.0.113.1"); got != http.StatusNoContent {
		t.Fatalf("first request: %d", got)
	}
	if got := send("192.0.2.1:4001", "203.0.113.2"); got != http.StatusTooManyRequests {
		t.Fatalf("new X-Forwarded-For on same address: %d", got)
	}
	if got := send("192.0.2.2:4000", "203.0.113.1"); got != http.StatusNoContent {
		t.Fatalf("other address: %d", got)
	}
}

func TestNew_TrustProxyRewritesClientAddress(t *testing.T) {
	var seen string
	s := New(time.Second, true)
	s.mux.Get("/who", func(w http.ResponseWriter, r *http.Request) { seen = clientKey(r) })
	r := httptest.NewRequest(http.MethodGet, "/who", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Real-IP", "203.0.113.9")
	s.Mux().ServeHTTP(httptest.NewRecorder(), r)
	if seen != "203.0.113.9" {
		t.Fatalf("trusted proxy: key %q", seen)
	}

	s = New(time.Second, false)
	s.mux.Get("/who", func(w http.ResponseWriter, r *http.Request) { seen = clientKey(r) })
	s.Mux().ServeHTTP(httptest.NewRecorder(), r)
	if seen != "10.0.0.1" {
		t.Fatalf("untrusted: key %q", seen)
	}
}

func TestClientLimiter_PerClientBuckets(t *testing.T) {
	l := NewClientLimiter(0.001, 2)
	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("burst of 2 should pass")
	}
	if l.Allow("a") {
		t.Fatal("third call should be limited")
	}
	if !l.Allow("b") {
		t.Fatal("other client has its own bucket")
	}
}

func TestClientLimiter_Prune(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := NewClientLimiter(1, 1)
	l.now = func() time.Time { return now }
	l.Allow("old")
	now = now.Add(10 * time.Minute)
	l.Allow("fresh")

	if n := l.Prune(5 * time.Minute); n != 1 {
		t.Fatalf("pruned %d, want 1", n)
	}
	if _, ok := l.clients["fresh"]; !ok {
		t.Fatal("fresh client must be kept")
	}
}

func TestNilLimiterPassesThrough(t *testing.T) {
	var l *ClientLimiter
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestViewportWidth(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?vw=700", nil)
	if got := viewportWidth(r, 1280); got != 700 {
		t.Fatalf("vw param: got %d", got)
	}
	r.Header.Set("Viewport-Width", "900")
	if got := viewportWidth(r, 1280); got != 900 {
		t.Fatalf("legacy hint: got %d", got)
	}
	r.Header.Set("Sec-CH-Viewport-Width", "500")
	if got := viewportWidth(r, 1280); got != 500 {
		t.Fatalf("client hint: got %d", got)
	}
	if got := viewportWidth(httptest.NewRequest(http.MethodGet, "/?vw=-3", nil), 1280); got != 1280 {
		t.Fatalf("fallback: got %d", got)
	}
}
