package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIngestTrigger(t *testing.T) {
	var hit string
	ingest := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hit = "ingest" })
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hit = "next" })
	h := IngestTrigger("coupon_update", "gas_update", ingest)(next)

	cases := map[string]string{
		"/?coupon_update=gas_update":           "ingest",
		"/blog/post?coupon_update=gas_update":  "ingest",
		"/?coupon_update=gas_update2":          "next",
		"/?coupon_update=":                     "next",
		"/coupons/table":                       "next",
		"/?api_key=x&coupon_update=gas_update": "ingest",
	}
	for target, want := range cases {
		hit = ""
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, target, nil))
		if hit != want {
			t.Errorf("%s: routed to %q, want %q", target, hit, want)
		}
	}
}

func TestLoggerRequestID(t *testing.T) {
	var seen string
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	h.ServeHTTP(rec, req)
	if seen != "req-42" || rec.Header().Get(RequestIDHeader) != "req-42" {
		t.Errorf("incoming id not propagated: ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if seen == "" || seen == "req-42" || rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated id = %q header = %q", seen, rec.Header().Get(RequestIDHeader))
	}
}
