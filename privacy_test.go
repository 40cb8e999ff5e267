package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/reveal"
	"github.com/gin-gonic/gin"
)

func TestHashIP(t *testing.T) {
	a := hashIP("192.0.2.1", "salt")
	if a != hashIP("192.0.2.1", "salt") {
		t.Error("Expected hash to be stable for the same salt")
	}
	if a == hashIP("192.0.2.1", "other") {
		t.Error("Expected hash to change with the salt")
	}
	if len(a) != 16 {
		t.Errorf("len(hash) = %d, want 16", len(a))
	}
}

func TestNewSalt(t *testing.T) {
	a, err := newSalt()
	if err != nil {
		t.Fatalf("newSalt: %v", err)
	}
	b, _ := newSalt()
	if a == b || len(a) != 64 {
		t.Errorf("Expected distinct 64-char salts, got %q and %q", a, b)
	}
}

func TestVisitorLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(visitorLoggingMiddleware(log, "salt"))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/static/site.css", func(c *gin.Context) { c.String(http.StatusOK, "css") })

	// httptest requests come from 192.0.2.1
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	logged := buf.String()
	if !strings.Contains(logged, hashIP("192.0.2.1", "salt")) {
		t.Errorf("Expected hashed visitor in log, got %q", logged)
	}
	if strings.Contains(logged, "192.0.2.1") {
		t.Errorf("Expected raw address kept out of the log, got %q", logged)
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if buf.Len() != 0 {
		t.Errorf("Expected static and DNT requests unlogged, got %q", buf.String())
	}
}

func TestRouterNeverLogsRawAddress(t *testing.T) {
	var ginOut, visits bytes.Buffer
	saved := gin.DefaultWriter
	gin.DefaultWriter = &ginOut
	defer func() { gin.DefaultWriter = saved }()

	log := slog.New(slog.NewTextHandler(&visits, nil))
	r := newRouter(testConfig(), reveal.RealClock(), log, "salt")

	const addr = "198.51.100.77"
	for _, dnt := range []bool{false, true} {
		req := httptest.NewRequest(http.MethodGet, "/about-content", nil)
		req.RemoteAddr = addr + ":4321"
		if dnt {
			req.Header.Set("DNT", "1")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET /about-content (DNT=%v): status %d", dnt, w.Code)
		}
	}

	if strings.Contains(ginOut.String(), addr) {
		t.Errorf("Expected no raw address in the request log, got %q", ginOut.String())
	}
	if strings.Contains(visits.String(), addr) {
		t.Errorf("Expected no raw address in the visit log, got %q", visits.String())
	}
	if n := strings.Count(visits.String(), "msg=visit"); n != 1 {
		t.Errorf("Expected only the non-DNT request logged, got %d visits", n)
	}
}
