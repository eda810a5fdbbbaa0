package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap"
	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/server/response"
	"github.com/agentstation/spotmap/pkg/errors"
	"github.com/agentstation/spotmap/pkg/logging"
)

func newTestApp(t *testing.T) *application.Mock {
	t.Helper()
	sm, err := spotmap.New()
	if err != nil {
		t.Fatalf("failed to create spotmap client: %v", err)
	}
	return &application.Mock{
		SpotmapFunc: func() (spotmap.Client, error) { return sm, nil },
	}
}

func newTestServer(t *testing.T, mutate func(*Config)) (*Server, http.Handler) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RateLimit = 0
	if mutate != nil {
		mutate(&cfg)
	}
	srv, err := New(newTestApp(t), cfg, WithClock(clockwork.NewFakeClock()))
	if err != nil {
		t.Fatalf("server.New() failed: %v", err)
	}
	return srv, srv.Handler()
}

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Error    *response.Error `json:"error"`
	Warnings []string        `json:"warnings"`
}

func get(t *testing.T, h http.Handler, path string, headers ...string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("failed to decode %s: %v", path, err)
		}
	}
	return w.Code, env
}

// TestNew_CatalogFailure tests that a broken catalog fails at start.
func TestNew_CatalogFailure(t *testing.T) {
	app := &application.Mock{
		SpotmapFunc: func() (spotmap.Client, error) { return nil, errors.New("no catalog") },
	}
	if _, err := New(app, DefaultConfig()); err == nil {
		t.Fatal("expected error for unavailable catalog")
	}
}

// TestServer_Lifecycle tests Start and Shutdown.
func TestServer_Lifecycle(t *testing.T) {
	srv, _ := newTestServer(t, func(c *Config) { c.RateLimit = 100 })

	srv.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

// TestHealthEndpoints tests liveness and readiness probes.
func TestHealthEndpoints(t *testing.T) {
	_, h := newTestServer(t, nil)

	for _, path := range []string{"/health", "/api/v1/health", "/api/v1/ready"} {
		t.Run(path, func(t *testing.T) {
			code, env := get(t, h, path)
			if code != http.StatusOK {
				t.Errorf("expected status 200, got %d", code)
			}
			if env.Error != nil {
				t.Errorf("unexpected error: %+v", env.Error)
			}
		})
	}

	_, env := get(t, h, "/api/v1/ready")
	var ready struct {
		Catalog struct {
			Regions int `json:"regions"`
			Spots   int `json:"spots"`
		} `json:"catalog"`
	}
	if err := json.Unmarshal(env.Data, &ready); err != nil {
		t.Fatalf("failed to decode ready data: %v", err)
	}
	if ready.Catalog.Regions != 4 || ready.Catalog.Spots != 25 {
		t.Errorf("unexpected catalog counts: %+v", ready.Catalog)
	}
}

// TestRegionEndpoints tests region listing and detail.
func TestRegionEndpoints(t *testing.T) {
	_, h := newTestServer(t, nil)

	code, env := get(t, h, "/api/v1/regions")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	var home struct {
		Regions []struct {
			ID       string `json:"id"`
			Featured []struct {
				ID string `json:"id"`
			} `json:"featured"`
		} `json:"regions"`
		Shortcuts []any `json:"shortcuts"`
	}
	if err := json.Unmarshal(env.Data, &home); err != nil {
		t.Fatalf("failed to decode regions: %v", err)
	}
	if len(home.Regions) != 4 || home.Regions[0].ID != "tokyo" {
		t.Errorf("unexpected regions: %+v", home.Regions)
	}
	if len(home.Regions[0].Featured) != 3 || home.Regions[0].Featured[0].ID != "sensoji" {
		t.Errorf("unexpected tokyo top spots: %+v", home.Regions[0].Featured)
	}
	if len(home.Shortcuts) != 6 {
		t.Errorf("expected 6 shortcuts, got %d", len(home.Shortcuts))
	}

	code, env = get(t, h, "/api/v1/regions/chiba")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	var detail struct {
		ID        string `json:"id"`
		SpotCount int    `json:"spotCount"`
		Area      *struct {
			Center struct{ Lat, Lng float64 } `json:"center"`
		} `json:"area"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("failed to decode region: %v", err)
	}
	if detail.ID != "chiba" || detail.SpotCount != 6 || detail.Area == nil {
		t.Errorf("unexpected region detail: %+v", detail)
	}

	code, env = get(t, h, "/api/v1/regions/osaka")
	if code != http.StatusNotFound || env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("expected 404 envelope, got %d %+v", code, env.Error)
	}

	code, _ = get(t, h, "/api/v1/regions/osaka/spots")
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown region listing, got %d", code)
	}
}

type listing struct {
	Count int `json:"count"`
	Spots []struct {
		ID     string  `json:"id"`
		Rating float64 `json:"rating"`
	} `json:"spots"`
	Filter struct {
		Region   string `json:"region"`
		Category string `json:"category"`
		Sort     string `json:"sort"`
	} `json:"filter"`
	Empty *struct {
		Message string `json:"message"`
	} `json:"empty"`
}

func decodeListing(t *testing.T, env envelope) listing {
	t.Helper()
	var l listing
	if err := json.Unmarshal(env.Data, &l); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	return l
}

// TestSpotListing tests filtering, ordering and fallback warnings.
func TestSpotListing(t *testing.T) {
	_, h := newTestServer(t, nil)

	t.Run("all spots by rating", func(t *testing.T) {
		code, env := get(t, h, "/api/v1/spots")
		if code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", code)
		}
		l := decodeListing(t, env)
		if l.Count != 25 || len(l.Spots) != 25 {
			t.Fatalf("expected 25 spots, got %d", l.Count)
		}
		for i := 1; i < len(l.Spots); i++ {
			if l.Spots[i].Rating > l.Spots[i-1].Rating {
				t.Fatalf("spots not ordered by rating at %d", i)
			}
		}
		if len(env.Warnings) != 0 {
			t.Errorf("unexpected warnings: %v", env.Warnings)
		}
	})

	t.Run("region and category", func(t *testing.T) {
		_, env := get(t, h, "/api/v1/spots?region=kanagawa&category=temple")
		l := decodeListing(t, env)
		if l.Count != 2 || l.Spots[0].ID != "kamakura-daibutsu" {
			t.Errorf("unexpected kanagawa temples: %+v", l.Spots)
		}
	})

	t.Run("region path", func(t *testing.T) {
		_, env := get(t, h, "/api/v1/regions/saitama/spots?category=modern")
		l := decodeListing(t, env)
		if l.Count != 1 || l.Spots[0].ID != "g-cans" {
			t.Errorf("unexpected saitama modern spots: %+v", l.Spots)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		code, env := get(t, h, "/api/v1/spots?region=tokyo&category=castle&sort=price")
		if code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", code)
		}
		l := decodeListing(t, env)
		if l.Filter.Category != "all" || l.Filter.Sort != "rating" || l.Filter.Region != "tokyo" {
			t.Errorf("unexpected fallback filter: %+v", l.Filter)
		}
		if l.Count != 7 {
			t.Errorf("expected 7 tokyo spots, got %d", l.Count)
		}
		if len(env.Warnings) != 2 {
			t.Errorf("expected 2 warnings, got %v", env.Warnings)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		_, env := get(t, h, "/api/v1/spots?region=tokyo&category=shopping")
		l := decodeListing(t, env)
		if l.Count != 0 || l.Empty == nil || l.Empty.Message == "" {
			t.Errorf("expected empty state, got %+v", l)
		}
	})
}

// TestSpotDetail tests spot lookup.
func TestSpotDetail(t *testing.T) {
	_, h := newTestServer(t, nil)

	code, env := get(t, h, "/api/v1/spots/tokyo-tower")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	var detail struct {
		ID           string `json:"id"`
		RegionName   string `json:"regionName"`
		CategoryInfo struct {
			Glyph string `json:"glyph"`
		} `json:"categoryInfo"`
		Back struct {
			View string `json:"view"`
		} `json:"back"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("failed to decode spot: %v", err)
	}
	if detail.ID != "tokyo-tower" || detail.RegionName == "" || detail.CategoryInfo.Glyph != "🗼" {
		t.Errorf("unexpected spot detail: %+v", detail)
	}
	if detail.Back.View != "spot-list" {
		t.Errorf("expected back to spot-list, got %s", detail.Back.View)
	}

	code, env = get(t, h, "/api/v1/spots/nowhere")
	if code != http.StatusNotFound || env.Error == nil {
		t.Errorf("expected 404 envelope, got %d", code)
	}
}

// TestCategoriesAndNavigate tests the category table and navigation targets.
func TestCategoriesAndNavigate(t *testing.T) {
	_, h := newTestServer(t, nil)

	_, env := get(t, h, "/api/v1/categories")
	var cats struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &cats); err != nil || cats.Count != 7 {
		t.Errorf("expected 7 categories, got %d (%v)", cats.Count, err)
	}

	tests := []struct {
		query      string
		wantStatus int
		wantPath   string
		wantExists bool
	}{
		{"action=region&id=tokyo", http.StatusOK, "/spots/tokyo", true},
		{"action=region&id=osaka", http.StatusOK, "/spots/osaka", false},
		{"action=category&id=temple", http.StatusOK, "/spots/all?category=temple", true},
		{"action=spot&id=sensoji", http.StatusOK, "/spot/sensoji", true},
		{"action=spot&id=Bad_ID", http.StatusBadRequest, "", false},
		{"action=teleport", http.StatusBadRequest, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			code, env := get(t, h, "/api/v1/navigate?"+tt.query)
			if code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, code)
			}
			if code != http.StatusOK {
				return
			}
			var nav struct {
				Path   string `json:"path"`
				Exists bool   `json:"exists"`
			}
			if err := json.Unmarshal(env.Data, &nav); err != nil {
				t.Fatalf("failed to decode navigate: %v", err)
			}
			if nav.Path != tt.wantPath || nav.Exists != tt.wantExists {
				t.Errorf("expected %s exists=%v, got %+v", tt.wantPath, tt.wantExists, nav)
			}
		})
	}
}

// TestOpenAPI tests both specification formats.
func TestOpenAPI(t *testing.T) {
	_, h := newTestServer(t, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil))
	var spec map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &spec); err != nil {
		t.Fatalf("openapi.json is not valid JSON: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Errorf("unexpected openapi version: %v", spec["openapi"])
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/openapi.yaml", nil))
	if !strings.Contains(w.Body.String(), "title: Spotmap API") {
		t.Error("expected YAML specification")
	}
}

// TestMetricsEndpoint tests the Prometheus endpoint and request counting.
func TestMetricsEndpoint(t *testing.T) {
	_, h := newTestServer(t, nil)
	get(t, h, "/api/v1/spots/sensoji")
	get(t, h, "/api/v1/spots?category=castle")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	for _, want := range []string{
		"spotmap_catalog_spots 25",
		`spotmap_http_requests_total{method="GET",route="/api/v1/spots/{id}",status="200"} 1`,
		`spotmap_filter_fallbacks_total{field="category"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in metrics output", want)
		}
	}

	_, h = newTestServer(t, func(c *Config) { c.MetricsEnabled = false })
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 with metrics disabled, got %d", w.Code)
	}
}

// TestAuthAndRateLimit tests the optional middleware.
func TestAuthAndRateLimit(t *testing.T) {
	_, h := newTestServer(t, func(c *Config) {
		c.AuthEnabled = true
		c.APIKey = "secret"
		c.RateLimit = 60
		c.RateBurst = 2
	})

	if code, _ := get(t, h, "/api/v1/health"); code != http.StatusOK {
		t.Errorf("expected public health, got %d", code)
	}
	if code, _ := get(t, h, "/api/v1/regions"); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", code)
	}
	if code, _ := get(t, h, "/api/v1/regions", "X-API-Key", "secret"); code != http.StatusOK {
		t.Errorf("expected 200 with key, got %d", code)
	}
	if code, _ := get(t, h, "/api/v1/regions", "X-API-Key", "secret"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", code)
	}
}

// TestCacheReuse tests that repeated listings are served from cache.
func TestCacheReuse(t *testing.T) {
	srv, h := newTestServer(t, nil)

	get(t, h, "/api/v1/spots?region=chiba")
	get(t, h, "/api/v1/spots?region=CHIBA&sort=rating")

	stats := srv.Cache().GetStats()
	if stats.Hits != 1 {
		t.Errorf("expected the normalized filter to hit the cache, got %+v", stats)
	}
}

// TestHandlerLogScope tests that handler logs carry the request, region
// and spot ids.
func TestHandlerLogScope(t *testing.T) {
	tl := logging.NewTestLogger(t)
	app := newTestApp(t)
	app.LoggerFunc = func() *zerolog.Logger { return tl.Logger }

	cfg := DefaultConfig()
	cfg.RateLimit = 0
	srv, err := New(app, cfg, WithClock(clockwork.NewFakeClock()))
	if err != nil {
		t.Fatalf("server.New() failed: %v", err)
	}
	h := srv.Handler()

	find := func(msg string) map[string]any {
		t.Helper()
		for _, line := range tl.Lines() {
			var entry map[string]any
			if err := json.Unmarshal([]byte(line), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v\n%s", err, line)
			}
			if entry["message"] == msg {
				return entry
			}
		}
		t.Fatalf("no %q entry in:\n%s", msg, tl.Output())
		return nil
	}

	get(t, h, "/api/v1/regions/tokyo/spots?category=volcano", "X-Request-ID", "req-list")
	entry := find("Listing filter fell back to defaults")
	if entry["region_id"] != "tokyo" || entry["request_id"] != "req-list" {
		t.Errorf("listing log missing ids: %v", entry)
	}

	get(t, h, "/api/v1/spots/nowhere", "X-Request-ID", "req-spot")
	entry = find("Spot lookup failed")
	if entry["spot_id"] != "nowhere" || entry["request_id"] != "req-spot" {
		t.Errorf("spot log missing ids: %v", entry)
	}
}

// TestServer_Uptime tests that uptime follows the server clock.
func TestServer_Uptime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srv, err := New(newTestApp(t), DefaultConfig(), WithClock(clock))
	if err != nil {
		t.Fatalf("server.New() failed: %v", err)
	}

	clock.Advance(90 * time.Second)
	if got := srv.Uptime(); got != 90*time.Second {
		t.Errorf("Uptime() = %v, want 90s", got)
	}
}
