package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/views"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/scheduler"
	"github.com/MrSnakeDoc/tapbook/internal/store/memory"
)

const autosave = 100 * time.Millisecond

type env struct {
	srv    *httptest.Server
	store  *memory.Store
	client *http.Client
}

func start(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()
	st := memory.New()

	reg := catalog.NewRegistry()
	if err := scheduler.NewCatalogReloader("", reg, log, 0, nil).Reload(ctx); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	rv, err := views.New()
	if err != nil {
		t.Fatalf("views: %v", err)
	}
	sessions := editor.NewManager(st, autosave, log)

	d := deps.Deps{
		Logger:        log,
		StartTime:     time.Now(),
		StoreDriver:   "memory",
		Store:         st,
		Intake:        intake.NewService(st, log),
		Sessions:      sessions,
		Catalog:       reg,
		Views:         rv,
		ReloadTrigger: make(chan struct{}, 1),
		RateLimit:     deps.RateLimit{Burst: 50, PerMin: 50},
	}
	srv := httptest.NewServer(httpserver.NewRouter(d, nil))
	t.Cleanup(func() {
		srv.Close()
		_ = sessions.CloseAll(ctx)
	})

	return &env{
		srv:    srv,
		store:  st,
		client: &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (e *env) send(t *testing.T, method, path, contentType string, body io.Reader) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, e.srv.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp, string(raw)
}

func (e *env) submit(t *testing.T, name, whatsapp string) (slug, token string) {
	t.Helper()
	form := url.Values{
		"business_name": {name},
		"whatsapp":      {whatsapp},
		"service_name":  {"Espresso"},
		"service_price": {"$3"},
	}
	resp, body := e.send(t, http.MethodPost, "/", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("submit status = %d: %s", resp.StatusCode, body)
	}
	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatal(err)
	}
	return strings.TrimPrefix(loc.Path, "/"), loc.Query().Get("edit")
}

func TestCreateAndViewPage(t *testing.T) {
	e := start(t)

	form := url.Values{
		"business_name": {"Joe's Cafe"},
		"whatsapp":      {"+1 (234) 567-8901"},
		"service_name":  {"Latte"},
		"service_price": {"$4"},
	}
	resp, _ := e.send(t, http.MethodPost, "/", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !regexp.MustCompile(`^/joe-s-cafe\?success=true&edit=[0-9a-z]+$`).MatchString(loc) {
		t.Fatalf("Location = %q", loc)
	}

	stored, err := e.store.Get(context.Background(), "joe-s-cafe")
	if err != nil {
		t.Fatal(err)
	}
	if stored.WhatsApp != "12345678901" {
		t.Errorf("whatsapp = %q, want 12345678901", stored.WhatsApp)
	}

	resp, page := e.send(t, http.MethodGet, loc, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page status = %d", resp.StatusCode)
	}
	for _, want := range []string{"Joe&#39;s Cafe", "Your business page is live", "https://wa.me/12345678901", "Latte"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSlugCollisionsGetSuffixes(t *testing.T) {
	e := start(t)

	want := []string{"bella", "bella-1", "bella-2"}
	for _, w := range want {
		slug, _ := e.submit(t, "Bella", "5551112222")
		if slug != w {
			t.Errorf("slug = %q, want %q", slug, w)
		}
	}
}

func TestEditRequiresToken(t *testing.T) {
	e := start(t)
	slug, token := e.submit(t, "Guarded Shop", "5551112222")

	tests := []struct {
		name  string
		token string
		code  int
		text  string
	}{
		{"wrong token", "not-the-token", http.StatusForbidden, "Access Denied"},
		{"right token", token, http.StatusOK, "Guarded Shop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := e.send(t, http.MethodGet, "/"+slug+"/edit?token="+url.QueryEscape(tt.token), "", nil)
			if resp.StatusCode != tt.code {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.code)
			}
			if !strings.Contains(body, tt.text) {
				t.Errorf("body missing %q", tt.text)
			}
		})
	}

	patch := `{"ops":[{"op":"theme.preset","preset":"neon"}]}`
	resp, _ := e.send(t, http.MethodPatch, "/api/businesses/"+slug+"/session?token=nope", "application/json", strings.NewReader(patch))
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("patch with wrong token status = %d, want 403", resp.StatusCode)
	}
	stored, _ := e.store.Get(context.Background(), slug)
	if stored.Version != 0 || stored.Theme.Style == domain.StyleNeon {
		t.Errorf("unauthorized patch changed the record: %+v", stored.Theme)
	}
}

func TestEditAutosaves(t *testing.T) {
	e := start(t)
	slug, token := e.submit(t, "Neon Nights", "5551112222")
	session := "/api/businesses/" + slug + "/session?token=" + url.QueryEscape(token)

	ops := []string{
		`{"ops":[{"op":"theme.preset","preset":"neon"}]}`,
		`{"ops":[{"op":"link.add","link":{"title":"Menu","url":"example.com/menu"}}]}`,
		`{"ops":[{"op":"css.set","css":"a { color: red; }"}]}`,
	}
	for _, body := range ops {
		resp, out := e.send(t, http.MethodPatch, session, "application/json", strings.NewReader(body))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("patch %s status = %d: %s", body, resp.StatusCode, out)
		}
	}

	deadline := time.Now().Add(3 * time.Second)
	var stored *domain.Business
	for time.Now().Before(deadline) {
		stored, _ = e.store.Get(context.Background(), slug)
		if stored.Version == 3 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if stored.Version != 3 {
		t.Fatalf("stored version = %d, want 3 after autosave", stored.Version)
	}
	if stored.Theme.Style != domain.StyleNeon || len(stored.Links) != 1 || stored.Theme.CustomCSS == "" {
		t.Errorf("autosaved record = theme %+v links %d", stored.Theme, len(stored.Links))
	}

	_, page := e.send(t, http.MethodGet, "/"+slug, "", nil)
	if !strings.Contains(page, "https://example.com/menu") {
		t.Error("public page missing the new link")
	}
}

func TestUnknownPages(t *testing.T) {
	e := start(t)

	paths := []string{"/no-such-business", "/no-such-business/edit?token=x"}
	for _, p := range paths {
		resp, body := e.send(t, http.MethodGet, p, "", nil)
		if p == paths[0] && (resp.StatusCode != http.StatusNotFound || !strings.Contains(body, "Business Not Found")) {
			t.Errorf("%s: status %d", p, resp.StatusCode)
		}
		if p == paths[1] && resp.StatusCode != http.StatusForbidden {
			t.Errorf("%s: status %d, want 403", p, resp.StatusCode)
		}
	}
}
