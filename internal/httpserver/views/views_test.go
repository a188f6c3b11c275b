package views

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

func renderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func joes() *domain.Business {
	return &domain.Business{
		Slug:     "joe-s-cafe",
		Name:     "Joe's Cafe",
		WhatsApp: "12345678901",
		Services: []domain.Service{{Name: "Latte", Price: "$4"}},
		Theme:    style.DefaultTheme(),
		Layout:   domain.DefaultLayout(),
		Links: []domain.CustomLink{
			{ID: "a", Title: "Menu", URL: "example.com/menu", Type: domain.LinkURL, Icon: domain.IconGlobe, Visible: true},
			{ID: "b", Title: "Call", URL: "+1555", Type: domain.LinkPhone, Visible: true},
			{ID: "c", Title: "Secret", URL: "example.com/hidden", Type: domain.LinkURL, Visible: false},
		},
	}
}

func TestSafeHref(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a?b=1", "https://example.com/a?b=1"},
		{"mailto:joe@example.com", "mailto:joe@example.com"},
		{"tel:+1555", "tel:+1555"},
		{"/joe-s-cafe/edit?token=x", "/joe-s-cafe/edit?token=x"},
		{"javascript:alert(1)", "#"},
		{"//evil.example.com", "#"},
		{"data:text/html,hi", "#"},
		{"", "#"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := string(SafeHref(tt.in)); got != tt.want {
				t.Errorf("SafeHref(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderPublicPage(t *testing.T) {
	r := renderer(t)
	b := joes()
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, PagePublic, PageData{
		Business:     b,
		Links:        b.VisibleLinks(),
		Presentation: style.Resolve(b.Theme, b.Layout),
		Success:      true,
		EditURL:      "/joe-s-cafe/edit?token=abc",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := rec.Body.String()

	for _, want := range []string{
		"Joe&#39;s Cafe",
		"Your business page is live!",
		"Book on WhatsApp",
		"https://wa.me/12345678901?text=Hi%2C+I+want+to+book+Latte",
		`href="tel:+1555"`,
		"Edit this page",
		"Powered by <strong>TapBook</strong>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "Secret") {
		t.Error("hidden link rendered")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderIntakeErrors(t *testing.T) {
	r := renderer(t)
	var buf bytes.Buffer
	err := r.Execute(&buf, PageIntake, IntakeData{
		Form:   intake.Form{BusinessName: "<b>Bold</b>"},
		Errors: domain.ValidationErrors{domain.NewValidationError("whatsapp", "Please enter a valid WhatsApp number")},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	body := buf.String()
	if !strings.Contains(body, "Please enter a valid WhatsApp number") {
		t.Error("inline error missing")
	}
	if strings.Contains(body, "<b>Bold</b>") {
		t.Error("form value not escaped")
	}
}

func TestRenderEdit(t *testing.T) {
	r := renderer(t)
	b := joes()
	var buf bytes.Buffer
	err := r.Execute(&buf, PageEdit, EditData{
		Snapshot: editor.Snapshot{
			Business:     b,
			Presentation: style.Resolve(b.Theme, b.Layout),
			CSS:          editor.CSSState{Status: style.CSSValidation{Valid: true}},
		},
		Token:     "abc",
		PublicURL: "/joe-s-cafe",
		Themes:    style.ThemePresets(),
		Patterns:  style.Patterns(),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	body := buf.String()
	for _, want := range []string{"Edit your page", `data-preset="neon"`, `data-pattern="dots"`, "Joe&#39;s Cafe"} {
		if !strings.Contains(body, want) {
			t.Errorf("edit page missing %q", want)
		}
	}
}

func TestRenderMessagePages(t *testing.T) {
	r := renderer(t)
	for _, page := range []string{PageDenied, PageNotFound, PageError} {
		t.Run(page, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := r.Render(rec, http.StatusForbidden, page, MessageData{Title: "Access Denied", Message: "nope"}); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if rec.Code != http.StatusForbidden || !strings.Contains(rec.Body.String(), "Access Denied") {
				t.Errorf("got %d %q", rec.Code, rec.Body.String())
			}
		})
	}

	if err := r.Execute(&bytes.Buffer{}, "missing", nil); err == nil {
		t.Error("unknown page rendered")
	}
}
