// Package views renders the server-side pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

//go:embed templates/*.html
var files embed.FS

// Page names.
const (
	PageIntake   = "intake"
	PagePublic   = "page"
	PageEdit     = "edit"
	PageDenied   = "denied"
	PageNotFound = "notfound"
	PageError    = "error"
)

var pages = []string{PageIntake, PagePublic, PageEdit, PageDenied, PageNotFound, PageError}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...any) (map[string]any, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		// css marks style output from the style package as trusted. Custom
		// CSS reaches here only after validation.
		"css": func(v any) template.CSS {
			return template.CSS(cast.ToString(v))
		},
		"href":    SafeHref,
		"glyph":   style.LinkGlyph,
		"booking": domain.BookingURL,
		"tel":     domain.CallURL,
		"insta":   domain.InstagramURL,
		"ago": func(v any) string {
			t := cast.ToTime(v)
			if t.IsZero() {
				return "never"
			}
			return humanize.Time(t)
		},
		"count": func(v any) string {
			return humanize.Comma(cast.ToInt64(v))
		},
		"year": func() int { return time.Now().Year() },
	}
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcMap()).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with status. The page is rendered to a buffer first so
// a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, page, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) Execute(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

var safeSchemes = map[string]bool{"http": true, "https": true, "mailto": true, "tel": true}

// SafeHref passes through http, https, mailto and tel targets and same-site
// paths. Anything else becomes "#".
func SafeHref(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "#"
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return template.URL(raw)
	}
	u, err := url.Parse(raw)
	if err != nil || !safeSchemes[strings.ToLower(u.Scheme)] {
		return "#"
	}
	return template.URL(u.String())
}
