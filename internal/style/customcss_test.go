package style

import (
	"strings"
	"testing"
)

func TestValidateCustomCSS(t *testing.T) {
	tests := []struct {
		name    string
		css     string
		valid   bool
		rules   int
		errPart string
	}{
		{name: "empty", css: "  ", valid: true},
		{name: "single rule", css: ".card { color: red; }", valid: true, rules: 1},
		{name: "two rules", css: "a { color: red; } b { margin: 0; }", valid: true, rules: 2},
		{name: "closing style tag", css: "a{}</style><script>alert(1)</script>", errPart: "closing style tags"},
		{name: "import", css: "@import url(evil.css);", errPart: "@import"},
		{name: "expression", css: "a { width: EXPRESSION(alert(1)); }", errPart: "CSS expressions"},
		{name: "javascript url", css: "a { background: url(javascript:alert(1)); }", errPart: "javascript:"},
		{name: "parse error", css: "body { color red; }", errPart: "parse error"},
		{name: "too long", css: ".a { color: red; }" + strings.Repeat(" ", MaxCustomCSSLength), errPart: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCustomCSS(tt.css)
			if got.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (errors %v)", got.Valid, tt.valid, got.Errors)
			}
			if tt.valid && got.Rules != tt.rules {
				t.Errorf("Rules = %d, want %d", got.Rules, tt.rules)
			}
			if tt.errPart == "" {
				return
			}
			found := false
			for _, e := range got.Errors {
				if strings.Contains(e, tt.errPart) {
					found = true
				}
			}
			if !found {
				t.Errorf("Errors = %v, want one containing %q", got.Errors, tt.errPart)
			}
		})
	}
}

func TestCSSTemplatesAreValid(t *testing.T) {
	templates := CSSTemplates()
	if len(templates) != 6 {
		t.Fatalf("CSSTemplates() returned %d templates, want 6", len(templates))
	}
	if templates[0].Name != "Glassmorphism" {
		t.Errorf("first template = %q", templates[0].Name)
	}
	if got := ValidateCustomCSS(templates[0].CSS); !got.Valid {
		t.Errorf("Glassmorphism template invalid: %v", got.Errors)
	}
}
