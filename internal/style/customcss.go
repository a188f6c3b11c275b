package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// MaxCustomCSSLength caps the size of user stylesheets.
const MaxCustomCSSLength = 20000

// forbiddenCSS lists fragments that could escape the style element or run script.
var forbiddenCSS = []struct {
	needle string
	reason string
}{
	{"</style", "closing style tags are not allowed"},
	{"<script", "script tags are not allowed"},
	{"@import", "@import is not allowed"},
	{"expression(", "CSS expressions are not allowed"},
	{"javascript:", "javascript: URLs are not allowed"},
	{"behavior:", "behavior properties are not allowed"},
	{"-moz-binding", "-moz-binding is not allowed"},
}

// CSSValidation is the outcome of checking a custom stylesheet.
type CSSValidation struct {
	Valid  bool     `json:"valid"`
	Rules  int      `json:"rules"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateCustomCSS screens src for injection vectors and parses it.
// Empty input is valid.
func ValidateCustomCSS(src string) CSSValidation {
	if strings.TrimSpace(src) == "" {
		return CSSValidation{Valid: true}
	}

	var errs []string
	if len(src) > MaxCustomCSSLength {
		errs = append(errs, fmt.Sprintf("custom CSS exceeds %d characters", MaxCustomCSSLength))
	}
	lower := strings.ToLower(src)
	for _, f := range forbiddenCSS {
		if strings.Contains(lower, f.needle) {
			errs = append(errs, f.reason)
		}
	}

	rules := 0
	sheet, err := parser.Parse(src)
	if err != nil {
		errs = append(errs, "parse error: "+err.Error())
	} else if sheet != nil {
		rules = len(sheet.Rules)
	}

	return CSSValidation{Valid: len(errs) == 0, Rules: rules, Errors: errs}
}
