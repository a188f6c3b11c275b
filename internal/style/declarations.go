// Package style turns a theme into typed CSS: inline declarations for the
// page, its buttons and text, plus composed filter, shadow and pattern values.
package style

import (
	"strconv"
	"strings"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Declarations is an ordered set of CSS declarations. Setting an existing
// property replaces its value in place.
type Declarations []Declaration

func (d Declarations) Set(property, value string) Declarations {
	for i := range d {
		if d[i].Property == property {
			d[i].Value = value
			return d
		}
	}
	return append(d, Declaration{Property: property, Value: value})
}

func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Merge applies other on top of d.
func (d Declarations) Merge(other Declarations) Declarations {
	out := make(Declarations, len(d), len(d)+len(other))
	copy(out, d)
	for _, decl := range other {
		out = out.Set(decl.Property, decl.Value)
	}
	return out
}

// String renders the declarations as an inline style attribute value.
func (d Declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		parts = append(parts, decl.Property+": "+decl.Value+";")
	}
	return strings.Join(parts, " ")
}

// Block renders the declarations as a rule for selector, "" when empty.
func (d Declarations) Block(selector string) string {
	if len(d) == 0 {
		return ""
	}
	return selector + " { " + d.String() + " }"
}

// num formats a number the shortest way: 100 -> "100", 0.5 -> "0.5".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
