// Package routes collects route groups registered from init functions and
// mounts them on the router in a stable order.
package routes

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
)

// Registrar mounts one group of routes.
type Registrar func(r chi.Router, d deps.Deps)

type group struct {
	name string
	reg  Registrar
}

var groups []group

// Register adds a named route group. Names must be unique.
func Register(name string, reg Registrar) {
	for _, g := range groups {
		if g.name == name {
			panic("routes: duplicate group " + name)
		}
	}
	groups = append(groups, group{name: name, reg: reg})
}

// RegisterAll mounts every group, sorted by name.
func RegisterAll(r chi.Router, d deps.Deps) {
	ordered := append([]group(nil), groups...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].name < ordered[j].name })
	for _, g := range ordered {
		g.reg(r, d)
	}
}

// List returns "METHOD /pattern" for every mounted route.
func List(r chi.Routes) []string {
	var out []string
	_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, method+" "+strings.TrimSuffix(route, "/*"))
		return nil
	})
	sort.Strings(out)
	return out
}
