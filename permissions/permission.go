package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var routesData []byte

// Route grants access to one chi route pattern and method.
type Route struct {
	Pattern string   `json:"pattern"`
	Method  string   `json:"method"`
	Roles   []string `json:"roles"`
	Public  bool     `json:"public"`
}

// Allows reports whether role may call the route. Public routes and routes
// without roles accept any caller.
func (r Route) Allows(role string) bool {
	return r.Public || len(r.Roles) == 0 || slices.Contains(r.Roles, role)
}

type routeKey struct {
	method  string
	pattern string
}

// Table indexes routes by method and pattern.
type Table struct {
	// Disabled lets every authenticated caller through.
	Disabled bool
	routes   map[routeKey]Route
}

func NewTable(disabled bool, routes ...Route) (*Table, error) {
	table := &Table{
		Disabled: disabled,
		routes:   make(map[routeKey]Route, len(routes)),
	}

	for _, route := range routes {
		key := routeKey{method: strings.ToUpper(route.Method), pattern: route.Pattern}
		if key.method == "" || key.pattern == "" {
			return nil, fmt.Errorf("route %q %q: method and pattern are required", route.Method, route.Pattern)
		}

		if _, ok := table.routes[key]; ok {
			return nil, fmt.Errorf("route %s %s declared twice", key.method, key.pattern)
		}

		table.routes[key] = route
	}

	return table, nil
}

// Lookup finds the route registered for method and the chi pattern.
func (t *Table) Lookup(method, pattern string) (Route, bool) {
	route, ok := t.routes[routeKey{method: strings.ToUpper(method), pattern: pattern}]

	return route, ok
}

// IsPublic reports whether the route can be called without a token.
func (t *Table) IsPublic(method, pattern string) bool {
	route, ok := t.Lookup(method, pattern)

	return ok && route.Public
}

// Allows reports whether role may call the route. Unlisted routes accept any
// authenticated caller.
func (t *Table) Allows(method, pattern, role string) bool {
	if t.Disabled {
		return true
	}

	route, ok := t.Lookup(method, pattern)
	if !ok {
		return true
	}

	return route.Allows(role)
}

func (t *Table) Len() int {
	return len(t.routes)
}

type routesFile struct {
	Disabled bool    `json:"disabled"`
	Routes   []Route `json:"routes"`
}

// Load builds the table from the embedded permissions.json. It returns nil
// when the file is malformed so RBAC rejects every request.
func Load() *Table {
	var file routesFile

	if err := json.Unmarshal(routesData, &file); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	table, err := NewTable(file.Disabled, file.Routes...)
	if err != nil {
		log.Err(err).Msg("Invalid embedded permissions")

		return nil
	}

	log.Info().Int("routes", table.Len()).Msg("Successfully loaded embedded permissions")

	return table
}
