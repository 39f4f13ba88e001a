package types

import (
	"sort"
	"strings"
)

// Params is the query parameter mapping of a GET request. A key that is not
// in the map was not specified; there is no null value.
type Params map[string]string

// Set adds key=value, ignoring empty values.
func (p Params) Set(key string, value string) {
	if value == "" {
		return
	}
	p[key] = value
}

// Keys returns the parameter names in ascending lexicographic order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Canonical joins the parameters as key=value pairs sorted by key. Values are
// not escaped.
func (p Params) Canonical() string {
	var b strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p[k])
	}
	return b.String()
}
