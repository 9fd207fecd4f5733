package playmovies

import (
	"net/url"
	"slices"
	"strings"
)

// param is one query parameter. Repeated names are kept as separate entries.
type param struct {
	name  string
	value string
}

// params is an ordered parameter list. Unlike url.Values it preserves the
// order parameters were pushed in, which the API relies on for repeated
// filters.
type params []param

func (p *params) push(name, value string) {
	*p = append(*p, param{name: name, value: value})
}

// get returns the first value pushed for name.
func (p params) get(name string) (string, bool) {
	for _, kv := range p {
		if kv.name == name {
			return kv.value, true
		}
	}
	return "", false
}

// remove drops every entry whose name is in names.
func (p *params) remove(names ...string) {
	*p = slices.DeleteFunc(*p, func(kv param) bool {
		return slices.Contains(names, kv.name)
	})
}

// encode renders the parameters as a query string in their current order.
func (p params) encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// expandPath replaces each {name} placeholder of template with the escaped
// value of the matching parameter.
func (p params) expandPath(template string, names []string) string {
	for _, name := range names {
		value, _ := p.get(name)
		template = strings.ReplaceAll(template, "{"+name+"}", url.PathEscape(value))
	}
	return template
}

// resolveURL joins base and a relative path, inserting a slash if needed.
func resolveURL(base, path string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + path
}
