package flow

import "strings"

// Field is a single HTTP header field.
type Field struct {
	Name  string
	Value string
}

// Headers is an ordered multimap of HTTP header fields. Unlike
// net/http.Header, it preserves the original field order and duplicate
// names (repeated Set-Cookie, for example) exactly as captured. Name
// lookups are case-insensitive.
type Headers []Field

// Add appends a field, keeping insertion order.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Field{Name: name, Value: value})
}

// Get returns the value of the first field with the given name.
func (h Headers) Get(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether at least one field with the given name exists.
func (h Headers) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Values returns the values of every field with the given name, in order.
func (h Headers) Values(name string) []string {
	var values []string
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			values = append(values, f.Value)
		}
	}
	return values
}

// Set replaces the value of the first field with the given name in place,
// dropping any later duplicates. The field keeps its position; if no field
// matches, one is appended.
func (h *Headers) Set(name, value string) {
	out := (*h)[:0]
	found := false
	for _, f := range *h {
		if strings.EqualFold(f.Name, name) {
			if found {
				continue
			}
			f.Value = value
			found = true
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, Field{Name: name, Value: value})
	}
	*h = out
}

// Remove deletes every field with the given name.
func (h *Headers) Remove(name string) {
	out := (*h)[:0]
	for _, f := range *h {
		if strings.EqualFold(f.Name, name) {
			continue
		}
		out = append(out, f)
	}
	*h = out
}

// Copy returns an independent copy sharing no storage with h.
func (h Headers) Copy() Headers {
	if h == nil {
		return nil
	}
	out := make(Headers, len(h))
	copy(out, h)
	return out
}
