package headers

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

// https://datatracker.ietf.org/doc/html/rfc9110#name-tokens
var fieldNameRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*\+\-.^_\x60\|~]+$`)

type field struct {
	name  string
	value string
}

// Headers is an ordered collection of HTTP header fields. Lookups are case
// insensitive, but fields are written back in insertion order with the
// spelling they were first added with.
type Headers struct {
	fields []field
	index  map[string]int
}

func isValidFieldName(key string) bool {
	return fieldNameRegex.MatchString(key)
}

func validHeaderValueByte(c byte) bool {
	switch {
	case c == 0x09: // HTAB
		return true
	case c == 0x20: // SP
		return true
	case 0x21 <= c && c <= 0x7E: // VCHAR
		return true
	case c >= 0x80: // obs-text
		return true
	}
	return false
}

func isValidFieldValue(val string) bool {
	for i := 0; i < len(val); i++ {
		if !validHeaderValueByte(val[i]) {
			return false
		}
	}
	return true
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// ValidValue reports whether value may be sent as a header field value.
func ValidValue(value string) bool {
	return isValidFieldValue(value)
}

func valid(key, value string) bool {
	// drop invalid headers to prevent response splitting
	return isValidFieldName(key) && isValidFieldValue(value)
}

// Add adds a new header. If the header already exists, the new value is appended to the existing value, separated by a comma.
func (h *Headers) Add(key, value string) {
	if !valid(key, value) {
		return
	}

	nk := normalizeKey(key)
	if i, ok := h.index[nk]; ok {
		h.fields[i].value = h.fields[i].value + ", " + value
		return
	}
	h.index[nk] = len(h.fields)
	h.fields = append(h.fields, field{name: key, value: value})
}

// Set replaces the value of a header, keeping its position if it already exists.
func (h *Headers) Set(key, value string) {
	if !valid(key, value) {
		return
	}

	nk := normalizeKey(key)
	if i, ok := h.index[nk]; ok {
		h.fields[i].value = value
		return
	}
	h.index[nk] = len(h.fields)
	h.fields = append(h.fields, field{name: key, value: value})
}

// Get returns the value of a header.
func (h *Headers) Get(key string) string {
	i, ok := h.index[normalizeKey(key)]
	if !ok {
		return ""
	}
	return h.fields[i].value
}

// Remove removes a header.
func (h *Headers) Remove(key string) {
	nk := normalizeKey(key)
	i, ok := h.index[nk]
	if !ok {
		return
	}
	h.fields = slices.Delete(h.fields, i, i+1)
	delete(h.index, nk)
	for j := i; j < len(h.fields); j++ {
		h.index[normalizeKey(h.fields[j].name)] = j
	}
}

// All returns an iterator over all headers in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, f := range h.fields {
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// Size returns the number of headers.
func (h *Headers) Size() int {
	return len(h.fields)
}

// NewHeaders creates a new Headers object.
func NewHeaders() *Headers {
	return &Headers{
		index: map[string]int{},
	}
}
