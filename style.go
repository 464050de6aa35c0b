package svg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Style is the presentation style of an element, the key:value pairs of
// its style attribute. Keys keep the order in which they were first set.
type Style struct {
	keys   []string
	values map[string]string
}

// NewStyle returns a style holding the given properties, in sorted key order
// when more than one map entry is given.
func NewStyle(props map[string]string) *Style {
	s := &Style{values: make(map[string]string, len(props))}
	s.Merge(props)
	return s
}

// ParseStyle parses a CSS declaration list such as "fill:red;stroke:none".
func ParseStyle(str string) (*Style, error) {
	s := &Style{values: map[string]string{}}
	trimmed := strings.TrimSpace(str)
	if trimmed == "" {
		return s, nil
	}
	// the last declaration loses its value without a terminator
	if !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}
	decls, err := parser.ParseDeclarations(trimmed)
	if err != nil {
		return nil, fmt.Errorf("error parsing style %q: %w", str, err)
	}
	for _, d := range decls {
		v := d.Value
		if d.Important {
			v += " !important"
		}
		s.Set(d.Property, v)
	}
	return s, nil
}

// Get returns the value of a property.
func (s *Style) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set sets a property, appending it when new.
func (s *Style) Set(key, value string) {
	if s.values == nil {
		s.values = map[string]string{}
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Delete removes a property.
func (s *Style) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Merge sets every property of props, keeping the existing ones.
// New keys are added in sorted order so the result is deterministic.
func (s *Style) Merge(props map[string]string) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Set(k, props[k])
	}
}

// Keys returns the property names in order.
func (s *Style) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of properties.
func (s *Style) Len() int {
	return len(s.keys)
}

// Map returns a copy of the properties.
func (s *Style) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// String serializes the style as a style attribute value.
func (s *Style) String() string {
	parts := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		parts = append(parts, k+":"+s.values[k])
	}
	return strings.Join(parts, ";")
}

func (s *Style) clone() *Style {
	return &Style{keys: s.Keys(), values: s.Map()}
}
