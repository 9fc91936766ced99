package dom

import (
	"sort"
	"strconv"
	"strings"
)

// Style is an inline style mapping, e.g. {"position": "absolute", "left": "12px"}.
type Style map[string]string

// Clone returns an independent copy. A nil Style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new Style with others applied over s, left to right.
func (s Style) Merge(others ...Style) Style {
	out := s.Clone()
	if out == nil {
		out = Style{}
	}
	for _, o := range others {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// Get returns the value for key, or "" when unset.
func (s Style) Get(key string) string { return s[key] }

// Pixels parses a "<n>px" (or bare number) value. ok is false when the key is
// unset or not numeric.
func (s Style) Pixels(key string) (float64, bool) {
	v, found := s[key]
	if !found {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Hidden reports whether the style takes the node out of layout.
func (s Style) Hidden() bool { return s["display"] == "none" }

// Transparent reports whether the node is laid out but not painted.
func (s Style) Transparent() bool { return s["opacity"] == "0" }

// String renders the style as "k:v; k:v" with sorted keys.
func (s Style) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + s[k]
	}
	return strings.Join(parts, "; ")
}

// Px formats a pixel value the way inline styles carry it.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
