// Package fpx implements the fingerprint matching and lifecycle engine:
// canonical hashing of client attribute maps, the create-or-touch record
// store, match resolution, administrator flag/ignore state, and the
// retention sweeper.
package fpx

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// AttributeMap is an opaque set of client-reported fingerprint attributes.
type AttributeMap map[string]any

// ComputeHash produces the canonical digest of an attribute map. The values
// (not the keys) are stringified, sorted lexicographically and concatenated
// before hashing, so the digest is insensitive to attribute order. Two
// different key sets with identical value multisets therefore collide; that
// is a documented property of the scheme, not a defect.
func ComputeHash(attrs AttributeMap) string {
	vals := make([]string, 0, len(attrs))
	for _, v := range attrs {
		vals = append(vals, stringify(v))
	}
	sort.Strings(vals)
	sum := sha256.Sum256([]byte(strings.Join(vals, "")))
	return hex.EncodeToString(sum[:])
}

// stringify renders a single attribute value deterministically. Composite
// values go through json.Marshal, which emits map keys in sorted order.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool, int, int64, float64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// EncodeData serializes an attribute map for storage. Returns nil for an
// empty map so absent payloads stay NULL.
func EncodeData(attrs AttributeMap) *string {
	if len(attrs) == 0 {
		return nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

// DecodeData parses a stored payload back into an attribute map. A payload
// that fails to parse is treated as absent.
func DecodeData(data *string) AttributeMap {
	if data == nil || *data == "" {
		return nil
	}
	var out AttributeMap
	if err := json.Unmarshal([]byte(*data), &out); err != nil {
		return nil
	}
	return out
}
