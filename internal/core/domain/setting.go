package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrSettingNotFound = errors.New("setting not found")
var ErrPlatformNotConfigured = errors.New("platform tenant not configured")

// PlatformTenantKey is the settings key holding the platform tenant identifier.
const PlatformTenantKey = "platform_company_id"

// Setting is a key-value configuration row, optionally scoped to a tenant.
// The platform tenant key is looked up globally by key alone.
type Setting struct {
	TenantID  string       `json:"tenant_id,omitempty"`
	Key       string       `json:"key"`
	Value     SettingValue `json:"value"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// SettingValueKind tags the shape a setting value arrived in. The storage
// column is loosely typed: primitive strings are sometimes persisted with
// JSON quoting, and some writers wrap the value in a single-element array.
type SettingValueKind int

const (
	SettingString SettingValueKind = iota
	SettingJSONString
	SettingArray
)

// SettingValue is the tagged union of the three value shapes the store is
// known to produce. Shapes beyond these three are rejected at parse time.
type SettingValue struct {
	Kind SettingValueKind
	// Str holds the value for SettingString and SettingJSONString.
	Str string
	// Elems holds the value for SettingArray.
	Elems []string
}

// ParseSettingValue classifies a raw store value into a SettingValue.
// A bare string is kept as-is, unless it carries surrounding JSON quotes, in
// which case it is classified as JSON-encoded. A slice becomes SettingArray
// with each element coerced to its string form. Anything else is serialized
// and treated as a JSON-encoded string.
func ParseSettingValue(raw any) SettingValue {
	switch v := raw.(type) {
	case string:
		if isJSONQuoted(v) {
			return SettingValue{Kind: SettingJSONString, Str: v}
		}
		return SettingValue{Kind: SettingString, Str: v}
	case []any:
		elems := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				elems = append(elems, s)
				continue
			}
			elems = append(elems, fmt.Sprintf("%v", e))
		}
		return SettingValue{Kind: SettingArray, Elems: elems}
	case []string:
		return SettingValue{Kind: SettingArray, Elems: v}
	default:
		b, err := json.Marshal(raw)
		if err != nil {
			return SettingValue{Kind: SettingJSONString, Str: fmt.Sprintf("%v", raw)}
		}
		return SettingValue{Kind: SettingJSONString, Str: string(b)}
	}
}

// isJSONQuoted reports whether s is a string still wearing one pair of
// surrounding JSON quotes, ignoring outer whitespace.
func isJSONQuoted(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// Text extracts the value as a plain string:
//   - a plain string is used directly,
//   - a JSON-encoded string has one leading and one trailing quote stripped,
//   - an array yields its first element.
//
// The result is trimmed of surrounding whitespace. ok is false when nothing
// usable could be extracted (empty array, empty result).
func (v SettingValue) Text() (string, bool) {
	var s string
	switch v.Kind {
	case SettingString:
		s = v.Str
	case SettingJSONString:
		s = strings.TrimSpace(v.Str)
		s = strings.TrimPrefix(s, `"`)
		s = strings.TrimSuffix(s, `"`)
	case SettingArray:
		if len(v.Elems) == 0 {
			return "", false
		}
		s = v.Elems[0]
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// MarshalJSON renders the value in its plain extracted form when possible.
func (v SettingValue) MarshalJSON() ([]byte, error) {
	if s, ok := v.Text(); ok {
		return json.Marshal(s)
	}
	return json.Marshal("")
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (v *SettingValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = ParseSettingValue(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*v = SettingValue{Kind: SettingArray, Elems: arr}
		return nil
	}
	return fmt.Errorf("setting value: unsupported shape: %s", string(data))
}

// NormalizeTenantID is the single normalization applied before tenant id
// comparison: trim surrounding whitespace, lowercase. Identifiers reach the
// resolver from several code paths with inconsistent casing and padding, so
// comparison is uniformly case-insensitive.
func NormalizeTenantID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
