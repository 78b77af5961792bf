package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Attribute names used by the filters and the heatmap
const (
	AttrWiFi        = "WiFi"
	AttrParking     = "BusinessParking"
	AttrDriveThru   = "DriveThru"
	AttrDogsAllowed = "DogsAllowed"
	AttrAmbience    = "Ambience"
	AttrMusic       = "Music"
	AttrPriceRange  = "RestaurantsPriceRange2"
)

// Attributes is the sparse attribute map of a business.
// Values keep their raw JSON form because the dump mixes booleans,
// plain strings, python-repr strings (u'free') and python-repr dicts.
type Attributes map[string]json.RawMessage

// UnmarshalJSON accepts a JSON object or a string holding a python-repr dict,
// which is how CSV exports of the dataset carry the column. A string that
// does not parse leaves the business without attributes.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*a = nil
		return nil
	case strings.HasPrefix(raw, "{"):
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*a = obj
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseAttributes(s)
		if err != nil {
			*a = nil
			return nil
		}
		*a = parsed
		return nil
	}
	return fmt.Errorf("attributes: unsupported value %s", truncate(raw, 32))
}

// Enum returns the normalized (lower-case, unquoted) value of an attribute.
// ok is false when the attribute is absent, null or "None".
func (a Attributes) Enum(name string) (string, bool) {
	raw, ok := a[name]
	if !ok || len(raw) == 0 {
		return "", false
	}

	var value string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", false
		}
	case '{', '[':
		return "", false
	default:
		value = string(raw)
	}

	value = stripPythonQuotes(value)
	lower := strings.ToLower(value)
	if lower == "" || lower == "none" || lower == "null" {
		return "", false
	}
	return lower, true
}

// Flag returns the boolean value of an attribute and whether it is present
func (a Attributes) Flag(name string) (bool, bool) {
	v, ok := a.Enum(name)
	if !ok {
		return false, false
	}
	return truthy(v), true
}

// SubFlags decodes a dict-valued attribute such as BusinessParking or Ambience.
// Both real JSON objects and python-repr strings are accepted.
func (a Attributes) SubFlags(name string) (map[string]bool, bool) {
	raw, ok := a[name]
	if !ok || len(raw) == 0 {
		return nil, false
	}

	switch raw[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false
		}
		flags := make(map[string]bool, len(obj))
		for k, v := range obj {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				s = string(v)
			}
			flags[k] = truthy(stripPythonQuotes(s))
		}
		return flags, true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false
		}
		return parsePythonDict(s)
	}
	return nil, false
}

// AnySubFlag reports whether at least one sub-flag of a dict attribute is true
func (a Attributes) AnySubFlag(name string) (bool, bool) {
	flags, ok := a.SubFlags(name)
	if !ok {
		return false, false
	}
	for _, v := range flags {
		if v {
			return true, true
		}
	}
	return false, true
}

// parsePythonDict parses strings like "{'garage': False, u'street': True}"
func parsePythonDict(s string) (map[string]bool, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, false
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	flags := make(map[string]bool)
	if body == "" {
		return flags, true
	}
	for _, pair := range strings.Split(body, ",") {
		k, v, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		key := stripPythonQuotes(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		flags[key] = truthy(stripPythonQuotes(strings.TrimSpace(v)))
	}
	return flags, true
}

// stripPythonQuotes turns u'free' / 'free' / "free" into free
func stripPythonQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 3 && (s[0] == 'u' || s[0] == 'U') && (s[1] == '\'' || s[1] == '"') {
		s = s[1:]
	}
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		if unquoted, err := strconv.Unquote(`"` + s[1:len(s)-1] + `"`); err == nil {
			return unquoted
		}
		return s[1 : len(s)-1]
	}
	return s
}
