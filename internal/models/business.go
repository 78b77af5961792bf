package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Business represents one restaurant entry from the Yelp dataset
type Business struct {
	BusinessID  string     `json:"business_id"`
	Name        string     `json:"name"` // Not guaranteed unique
	City        string     `json:"city,omitempty"`
	State       string     `json:"state,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Stars       float64    `json:"stars"`        // 1-5 in 0.5 steps
	ReviewCount int        `json:"review_count"` // Non-negative
	IsOpen      BoolLike   `json:"is_open"`
	PriceRange  *int       `json:"price_range,omitempty"` // 1-4, nil when unknown
	Categories  string     `json:"categories,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty"`
}

// HasCoordinates reports whether the business can be placed on the map.
// A zero latitude or longitude counts as missing: the dataset cannot tell
// a real 0,0 coordinate apart from an absent one, so such records are
// excluded everywhere.
func (b *Business) HasCoordinates() bool {
	return b.Latitude != 0 && b.Longitude != 0
}

// UnmarshalJSON tolerates the shapes CSV round trips produce: numeric
// fields may arrive as floats (120.0) or numeric strings ("2").
func (b *Business) UnmarshalJSON(data []byte) error {
	type plain Business
	aux := struct {
		*plain
		Latitude    flexNumber `json:"latitude"`
		Longitude   flexNumber `json:"longitude"`
		Stars       flexNumber `json:"stars"`
		ReviewCount flexNumber `json:"review_count"`
		PriceRange  flexNumber `json:"price_range"`
	}{plain: (*plain)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	b.Latitude = aux.Latitude.value
	b.Longitude = aux.Longitude.value
	b.Stars = aux.Stars.value
	b.ReviewCount = 0
	if aux.ReviewCount.set && aux.ReviewCount.value > 0 {
		b.ReviewCount = int(math.Min(math.Floor(aux.ReviewCount.value), math.MaxInt32))
	}
	b.PriceRange = FloorPrice(aux.PriceRange.value, aux.PriceRange.set)
	return nil
}

// FloorPrice turns a raw price level into 1-4, or nil when absent or out of range
func FloorPrice(v float64, ok bool) *int {
	if !ok || v < 1 || v >= 5 {
		return nil
	}
	p := int(math.Floor(v))
	return &p
}

// flexNumber decodes a JSON number or a numeric string. null, "", "None",
// NaN and anything non-numeric leave it unset.
type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = flexNumber{}
		return nil
	}
	*n = flexNumber{value: v, set: true}
	return nil
}

// Normalize fills derived fields after decoding
func (b *Business) Normalize() {
	if b.ReviewCount < 0 {
		b.ReviewCount = 0
	}
	if b.PriceRange == nil {
		if v, ok := b.Attributes.Enum(AttrPriceRange); ok {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				b.PriceRange = FloorPrice(n, true)
			}
		}
	}
	if b.PriceRange != nil && (*b.PriceRange < 1 || *b.PriceRange > 4) {
		b.PriceRange = nil
	}
}

// BoolLike decodes the dataset's boolean-ish values: 1/0, true/false, "1", "True"
type BoolLike bool

// UnmarshalJSON implements json.Unmarshaler
func (b *BoolLike) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*b = false
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	*b = BoolLike(truthy(raw))
	return nil
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0
	}
	return false
}

// DecodeBusinesses decodes a JSON array of business records.
// Records that are not objects are skipped and counted; only a malformed
// top-level array is an error.
func DecodeBusinesses(data []byte) ([]Business, int, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, err
	}

	businesses := make([]Business, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var b Business
		if err := json.Unmarshal(rec, &b); err != nil {
			skipped++
			continue
		}
		b.Normalize()
		businesses = append(businesses, b)
	}
	return businesses, skipped, nil
}
