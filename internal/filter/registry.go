// Package filter derives the filtered subset of the dataset from a FilterConfig.
//
// Every filter is an entry of an ordered registry of (name, enabled, predicate)
// triples. Entries are evaluated uniformly and conjunctively; a business that
// lacks the data a predicate needs fails that predicate.
package filter

import (
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Predicate reports whether a business passes a filter under cfg
type Predicate func(b *models.Business, cfg models.FilterConfig) bool

// Entry is one filter dimension
type Entry struct {
	Name      string
	Enabled   func(cfg models.FilterConfig) bool
	Predicate Predicate
}

// Registry is an ordered list of filter dimensions
type Registry []Entry

// Default is the registry behind the map page controls
var Default = Registry{
	{
		Name:      "min_stars",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.MinStars > 0 },
		Predicate: func(b *models.Business, cfg models.FilterConfig) bool { return b.Stars >= cfg.MinStars },
	},
	{
		Name:      "is_open",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.IsOpenOnly },
		Predicate: func(b *models.Business, _ models.FilterConfig) bool { return bool(b.IsOpen) },
	},
	{
		Name:      "wifi",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.WifiOnly },
		Predicate: hasWiFi,
	},
	{
		Name:      "parking",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.ParkingOnly },
		Predicate: anySubFlag(models.AttrParking),
	},
	{
		Name:      "drive_through",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.DriveThroughOnly },
		Predicate: flag(models.AttrDriveThru),
	},
	{
		Name:      "dogs_allowed",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.DogsAllowedOnly },
		Predicate: flag(models.AttrDogsAllowed),
	},
	{
		Name:      "ambience",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.AmbienceOnly },
		Predicate: anySubFlag(models.AttrAmbience),
	},
	{
		Name:      "music",
		Enabled:   func(cfg models.FilterConfig) bool { return cfg.MusicOnly },
		Predicate: anySubFlag(models.AttrMusic),
	},
}

// Names lists the registered filter names in evaluation order
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// Active returns the predicates enabled by cfg, in registry order
func (r Registry) Active(cfg models.FilterConfig) []Predicate {
	var active []Predicate
	for _, e := range r {
		if e.Enabled(cfg) {
			active = append(active, e.Predicate)
		}
	}
	return active
}

// hasWiFi passes free and paid WiFi; "no" and missing values fail
func hasWiFi(b *models.Business, _ models.FilterConfig) bool {
	v, ok := b.Attributes.Enum(models.AttrWiFi)
	return ok && (v == "free" || v == "paid")
}

func flag(name string) Predicate {
	return func(b *models.Business, _ models.FilterConfig) bool {
		v, ok := b.Attributes.Flag(name)
		return ok && v
	}
}

func anySubFlag(name string) Predicate {
	return func(b *models.Business, _ models.FilterConfig) bool {
		v, ok := b.Attributes.AnySubFlag(name)
		return ok && v
	}
}
