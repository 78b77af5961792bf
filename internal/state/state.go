// Package state holds the explicit application state of one map page and the
// pure recomputation that derives the visible subsets from it.
//
// Inputs (filters, geo query, selection) live in State. Refresh turns a State
// into Derived subsets without side effects; every mutation returns a new
// State value. Changing an upstream input clears the selection, because the
// heatmap cell it came from is redrawn from scratch.
package state

import (
	"errors"
	"math"

	"github.com/jengzang/yelp-map-backend-go/internal/charts"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/filter"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/proximity"
	"github.com/jengzang/yelp-map-backend-go/internal/spatial"
)

var (
	// ErrUnknownCell is returned when selecting a heatmap cell without members
	ErrUnknownCell = errors.New("heatmap cell has no businesses in range")
	// ErrInvalidCenter is returned for a center outside valid coordinates
	ErrInvalidCenter = errors.New("invalid center coordinates")
)

// Selection is the hovered heatmap cell and its members
type Selection struct {
	Cell    models.CellKey
	Members []int
}

// State is the complete input state of one page
type State struct {
	Filters   models.FilterConfig
	Query     models.GeoQuery
	Selection *Selection
}

// Derived are the subsets computed from a State
type Derived struct {
	Filtered []int
	InRange  []int
	Heatmap  models.HeatmapResponse
}

// New creates the initial state for a viewport. MaxRadius is derived once
// here and stays fixed for the lifetime of the state.
func New(center models.LatLng, viewport spatial.Bounds, minRadius, radius float64, filters models.FilterConfig) State {
	if minRadius <= 0 {
		minRadius = spatial.DefaultMinRadius
	}
	maxRadius := spatial.MaxRadiusForViewport(spatial.Point{Lat: center.Lat, Lon: center.Lng}, viewport, minRadius)

	return State{
		Filters: filters,
		Query: models.GeoQuery{
			Center:       center,
			RadiusMeters: math.Round(spatial.ClampRadius(radius, minRadius, maxRadius)),
			MinRadius:    minRadius,
			MaxRadius:    maxRadius,
		},
	}
}

// Refresh recomputes the filtered subset, then the in-range subset
func Refresh(store *dataset.Store, s State) Derived {
	filtered := filter.Apply(store, s.Filters)
	inRange := proximity.InRangeIndexed(store, filtered, s.Query.Center, s.Query.RadiusMeters)
	return Derived{
		Filtered: filtered,
		InRange:  inRange,
		Heatmap:  charts.Heatmap(store, inRange),
	}
}

// Active returns the subset the views highlight: the selection when present,
// the in-range subset otherwise.
func (d Derived) Active(s State) []int {
	if s.Selection != nil {
		return s.Selection.Members
	}
	return d.InRange
}

// WithFilters replaces the filter configuration
func (s State) WithFilters(cfg models.FilterConfig) State {
	if cfg.MinStars < 0 || math.IsNaN(cfg.MinStars) {
		cfg.MinStars = 0
	}
	s.Filters = cfg
	s.Selection = nil
	return s
}

// WithCenter moves the query center (drag-end of the center marker)
func (s State) WithCenter(center models.LatLng) (State, error) {
	if !ValidCoordinate(center) {
		return s, ErrInvalidCenter
	}
	s.Query.Center = center
	s.Selection = nil
	return s, nil
}

// WithRadius sets the radius in meters, clamped to the query bounds
func (s State) WithRadius(meters float64) State {
	s.Query.RadiusMeters = math.Round(spatial.ClampRadius(meters, s.Query.MinRadius, s.Query.MaxRadius))
	s.Selection = nil
	return s
}

// WithSlider sets the radius from the log-scaled control position
func (s State) WithSlider(v float64) State {
	s.Query.RadiusMeters = spatial.SliderToRadius(v, s.Query.MinRadius, s.Query.MaxRadius)
	s.Selection = nil
	return s
}

// Slider returns the control position of the current radius
func (s State) Slider() int {
	return spatial.RadiusToSlider(s.Query.RadiusMeters, s.Query.MinRadius, s.Query.MaxRadius)
}

// WithSelection selects the members of a heatmap cell of d (hover-enter)
func (s State) WithSelection(d Derived, key models.CellKey) (State, error) {
	cell, ok := charts.Cell(d.Heatmap, key)
	if !ok {
		return s, ErrUnknownCell
	}
	s.Selection = &Selection{
		Cell:    models.CellKey{Stars: cell.Stars, Price: cell.Price},
		Members: append([]int(nil), cell.Members...),
	}
	return s, nil
}

// WithoutSelection clears the selection (hover-exit)
func (s State) WithoutSelection() State {
	s.Selection = nil
	return s
}

// ValidCoordinate reports whether ll is a usable map coordinate
func ValidCoordinate(ll models.LatLng) bool {
	if math.IsNaN(ll.Lat) || math.IsNaN(ll.Lng) {
		return false
	}
	return ll.Lat >= -90 && ll.Lat <= 90 && ll.Lng >= -180 && ll.Lng <= 180
}
