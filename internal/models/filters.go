package models

// FilterConfig holds the attribute filters. Every enabled filter is ANDed.
type FilterConfig struct {
	MinStars         float64 `form:"minStars" json:"min_stars"` // 0 disables
	IsOpenOnly       bool    `form:"isOpen" json:"is_open_only"`
	WifiOnly         bool    `form:"wifi" json:"wifi_only"`
	ParkingOnly      bool    `form:"parking" json:"parking_only"`
	DriveThroughOnly bool    `form:"driveThrough" json:"drive_through_only"`
	DogsAllowedOnly  bool    `form:"dogsAllowed" json:"dogs_allowed_only"`
	AmbienceOnly     bool    `form:"ambience" json:"ambience_only"`
	MusicOnly        bool    `form:"music" json:"music_only"`
}

// LatLng is a WGS84 coordinate in degrees
type LatLng struct {
	Lat float64 `json:"lat" form:"lat"`
	Lng float64 `json:"lng" form:"lng"`
}

// Viewport is the visible map area
type Viewport struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Center returns the midpoint of the viewport
func (v Viewport) Center() LatLng {
	return LatLng{Lat: (v.North + v.South) / 2, Lng: (v.East + v.West) / 2}
}

// IsZero reports whether no viewport was supplied
func (v Viewport) IsZero() bool {
	return v == Viewport{}
}

// GeoQuery is the proximity query around the draggable center marker
type GeoQuery struct {
	Center       LatLng  `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
	MinRadius    float64 `json:"min_radius"`
	MaxRadius    float64 `json:"max_radius"`
}

// SearchQuery represents the parameters of a one-shot business search
type SearchQuery struct {
	FilterConfig
	Lat     float64 `form:"lat"`
	Lng     float64 `form:"lng"`
	Radius  float64 `form:"radius"` // Meters
	Stars   float64 `form:"stars"`  // Heatmap cell to select (optional)
	Price   int     `form:"price"`
	Compact bool    `form:"compact"` // Omit the subset lists
}

// CenterRequest is the body of PUT /session/center
type CenterRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// RadiusRequest is the body of PUT /session/radius. Exactly one field is used;
// Slider wins when both are set.
type RadiusRequest struct {
	Slider *float64 `json:"slider"` // 0-100
	Meters *float64 `json:"meters"`
}

// SelectionRequest identifies a heatmap cell
type SelectionRequest struct {
	Stars float64 `json:"stars" form:"stars" binding:"required"`
	Price int     `json:"price" form:"price" binding:"required"`
}

// SessionRequest is the body of POST /session
type SessionRequest struct {
	Viewport *Viewport    `json:"viewport"`
	Center   *LatLng      `json:"center"`
	Filters  FilterConfig `json:"filters"`
}
