package models

// Marker is a map marker for one business of the filtered subset
type Marker struct {
	Index       int     `json:"index"` // Position in the dataset
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Stars       float64 `json:"stars"`
	ReviewCount int     `json:"review_count"`
	Radius      float64 `json:"radius"` // Pixels
	Color       string  `json:"color"`  // #rrggbb
	Opacity     float64 `json:"opacity"`
	InRange     bool    `json:"in_range"`
	Selected    bool    `json:"selected"`
	Popup       string  `json:"popup"`
}

// Circle is the radius overlay around the query center
type Circle struct {
	Center       LatLng  `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
}

// MapLayer is everything the map draws in one refresh
type MapLayer struct {
	Markers      []Marker `json:"markers"`
	CenterMarker LatLng   `json:"center_marker"`
	Circle       Circle   `json:"circle"`
	Slider       int      `json:"slider"` // Radius control position 0-100
}

// HistogramBin is one review-count bin
type HistogramBin struct {
	Label string `json:"label"` // "0-100", ..., "700+"
	Lower int    `json:"lower"`
	Upper int    `json:"upper,omitempty"` // Exclusive, 0 for the open last bin
	Count int    `json:"count"`
}

// HistogramResponse represents the review-count histogram view
type HistogramResponse struct {
	Bins      []HistogramBin `json:"bins"`
	Total     int            `json:"total"`
	Selection bool           `json:"selection"` // Drawn from the selection instead of the in-range subset
}

// SubsetSummary aggregates the active subset
type SubsetSummary struct {
	Count             int     `json:"count"`
	AverageStars      float64 `json:"average_stars"`
	MedianReviewCount float64 `json:"median_review_count"`
	TotalReviews      int     `json:"total_reviews"`
}

// Frame is the complete derived state of one refresh
type Frame struct {
	Version   uint64            `json:"version"`
	Filters   FilterConfig      `json:"filters"`
	Query     GeoQuery          `json:"query"`
	Filtered  []int             `json:"filtered,omitempty"`
	InRange   []int             `json:"in_range,omitempty"`
	Selection []int             `json:"selection,omitempty"`
	Counts    SubsetCounts      `json:"counts"`
	Map       MapLayer          `json:"map"`
	Histogram HistogramResponse `json:"histogram"`
	Heatmap   HeatmapResponse   `json:"heatmap"`
	Summary   SubsetSummary     `json:"summary"`
}

// SubsetCounts are the sizes of the derived subsets
type SubsetCounts struct {
	Dataset   int `json:"dataset"`
	Filtered  int `json:"filtered"`
	InRange   int `json:"in_range"`
	Selection int `json:"selection"`
}

// CategoryCount is a category with its business count
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DatasetSummary aggregates the whole dataset
type DatasetSummary struct {
	BusinessCount int             `json:"business_count"`
	Located       int             `json:"located"` // With usable coordinates
	AverageStars  float64         `json:"average_stars"`
	TotalReviews  int             `json:"total_reviews"`
	Extent        *Viewport       `json:"extent,omitempty"` // Bounding box of located businesses
	TopCategories []CategoryCount `json:"top_categories"`
	Hotspots      []Hotspot       `json:"hotspots"` // Densest geohash cells
	States        []StateSummary  `json:"states"`   // Largest first
}

// StateSummary aggregates the businesses of one state
type StateSummary struct {
	State         string  `json:"state"`
	BusinessCount int     `json:"business_count"`
	AverageStars  float64 `json:"average_stars"` // Rounded to 3 decimals
	TotalReviews  int     `json:"total_reviews"`
}

// Hotspot is a geohash cell with its business count
type Hotspot struct {
	Geohash      string   `json:"geohash"`
	Bounds       Viewport `json:"bounds"`
	Count        int      `json:"count"`
	AverageStars float64  `json:"average_stars"`
}
