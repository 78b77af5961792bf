package view

import (
	"fmt"
	"html"
	"math"

	"github.com/jengzang/yelp-map-backend-go/internal/charts"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Marker sizing and opacity
const (
	markerBaseRadius  = 4.0
	markerMaxRadius   = 12.0
	reviewsPerPixel   = 100.0
	inRangeOpacity    = 0.9
	outOfRangeOpacity = 0.35
)

// MapRenderer draws one marker per filtered business, the center marker and
// the radius circle
type MapRenderer struct {
	layer artifact[models.MapLayer]
}

// NewMapRenderer creates a map renderer
func NewMapRenderer() *MapRenderer {
	return &MapRenderer{}
}

// Name implements Renderer
func (r *MapRenderer) Name() string { return "map" }

// Draw implements Renderer
func (r *MapRenderer) Draw(sc Scene) {
	inRange := toSet(sc.Derived.InRange)
	var selected map[int]struct{}
	if sc.State.Selection != nil {
		selected = toSet(sc.State.Selection.Members)
	}

	markers := make([]models.Marker, 0, len(sc.Derived.Filtered))
	for _, i := range sc.Derived.Filtered {
		b := sc.Store.At(i)
		_, in := inRange[i]
		_, sel := selected[i]

		color := charts.Neutral
		opacity := outOfRangeOpacity
		if in {
			color = charts.StarColor(b.Stars)
			opacity = inRangeOpacity
			if selected != nil && !sel {
				color = charts.Desaturate(color)
			}
		}

		markers = append(markers, models.Marker{
			Index:       i,
			Name:        b.Name,
			Lat:         b.Latitude,
			Lng:         b.Longitude,
			Stars:       b.Stars,
			ReviewCount: b.ReviewCount,
			Radius:      MarkerRadius(b.ReviewCount),
			Color:       color.Hex(),
			Opacity:     opacity,
			InRange:     in,
			Selected:    sel,
			Popup:       fmt.Sprintf("<b>%s</b><br>Rating: %g", html.EscapeString(b.Name), b.Stars),
		})
	}

	q := sc.State.Query
	r.layer.replace(models.MapLayer{
		Markers:      markers,
		CenterMarker: q.Center,
		Circle:       models.Circle{Center: q.Center, RadiusMeters: q.RadiusMeters},
		Slider:       sc.State.Slider(),
	})
}

// Dispose implements Renderer
func (r *MapRenderer) Dispose() { r.layer.dispose() }

// Layer returns the last drawn map layer
func (r *MapRenderer) Layer() (models.MapLayer, bool) {
	if r.layer.current == nil {
		return models.MapLayer{}, false
	}
	return *r.layer.current, true
}

// Stats reports the artifact lifecycle counters
func (r *MapRenderer) Stats() Stats { return r.layer.stats() }

// MarkerRadius scales the marker with the review count, capped
func MarkerRadius(reviewCount int) float64 {
	return math.Min(markerBaseRadius+float64(reviewCount)/reviewsPerPixel, markerMaxRadius)
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, i := range ids {
		set[i] = struct{}{}
	}
	return set
}
