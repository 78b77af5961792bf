package spatial

import (
	"math"
)

// Radius control bounds
const (
	DefaultMinRadius = 100.0 // Meters
	SliderMin        = 0.0
	SliderMax        = 100.0

	// maxRadiusShare is the share of the farthest viewport edge used as max radius
	maxRadiusShare = 0.6
)

// SliderToRadius maps a linear control position v in [0,100] onto a radius in
// [minRadius, maxRadius] on a log scale, rounded to the nearest meter.
func SliderToRadius(v, minRadius, maxRadius float64) float64 {
	v = clamp(v, SliderMin, SliderMax)
	if maxRadius <= minRadius {
		return math.Round(minRadius)
	}
	return math.Round(minRadius * math.Pow(maxRadius/minRadius, v/SliderMax))
}

// RadiusToSlider is the inverse of SliderToRadius
func RadiusToSlider(r, minRadius, maxRadius float64) int {
	if maxRadius <= minRadius {
		return int(SliderMin)
	}
	r = clamp(r, minRadius, maxRadius)
	return int(math.Round(SliderMax * math.Log(r/minRadius) / math.Log(maxRadius/minRadius)))
}

// ClampRadius keeps r inside [minRadius, maxRadius]
func ClampRadius(r, minRadius, maxRadius float64) float64 {
	if maxRadius < minRadius {
		maxRadius = minRadius
	}
	return clamp(r, minRadius, maxRadius)
}

// MaxRadiusForViewport derives the radius upper bound from the visible map area:
// 60% of the distance from the center to the farthest edge midpoint.
// The result is never below minRadius.
func MaxRadiusForViewport(center Point, b Bounds, minRadius float64) float64 {
	edges := []Point{
		{Lat: b.North, Lon: center.Lon},
		{Lat: b.South, Lon: center.Lon},
		{Lat: center.Lat, Lon: b.East},
		{Lat: center.Lat, Lon: b.West},
	}

	var farthest float64
	for _, e := range edges {
		farthest = math.Max(farthest, Distance(center, e))
	}

	return math.Max(math.Round(farthest*maxRadiusShare), minRadius)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
