package spatial

import (
	"math"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Bounds is a latitude/longitude rectangle
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Center returns the midpoint of the rectangle
func (b Bounds) Center() Point {
	return Point{Lat: (b.North + b.South) / 2, Lon: (b.East + b.West) / 2}
}

// Contains reports whether p lies inside the rectangle (edges included)
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.South && p.Lat <= b.North && p.Lon >= b.West && p.Lon <= b.East
}

// BoundingBox calculates the bounding box of a set of points
func BoundingBox(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{
		North: points[0].Lat, South: points[0].Lat,
		East: points[0].Lon, West: points[0].Lon,
	}
	for _, p := range points[1:] {
		b.South = math.Min(b.South, p.Lat)
		b.North = math.Max(b.North, p.Lat)
		b.West = math.Min(b.West, p.Lon)
		b.East = math.Max(b.East, p.Lon)
	}

	return b
}
