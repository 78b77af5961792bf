package spatial

import (
	"math"
)

const tileSize = 256.0

// ViewportAt returns the bounds a Web Mercator map of widthPx x heightPx pixels
// shows when centered on center at the given zoom level.
func ViewportAt(center Point, zoom, widthPx, heightPx int) Bounds {
	worldSize := tileSize * math.Pow(2, float64(zoom))
	cx, cy := project(center, worldSize)

	halfW := float64(widthPx) / 2
	halfH := float64(heightPx) / 2

	nw := unproject(cx-halfW, cy-halfH, worldSize)
	se := unproject(cx+halfW, cy+halfH, worldSize)

	return Bounds{North: nw.Lat, South: se.Lat, East: se.Lon, West: nw.Lon}
}

// project converts a coordinate to global pixel coordinates
func project(p Point, worldSize float64) (float64, float64) {
	lat := math.Max(math.Min(p.Lat, 85.05112878), -85.05112878)
	sinLat := math.Sin(lat * math.Pi / 180)

	x := (p.Lon + 180) / 360 * worldSize
	y := (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)) * worldSize
	return x, y
}

// unproject converts global pixel coordinates back to a coordinate
func unproject(x, y, worldSize float64) Point {
	lon := x/worldSize*360 - 180
	n := math.Pi - 2*math.Pi*y/worldSize
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return Point{Lat: lat, Lon: lon}
}
