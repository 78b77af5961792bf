package spatial

import (
	"testing"
)

func TestEncodeGeohash(t *testing.T) {
	tests := []struct {
		p         Point
		precision int
		want      string
	}{
		{Point{Lat: 51.5074, Lon: -0.1278}, 4, "gcpv"},
		{Point{Lat: 40.7128, Lon: -74.006}, 4, "dr5r"},
		{Point{Lat: 57.64911, Lon: 10.40744}, 11, "u4pruydqqvj"},
		{Point{Lat: 0, Lon: 0}, 0, "7"},
	}
	for _, tt := range tests {
		if got := EncodeGeohash(tt.p, tt.precision); got != tt.want {
			t.Errorf("EncodeGeohash(%+v, %d) = %q, want %q", tt.p, tt.precision, got, tt.want)
		}
	}
	if got := EncodeGeohash(Point{Lat: 34.42, Lon: -119.7}, 20); len(got) != 12 {
		t.Errorf("precision should cap at 12, got %q", got)
	}
}

func TestGeohashCellContainsPoint(t *testing.T) {
	points := []Point{
		{Lat: 34.4208, Lon: -119.6982},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 64.1466, Lon: -21.9426},
	}
	for _, p := range points {
		for _, precision := range []int{1, HotspotPrecision, 9} {
			cell := GeohashCell(EncodeGeohash(p, precision))
			if !cell.Contains(p) {
				t.Errorf("cell %+v of precision %d does not contain %+v", cell, precision, p)
			}
		}
	}

	if got := GeohashCell(""); got != (Bounds{North: 90, South: -90, East: 180, West: -180}) {
		t.Errorf("empty geohash cell = %+v, want the world", got)
	}
}
