package spatial

import (
	"math"
	"testing"
)

func TestSliderToRadius(t *testing.T) {
	tests := []struct {
		v, min, max float64
		want        float64
	}{
		{0, 100, 5000, 100},
		{100, 100, 5000, 5000},
		{50, 100, 10000, 1000},
		{25, 100, 10000, 316},
		{-10, 100, 10000, 100},
		{150, 100, 10000, 10000},
		{math.NaN(), 100, 10000, 100},
		// Degenerate range collapses to the minimum
		{80, 100, 100, 100},
		{80, 100, 50, 100},
	}
	for _, tt := range tests {
		got := SliderToRadius(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("SliderToRadius(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestSliderRadiusRoundTrip(t *testing.T) {
	const min, max = 100.0, 8000.0
	for v := 0; v <= 100; v++ {
		r := SliderToRadius(float64(v), min, max)
		if r < min || r > max {
			t.Fatalf("slider %d gave radius %v outside [%v, %v]", v, r, min, max)
		}
		if back := RadiusToSlider(r, min, max); back != v {
			t.Errorf("RadiusToSlider(SliderToRadius(%d)) = %d", v, back)
		}
	}
}

func TestSliderToRadiusMonotonic(t *testing.T) {
	prev := 0.0
	for v := 0; v <= 100; v++ {
		r := SliderToRadius(float64(v), 100, 20000)
		if r < prev {
			t.Fatalf("radius decreased at slider %d: %v < %v", v, r, prev)
		}
		prev = r
	}
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		r, min, max, want float64
	}{
		{50, 100, 1000, 100},
		{500, 100, 1000, 500},
		{5000, 100, 1000, 1000},
		{500, 100, 50, 100},
	}
	for _, tt := range tests {
		if got := ClampRadius(tt.r, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampRadius(%v, %v, %v) = %v, want %v", tt.r, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMaxRadiusForViewport(t *testing.T) {
	center := Point{Lat: 34, Lon: -119}
	b := Bounds{North: 34.01, South: 33.99, East: -118.99, West: -119.01}

	// North-south is the farthest edge at this latitude
	want := math.Round(Distance(center, Point{Lat: 34.01, Lon: -119}) * 0.6)
	if got := MaxRadiusForViewport(center, b, 100); got != want {
		t.Errorf("MaxRadiusForViewport = %v, want %v", got, want)
	}

	tiny := Bounds{North: 34.0001, South: 33.9999, East: -118.9999, West: -119.0001}
	if got := MaxRadiusForViewport(center, tiny, 100); got != 100 {
		t.Errorf("MaxRadiusForViewport on a tiny viewport = %v, want the 100m floor", got)
	}
}

func TestViewportAt(t *testing.T) {
	center := Point{Lat: 34.4208, Lon: -119.6982}
	b := ViewportAt(center, 12, 1024, 768)

	if !b.Contains(center) {
		t.Fatalf("viewport %+v does not contain its center", b)
	}
	if b.North <= b.South || b.East <= b.West {
		t.Fatalf("viewport edges out of order: %+v", b)
	}

	// 1024px at zoom 12 spans 1024/(256*2^12) of 360 degrees
	wantWidth := 1024.0 / (256 * 4096) * 360
	if w := b.East - b.West; math.Abs(w-wantWidth) > 1e-9 {
		t.Errorf("viewport width = %v degrees, want %v", w, wantWidth)
	}
	if d := (b.East - center.Lon) - (center.Lon - b.West); math.Abs(d) > 1e-9 {
		t.Errorf("viewport not centered horizontally: %v", d)
	}

	// Mercator stretches north of the center, so both halves are positive but unequal
	if b.North-center.Lat <= 0 || center.Lat-b.South <= 0 {
		t.Errorf("viewport not spanning the center latitude: %+v", b)
	}
}
