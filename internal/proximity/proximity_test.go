package proximity

import (
	"math"
	"reflect"
	"testing"

	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/spatial"
)

var center = models.LatLng{Lat: 34.4208, Lng: -119.6982}

func store() *dataset.Store {
	return dataset.NewStore([]models.Business{
		{Name: "near", Latitude: 34.42, Longitude: -119.70},
		{Name: "goleta", Latitude: 34.4358, Longitude: -119.8276},
		{Name: "unlocated", Latitude: 0, Longitude: 0},
		{Name: "montecito", Latitude: 34.4367, Longitude: -119.6320},
		{Name: "la", Latitude: 34.0522, Longitude: -118.2437},
	})
}

func TestInRange(t *testing.T) {
	s := store()
	tests := []struct {
		name   string
		subset []int
		radius float64
		want   []int
	}{
		{"small radius", s.All(), 4000, []int{0}},
		{"city radius", s.All(), 15000, []int{0, 1, 3}},
		{"subset restricts", []int{1, 4}, 15000, []int{1}},
		{"empty subset", []int{}, 15000, []int{}},
		{"everything", s.All(), 500000, []int{0, 1, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InRange(s, tt.subset, center, tt.radius)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InRange = %v, want %v", got, tt.want)
			}
			indexed := InRangeIndexed(s, tt.subset, center, tt.radius)
			if !reflect.DeepEqual(indexed, got) {
				t.Errorf("InRangeIndexed = %v, linear scan = %v", indexed, got)
			}
		})
	}
}

func TestInRangeBoundaryInclusive(t *testing.T) {
	s := store()
	d := Distance(spatial.Point{Lat: center.Lat, Lon: center.Lng}, s.At(1))

	if got := InRange(s, []int{1}, center, d); len(got) != 1 {
		t.Errorf("business exactly at the radius should be in range, got %v", got)
	}
	if got := InRange(s, []int{1}, center, math.Nextafter(d, 0)); len(got) != 0 {
		t.Errorf("business just beyond the radius should be out of range, got %v", got)
	}
}

func TestInRangeKeepsSubsetOrder(t *testing.T) {
	s := store()
	got := InRangeIndexed(s, []int{3, 0, 1}, center, 15000)
	if want := []int{3, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("InRangeIndexed = %v, want %v", got, want)
	}
}
