// Package proximity narrows a filtered subset to the businesses within a
// radius of a center point, using great-circle distance.
package proximity

import (
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/filter"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/spatial"
)

// Candidates narrows the scan to a superset of the in-range businesses
type Candidates interface {
	Candidates(center models.LatLng, radiusMeters float64) (map[int]struct{}, bool)
}

// InRange returns the members of subset whose distance to center is at most
// radiusMeters, in subset order.
func InRange(ds filter.Dataset, subset []int, center models.LatLng, radiusMeters float64) []int {
	return inRange(ds, subset, center, radiusMeters, nil)
}

// InRangeIndexed is InRange with the dataset's quadtree as prefilter
func InRangeIndexed(store *dataset.Store, subset []int, center models.LatLng, radiusMeters float64) []int {
	return inRange(store, subset, center, radiusMeters, store.Index())
}

func inRange(ds filter.Dataset, subset []int, center models.LatLng, radiusMeters float64, idx Candidates) []int {
	var candidates map[int]struct{}
	if idx != nil {
		if c, ok := idx.Candidates(center, radiusMeters); ok {
			candidates = c
		}
	}

	origin := spatial.Point{Lat: center.Lat, Lon: center.Lng}
	out := make([]int, 0, len(subset))
	for _, i := range subset {
		if candidates != nil {
			if _, ok := candidates[i]; !ok {
				continue
			}
		}
		b := ds.At(i)
		if !b.HasCoordinates() {
			continue
		}
		if Distance(origin, b) <= radiusMeters {
			out = append(out, i)
		}
	}
	return out
}

// Distance returns the haversine distance in meters from origin to b
func Distance(origin spatial.Point, b *models.Business) float64 {
	return spatial.HaversineDistance(origin.Lat, origin.Lon, b.Latitude, b.Longitude)
}
