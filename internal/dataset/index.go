package dataset

import (
	"math"

	"github.com/asim/quadtree"

	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

const (
	metersPerDegree = 111320.0

	// Query boxes are padded so the exact haversine check downstream never
	// misses a business the box approximation cut off.
	boxPadding   = 1.25
	boxMinMeters = 50.0
	maxBoxLat    = 85.0
)

// Index is a quadtree over the located businesses of a dataset
type Index struct {
	tree     *quadtree.QuadTree
	size     int
	overflow []int // Located businesses the tree refused
}

// NewIndex builds the quadtree. Businesses without coordinates are skipped.
func NewIndex(businesses []models.Business) *Index {
	// Whole world: lat ±90, lon ±180
	center := quadtree.NewPoint(0, 0, nil)
	half := quadtree.NewPoint(90, 180, nil)
	tree := quadtree.New(quadtree.NewAABB(center, half), 0, nil)

	idx := &Index{tree: tree}
	for i := range businesses {
		b := &businesses[i]
		if !b.HasCoordinates() {
			continue
		}
		if tree.Insert(quadtree.NewPoint(b.Latitude, b.Longitude, i)) {
			idx.size++
		} else {
			idx.overflow = append(idx.overflow, i)
		}
	}
	return idx
}

// Len returns the number of indexed businesses
func (x *Index) Len() int {
	return x.size
}

// Candidates returns the dataset indexes inside a box that covers the circle
// around center. ok is false when the box would cross a pole or the
// antimeridian; callers then fall back to a full scan.
func (x *Index) Candidates(center models.LatLng, radiusMeters float64) (map[int]struct{}, bool) {
	if x == nil || x.tree == nil {
		return nil, false
	}

	pad := radiusMeters*boxPadding + boxMinMeters
	dLat := pad / metersPerDegree
	if math.Abs(center.Lat)+dLat >= maxBoxLat {
		return nil, false
	}
	dLon := pad / (metersPerDegree * math.Cos(center.Lat*math.Pi/180))
	if center.Lng-dLon <= -180 || center.Lng+dLon >= 180 {
		return nil, false
	}

	box := quadtree.NewAABB(
		quadtree.NewPoint(center.Lat, center.Lng, nil),
		quadtree.NewPoint(dLat, dLon, nil),
	)

	found := x.tree.Search(box)
	out := make(map[int]struct{}, len(found)+len(x.overflow))
	for _, p := range found {
		if i, ok := p.Data().(int); ok {
			out[i] = struct{}{}
		}
	}
	for _, i := range x.overflow {
		out[i] = struct{}{}
	}
	return out, true
}
