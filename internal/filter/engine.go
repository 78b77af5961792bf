package filter

import (
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Dataset is the read side of the business store
type Dataset interface {
	Len() int
	At(i int) *models.Business
}

// Apply returns the dataset indexes of every located business that passes
// all filters enabled in cfg, in dataset order.
func Apply(ds Dataset, cfg models.FilterConfig) []int {
	return Default.Apply(ds, cfg)
}

// Apply is the registry form of Apply
func (r Registry) Apply(ds Dataset, cfg models.FilterConfig) []int {
	active := r.Active(cfg)

	filtered := make([]int, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		b := ds.At(i)
		if Passes(b, cfg, active) {
			filtered = append(filtered, i)
		}
	}
	return filtered
}

// Passes evaluates the coordinate check and then every active predicate
func Passes(b *models.Business, cfg models.FilterConfig, active []Predicate) bool {
	if !b.HasCoordinates() {
		return false
	}
	for _, p := range active {
		if !p(b, cfg) {
			return false
		}
	}
	return true
}
