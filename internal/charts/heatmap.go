package charts

import (
	"math"
	"sort"

	"github.com/jengzang/yelp-map-backend-go/internal/filter"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Fixed heatmap axes
var (
	StarBuckets = []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5}
	PriceLevels = []int{1, 2, 3, 4}
)

// StarBucket rounds a rating down to the half-star grid
func StarBucket(stars float64) float64 {
	return math.Floor(stars*2) / 2
}

// Heatmap cross-tabulates subset by star bucket and price level. Businesses
// without a price range are left out of this chart only.
func Heatmap(ds filter.Dataset, subset []int) models.HeatmapResponse {
	cells := make(map[models.CellKey]*models.HeatmapCell)
	extraStars := make(map[float64]bool)

	total := 0
	for _, i := range subset {
		b := ds.At(i)
		if b.PriceRange == nil {
			continue
		}
		key := models.CellKey{Stars: StarBucket(b.Stars), Price: *b.PriceRange}
		cell, ok := cells[key]
		if !ok {
			cell = &models.HeatmapCell{Stars: key.Stars, Price: key.Price}
			cells[key] = cell
		}
		cell.Count++
		cell.Members = append(cell.Members, i)
		total++

		if key.Stars < StarBuckets[0] || key.Stars > StarBuckets[len(StarBuckets)-1] {
			extraStars[key.Stars] = true
		}
	}

	resp := models.HeatmapResponse{
		StarBuckets: append([]float64(nil), StarBuckets...),
		PriceLevels: append([]int(nil), PriceLevels...),
		Cells:       make([]models.HeatmapCell, 0, len(cells)),
		Total:       total,
	}
	for s := range extraStars {
		resp.StarBuckets = append(resp.StarBuckets, s)
	}
	sort.Float64s(resp.StarBuckets)

	for _, c := range cells {
		resp.Cells = append(resp.Cells, *c)
		if c.Count > resp.MaxCount {
			resp.MaxCount = c.Count
		}
	}
	sort.Slice(resp.Cells, func(i, j int) bool {
		if resp.Cells[i].Stars != resp.Cells[j].Stars {
			return resp.Cells[i].Stars < resp.Cells[j].Stars
		}
		return resp.Cells[i].Price < resp.Cells[j].Price
	})

	return resp
}

// Cell returns the heatmap cell for key, if it has members
func Cell(h models.HeatmapResponse, key models.CellKey) (models.HeatmapCell, bool) {
	key.Stars = StarBucket(key.Stars)
	for _, c := range h.Cells {
		if c.Stars == key.Stars && c.Price == key.Price {
			return c, true
		}
	}
	return models.HeatmapCell{}, false
}
