// Package charts computes the chart data shared by the views: review-count
// bins, the stars x price cross-tabulation and the marker colour scale.
package charts

import (
	"fmt"

	"github.com/jengzang/yelp-map-backend-go/internal/filter"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Histogram layout: fixed-width bins up to the cutoff, then one open bin
const (
	BinWidth = 100
	Cutoff   = 700
	NumBins  = Cutoff/BinWidth + 1
)

// BinIndex returns the bin of a review count; counts at or above the cutoff
// land in the last bin.
func BinIndex(reviewCount int) int {
	if reviewCount < 0 {
		reviewCount = 0
	}
	if reviewCount >= Cutoff {
		return NumBins - 1
	}
	return reviewCount / BinWidth
}

// Histogram buckets the review counts of subset
func Histogram(ds filter.Dataset, subset []int) models.HistogramResponse {
	bins := make([]models.HistogramBin, NumBins)
	for i := range bins {
		lower := i * BinWidth
		if i == NumBins-1 {
			bins[i] = models.HistogramBin{Label: fmt.Sprintf("%d+", Cutoff), Lower: Cutoff}
			continue
		}
		bins[i] = models.HistogramBin{
			Label: fmt.Sprintf("%d-%d", lower, lower+BinWidth),
			Lower: lower,
			Upper: lower + BinWidth,
		}
	}

	for _, i := range subset {
		bins[BinIndex(ds.At(i).ReviewCount)].Count++
	}

	return models.HistogramResponse{Bins: bins, Total: len(subset)}
}
