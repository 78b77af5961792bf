package models

// HeatmapCell represents one (star bucket, price level) cell of the heatmap
type HeatmapCell struct {
	Stars   float64 `json:"stars"` // floor(stars*2)/2
	Price   int     `json:"price"` // 1-4
	Count   int     `json:"count"`
	Members []int   `json:"members,omitempty"` // Dataset indexes, in-range order
}

// HeatmapResponse represents the heatmap view
type HeatmapResponse struct {
	StarBuckets []float64     `json:"star_buckets"`
	PriceLevels []int         `json:"price_levels"`
	Cells       []HeatmapCell `json:"cells"` // Only non-empty cells
	Total       int           `json:"total"`
	MaxCount    int           `json:"max_count"`
	Active      *CellKey      `json:"active,omitempty"` // Hovered cell
}

// CellKey identifies a heatmap cell
type CellKey struct {
	Stars float64 `json:"stars"`
	Price int     `json:"price"`
}
