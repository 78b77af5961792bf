package view

import (
	"io"

	"github.com/jengzang/yelp-map-backend-go/internal/charts"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// HistogramRenderer bins the review counts of the active subset
type HistogramRenderer struct {
	chart artifact[models.HistogramResponse]
}

// NewHistogramRenderer creates a histogram renderer
func NewHistogramRenderer() *HistogramRenderer {
	return &HistogramRenderer{}
}

// Name implements Renderer
func (r *HistogramRenderer) Name() string { return "histogram" }

// Draw implements Renderer
func (r *HistogramRenderer) Draw(sc Scene) {
	h := charts.Histogram(sc.Store, sc.Derived.Active(sc.State))
	h.Selection = sc.State.Selection != nil
	r.chart.replace(h)
}

// Dispose implements Renderer
func (r *HistogramRenderer) Dispose() { r.chart.dispose() }

// Chart returns the last drawn histogram
func (r *HistogramRenderer) Chart() (models.HistogramResponse, bool) {
	if r.chart.current == nil {
		return models.HistogramResponse{}, false
	}
	return *r.chart.current, true
}

// RenderHTML writes the last drawn histogram as an HTML page
func (r *HistogramRenderer) RenderHTML(w io.Writer) error {
	h, _ := r.Chart()
	return charts.RenderHistogram(w, h)
}

// Stats reports the artifact lifecycle counters
func (r *HistogramRenderer) Stats() Stats { return r.chart.stats() }

// HeatmapRenderer draws the stars x price grid of the in-range subset
type HeatmapRenderer struct {
	chart artifact[models.HeatmapResponse]
}

// NewHeatmapRenderer creates a heatmap renderer
func NewHeatmapRenderer() *HeatmapRenderer {
	return &HeatmapRenderer{}
}

// Name implements Renderer
func (r *HeatmapRenderer) Name() string { return "heatmap" }

// Draw implements Renderer
func (r *HeatmapRenderer) Draw(sc Scene) {
	h := sc.Derived.Heatmap
	if sc.State.Selection != nil {
		cell := sc.State.Selection.Cell
		h.Active = &cell
	}
	r.chart.replace(h)
}

// Dispose implements Renderer
func (r *HeatmapRenderer) Dispose() { r.chart.dispose() }

// Chart returns the last drawn heatmap
func (r *HeatmapRenderer) Chart() (models.HeatmapResponse, bool) {
	if r.chart.current == nil {
		return models.HeatmapResponse{}, false
	}
	return *r.chart.current, true
}

// RenderHTML writes the last drawn heatmap as an HTML page
func (r *HeatmapRenderer) RenderHTML(w io.Writer) error {
	h, _ := r.Chart()
	return charts.RenderHeatmap(w, h)
}

// Stats reports the artifact lifecycle counters
func (r *HeatmapRenderer) Stats() Stats { return r.chart.stats() }
