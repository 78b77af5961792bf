package charts

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// RenderHistogram writes the review-count histogram as a standalone HTML page
func RenderHistogram(w io.Writer, h models.HistogramResponse) error {
	labels := make([]string, len(h.Bins))
	items := make([]opts.BarData, len(h.Bins))
	for i, b := range h.Bins {
		labels[i] = b.Label
		items[i] = opts.BarData{Name: b.Label, Value: b.Count}
	}

	subtitle := fmt.Sprintf("%d businesses in range", h.Total)
	if h.Selection {
		subtitle = fmt.Sprintf("%d businesses selected", h.Total)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Review counts",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Review count distribution", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Businesses", items)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render histogram: %w", err)
	}
	return nil
}

// RenderHeatmap writes the stars x price heatmap as a standalone HTML page
func RenderHeatmap(w io.Writer, h models.HeatmapResponse) error {
	xLabels := make([]string, len(h.StarBuckets))
	xPos := make(map[float64]int, len(h.StarBuckets))
	for i, s := range h.StarBuckets {
		xLabels[i] = strconv.FormatFloat(s, 'f', 1, 64)
		xPos[s] = i
	}
	yLabels := make([]string, len(h.PriceLevels))
	yPos := make(map[int]int, len(h.PriceLevels))
	for i, p := range h.PriceLevels {
		yLabels[i] = fmt.Sprintf("%d$", p)
		yPos[p] = i
	}

	items := make([]opts.HeatMapData, 0, len(h.Cells))
	for _, c := range h.Cells {
		x, okX := xPos[c.Stars]
		y, okY := yPos[c.Price]
		if !okX || !okY {
			continue
		}
		items = append(items, opts.HeatMapData{
			Name:  fmt.Sprintf("%s stars, %s", xLabels[x], yLabels[y]),
			Value: [3]interface{}{x, y, c.Count},
		})
	}

	subtitle := fmt.Sprintf("%d priced businesses in range", h.Total)
	if h.Active != nil {
		subtitle += fmt.Sprintf(" (hovering %.1f stars, %d$)", h.Active.Stars, h.Active.Price)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Stars by price",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Star rating by price level", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels, Name: "Stars"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels, Name: "Price"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(max(h.MaxCount, 1)),
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("Businesses", items)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("failed to render heatmap: %w", err)
	}
	return nil
}
