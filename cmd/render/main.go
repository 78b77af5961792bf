package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jengzang/yelp-map-backend-go/internal/config"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/repository"
	"github.com/jengzang/yelp-map-backend-go/internal/service"
)

// render writes histogram.html and heatmap.html for one query without a server
func main() {
	cfg := config.Load()

	var q models.SearchQuery
	datasetPath := flag.String("dataset", cfg.DatasetPath, "business dataset (.json or .db)")
	outDir := flag.String("out", ".", "output directory")
	flag.Float64Var(&q.Lat, "lat", cfg.DefaultLat, "center latitude")
	flag.Float64Var(&q.Lng, "lng", cfg.DefaultLon, "center longitude")
	flag.Float64Var(&q.Radius, "radius", cfg.DefaultRadius, "radius in meters")
	flag.Float64Var(&q.MinStars, "min-stars", 0, "minimum star rating, 0 disables")
	flag.BoolVar(&q.IsOpenOnly, "open", false, "open businesses only")
	flag.BoolVar(&q.WifiOnly, "wifi", false, "businesses with wifi only")
	flag.BoolVar(&q.ParkingOnly, "parking", false, "businesses with parking only")
	flag.BoolVar(&q.DriveThroughOnly, "drive-through", false, "businesses with a drive-through only")
	flag.BoolVar(&q.DogsAllowedOnly, "dogs", false, "dog friendly businesses only")
	flag.BoolVar(&q.AmbienceOnly, "ambience", false, "businesses with any ambience only")
	flag.BoolVar(&q.MusicOnly, "music", false, "businesses with music only")
	flag.Float64Var(&q.Stars, "select-stars", 0, "heatmap cell star bucket to select")
	flag.IntVar(&q.Price, "select-price", 0, "heatmap cell price level to select")
	flag.Parse()

	loader := dataset.NewLoader(repository.NewBusinessSource(*datasetPath))
	if err := loader.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	svc := service.NewExplorerService(cfg, loader, nil, nil)

	histPath := filepath.Join(*outDir, "histogram.html")
	heatPath := filepath.Join(*outDir, "heatmap.html")
	hist, err := os.Create(histPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer hist.Close()
	heat, err := os.Create(heatPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer heat.Close()

	frame, err := svc.RenderCharts(q, hist, heat)
	if err != nil {
		log.Fatalf("Failed to render charts: %v", err)
	}

	fmt.Printf("%d businesses match the filters, %d within %.0fm, %d selected\n",
		frame.Counts.Filtered, frame.Counts.InRange, frame.Query.RadiusMeters, frame.Counts.Selection)
	fmt.Printf("Charts generated: %s, %s\n", histPath, heatPath)
}
