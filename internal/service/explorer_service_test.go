package service

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jengzang/yelp-map-backend-go/internal/config"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/state"
)

type staticSource []models.Business

func (s staticSource) LoadBusinesses(ctx context.Context) ([]models.Business, error) {
	return s, nil
}

func newService(t *testing.T) *ExplorerService {
	t.Helper()
	loader := dataset.NewLoader(staticSource{
		{Name: "Taqueria", Latitude: 34.42, Longitude: -119.70, Stars: 4, ReviewCount: 120},
		{Name: "Far", Latitude: 34.0522, Longitude: -118.2437, Stars: 3, ReviewCount: 900},
	})
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := &config.Config{
		DefaultLat: 34.4208, DefaultLon: -119.6982, DefaultZoom: 12,
		ViewportWidth: 1024, ViewportHeight: 768, MinRadius: 100, DefaultRadius: 2000,
	}
	return NewExplorerService(cfg, loader, nil, nil)
}

func TestSplitCategories(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Mexican, Restaurants", []string{"Mexican", "Restaurants"}},
		{"Sushi Bars;Japanese", []string{"Sushi Bars", "Japanese"}},
		{" , ;", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		if got := splitCategories(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCategories(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestInitialState(t *testing.T) {
	svc := newService(t)

	st, err := svc.initialState(nil, nil, 2000, models.FilterConfig{MinStars: -1})
	if err != nil {
		t.Fatalf("initialState: %v", err)
	}
	if st.Query.Center != (models.LatLng{Lat: 34.4208, Lng: -119.6982}) {
		t.Errorf("center = %+v, want the configured default", st.Query.Center)
	}
	if st.Filters.MinStars != 0 {
		t.Errorf("MinStars = %v, want 0", st.Filters.MinStars)
	}

	vp := &models.Viewport{North: 34.5, South: 34.3, East: -119.6, West: -119.8}
	st, err = svc.initialState(vp, nil, 2000, models.FilterConfig{})
	if err != nil {
		t.Fatalf("initialState with viewport: %v", err)
	}
	if st.Query.Center != vp.Center() {
		t.Errorf("center = %+v, want viewport center %+v", st.Query.Center, vp.Center())
	}

	if _, err := svc.initialState(nil, &models.LatLng{Lat: -100, Lng: 0}, 2000, models.FilterConfig{}); !errors.Is(err, state.ErrInvalidCenter) {
		t.Errorf("invalid center err = %v", err)
	}
	bad := &models.Viewport{North: 34.3, South: 34.5, East: -119.6, West: -119.8}
	if _, err := svc.initialState(bad, nil, 2000, models.FilterConfig{}); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("inverted viewport err = %v", err)
	}
}

func TestRenderCharts(t *testing.T) {
	svc := newService(t)

	var hist, heat bytes.Buffer
	frame, err := svc.RenderCharts(models.SearchQuery{}, &hist, &heat)
	if err != nil {
		t.Fatalf("RenderCharts: %v", err)
	}
	if frame.Counts.InRange != 1 {
		t.Errorf("in-range = %d, want 1", frame.Counts.InRange)
	}
	if hist.Len() == 0 || heat.Len() == 0 {
		t.Error("expected both chart pages")
	}
}

func TestSummaryIsCached(t *testing.T) {
	svc := newService(t)
	first, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	second, _ := svc.Summary()
	if !reflect.DeepEqual(first, second) || first.BusinessCount != 2 || first.TotalReviews != 1020 {
		t.Errorf("summary = %+v", first)
	}
	if len(first.Hotspots) != 2 {
		t.Fatalf("hotspots = %+v, want one per city", first.Hotspots)
	}
	for _, h := range first.Hotspots {
		if h.Count != 1 || h.Bounds.North <= h.Bounds.South {
			t.Errorf("hotspot = %+v", h)
		}
	}
}

func TestSummaryStates(t *testing.T) {
	tests := []struct {
		name       string
		businesses []models.Business
		want       []models.StateSummary
	}{
		{
			name: "averages round to three decimals",
			businesses: []models.Business{
				{Name: "A", State: "CA", Stars: 4, ReviewCount: 10},
				{Name: "B", State: "CA", Stars: 4.5, ReviewCount: 20},
				{Name: "C", State: "CA", Stars: 4.5, ReviewCount: 30},
				{Name: "D", State: "NV", Stars: 3, ReviewCount: 5},
			},
			want: []models.StateSummary{
				{State: "CA", BusinessCount: 3, AverageStars: 4.333, TotalReviews: 60},
				{State: "NV", BusinessCount: 1, AverageStars: 3, TotalReviews: 5},
			},
		},
		{
			name: "ties order by state and blank states are left out",
			businesses: []models.Business{
				{Name: "A", State: "PA", Stars: 2, ReviewCount: 1},
				{Name: "B", State: "AZ", Stars: 5, ReviewCount: 2},
				{Name: "C", State: " ", Stars: 1, ReviewCount: 3},
				{Name: "D", Stars: 1, ReviewCount: 4},
			},
			want: []models.StateSummary{
				{State: "AZ", BusinessCount: 1, AverageStars: 5, TotalReviews: 2},
				{State: "PA", BusinessCount: 1, AverageStars: 2, TotalReviews: 1},
			},
		},
		{
			name:       "no states",
			businesses: []models.Business{{Name: "A", Stars: 3}},
			want:       []models.StateSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := dataset.NewLoader(staticSource(tt.businesses))
			if err := loader.Load(context.Background()); err != nil {
				t.Fatalf("Load: %v", err)
			}
			svc := NewExplorerService(&config.Config{}, loader, nil, nil)
			summary, err := svc.Summary()
			if err != nil {
				t.Fatalf("Summary: %v", err)
			}
			if !reflect.DeepEqual(summary.States, tt.want) {
				t.Errorf("States = %+v, want %+v", summary.States, tt.want)
			}
		})
	}
}
