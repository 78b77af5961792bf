package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jengzang/yelp-map-backend-go/internal/charts"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/spatial"
	"github.com/jengzang/yelp-map-backend-go/internal/state"
)

func price(p int) *int { return &p }

func scene(t *testing.T, selectKey *models.CellKey) Scene {
	t.Helper()
	store := dataset.NewStore([]models.Business{
		{Name: "Taqueria", Latitude: 34.42, Longitude: -119.70, Stars: 5, ReviewCount: 120, PriceRange: price(1)},
		{Name: "Far <Grill>", Latitude: 34.4367, Longitude: -119.6320, Stars: 3, ReviewCount: 2000, PriceRange: price(2)},
		{Name: "Sushi", Latitude: 34.419, Longitude: -119.697, Stars: 3, ReviewCount: 0, PriceRange: price(2)},
	})
	center := models.LatLng{Lat: 34.4208, Lng: -119.6982}
	vp := spatial.ViewportAt(spatial.Point{Lat: center.Lat, Lon: center.Lng}, 12, 1024, 768)
	s := state.New(center, vp, 100, 4000, models.FilterConfig{})
	d := state.Refresh(store, s)
	if selectKey != nil {
		var err error
		if s, err = s.WithSelection(d, *selectKey); err != nil {
			t.Fatalf("WithSelection: %v", err)
		}
	}
	return Scene{Store: store, State: s, Derived: d}
}

func TestMapRenderer(t *testing.T) {
	r := NewMapRenderer()
	r.Draw(scene(t, nil))

	layer, ok := r.Layer()
	if !ok {
		t.Fatal("expected a drawn layer")
	}
	if len(layer.Markers) != 3 {
		t.Fatalf("expected a marker per filtered business, got %d", len(layer.Markers))
	}

	near, far := layer.Markers[0], layer.Markers[1]
	if !near.InRange || near.Color != charts.StarColor(5).Hex() || near.Opacity != inRangeOpacity {
		t.Errorf("in-range marker = %+v", near)
	}
	if far.InRange || far.Color != charts.Neutral.Hex() || far.Opacity != outOfRangeOpacity {
		t.Errorf("out-of-range marker = %+v", far)
	}
	if far.Radius != markerMaxRadius {
		t.Errorf("marker radius for 2000 reviews = %v, want capped %v", far.Radius, markerMaxRadius)
	}
	if !strings.Contains(far.Popup, "Far &lt;Grill&gt;") {
		t.Errorf("popup not escaped: %q", far.Popup)
	}
	if layer.Circle.RadiusMeters != 4000 || layer.CenterMarker != layer.Circle.Center {
		t.Errorf("circle = %+v, center marker = %+v", layer.Circle, layer.CenterMarker)
	}
}

func TestMapRendererSelection(t *testing.T) {
	r := NewMapRenderer()
	r.Draw(scene(t, &models.CellKey{Stars: 3, Price: 2}))

	layer, _ := r.Layer()
	taqueria, sushi := layer.Markers[0], layer.Markers[2]
	if taqueria.Selected || taqueria.Color != charts.Desaturate(charts.StarColor(5)).Hex() {
		t.Errorf("unselected in-range marker should be desaturated: %+v", taqueria)
	}
	if !sushi.Selected || sushi.Color != charts.StarColor(3).Hex() {
		t.Errorf("selected marker should keep its colour: %+v", sushi)
	}
}

func TestMarkerRadius(t *testing.T) {
	tests := []struct {
		reviews int
		want    float64
	}{
		{0, 4}, {100, 5}, {450, 8.5}, {800, 12}, {5000, 12},
	}
	for _, tt := range tests {
		if got := MarkerRadius(tt.reviews); got != tt.want {
			t.Errorf("MarkerRadius(%d) = %v, want %v", tt.reviews, got, tt.want)
		}
	}
}

func TestChartRenderers(t *testing.T) {
	sc := scene(t, &models.CellKey{Stars: 3, Price: 2})

	hist := NewHistogramRenderer()
	hist.Draw(sc)
	h, _ := hist.Chart()
	if !h.Selection || h.Total != 1 {
		t.Errorf("histogram should be drawn from the one-member selection: %+v", h)
	}

	heat := NewHeatmapRenderer()
	heat.Draw(sc)
	hm, _ := heat.Chart()
	if hm.Active == nil || *hm.Active != (models.CellKey{Stars: 3, Price: 2}) {
		t.Errorf("heatmap active cell = %v", hm.Active)
	}
	if hm.Total != 2 {
		t.Errorf("heatmap total = %d, want the 2 in-range businesses", hm.Total)
	}

	var buf bytes.Buffer
	if err := heat.RenderHTML(&buf); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty heatmap page")
	}
}

func TestRendererLifecycle(t *testing.T) {
	sc := scene(t, nil)
	renderers := []interface {
		Renderer
		Stats() Stats
	}{NewMapRenderer(), NewHistogramRenderer(), NewHeatmapRenderer()}

	for _, r := range renderers {
		for i := 0; i < 3; i++ {
			r.Draw(sc)
		}
		if got := r.Stats(); got != (Stats{Drawn: 3, Disposed: 2}) {
			t.Errorf("%s after 3 draws: %+v", r.Name(), got)
		}
		r.Dispose()
		r.Dispose()
		if got := r.Stats(); got != (Stats{Drawn: 3, Disposed: 3}) {
			t.Errorf("%s after dispose: %+v", r.Name(), got)
		}
	}
}
