// Package session runs the refresh cycle of one map page.
//
// A Session owns the page's State and its three renderers. Every input is
// applied under the session lock and followed by exactly one refresh:
// recompute filters, recompute proximity, redraw all views. The lock makes
// the handler currently running the only writer.
package session

import (
	"io"
	"sync"
	"time"

	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/state"
	"github.com/jengzang/yelp-map-backend-go/internal/stats"
	"github.com/jengzang/yelp-map-backend-go/internal/view"
)

// Session is the server-side state of one map page
type Session struct {
	ID string

	mu       sync.Mutex
	store    *dataset.Store
	state    state.State
	derived  state.Derived
	version  uint64
	lastUsed time.Time

	mapView   *view.MapRenderer
	histogram *view.HistogramRenderer
	heatmap   *view.HeatmapRenderer
}

// New creates a session and performs the first refresh
func New(id string, store *dataset.Store, initial state.State) *Session {
	s := &Session{
		ID:        id,
		store:     store,
		state:     initial,
		version:   1,
		mapView:   view.NewMapRenderer(),
		histogram: view.NewHistogramRenderer(),
		heatmap:   view.NewHeatmapRenderer(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	return s
}

func (s *Session) renderers() []view.Renderer {
	return []view.Renderer{s.mapView, s.histogram, s.heatmap}
}

// refresh recomputes derived subsets and redraws every view. Caller holds mu.
func (s *Session) refresh() {
	s.derived = state.Refresh(s.store, s.state)
	sc := view.Scene{Store: s.store, State: s.state, Derived: s.derived}
	for _, r := range s.renderers() {
		r.Draw(sc)
	}
	s.lastUsed = time.Now()
}

// apply installs next as the current state and refreshes. Caller holds mu.
func (s *Session) apply(next state.State) models.Frame {
	s.state = next
	s.version++
	s.refresh()
	return s.frame()
}

// Frame returns the current frame without recomputing
func (s *Session) Frame() models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return s.frame()
}

// Refresh re-runs the full cycle on unchanged inputs
func (s *Session) Refresh() models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	return s.frame()
}

// UpdateFilters applies a new filter configuration
func (s *Session) UpdateFilters(cfg models.FilterConfig) models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(s.state.WithFilters(cfg))
}

// MoveCenter applies the drag-end position of the center marker
func (s *Session) MoveCenter(center models.LatLng) (models.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.state.WithCenter(center)
	if err != nil {
		return models.Frame{}, err
	}
	return s.apply(next), nil
}

// SetRadius sets the radius in meters
func (s *Session) SetRadius(meters float64) models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(s.state.WithRadius(meters))
}

// SetSlider sets the radius from the control position 0-100
func (s *Session) SetSlider(v float64) models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(s.state.WithSlider(v))
}

// Select highlights the members of a heatmap cell (hover-enter)
func (s *Session) Select(key models.CellKey) (models.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.state.WithSelection(s.derived, key)
	if err != nil {
		return models.Frame{}, err
	}
	return s.apply(next), nil
}

// ClearSelection removes the highlight (hover-exit)
func (s *Session) ClearSelection() models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Selection == nil {
		return s.frame()
	}
	return s.apply(s.state.WithoutSelection())
}

// Close disposes every drawn artifact
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.renderers() {
		r.Dispose()
	}
}

// RenderHistogram writes the current histogram as HTML
func (s *Session) RenderHistogram(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.histogram.RenderHTML(w)
}

// RenderHeatmap writes the current heatmap as HTML
func (s *Session) RenderHeatmap(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heatmap.RenderHTML(w)
}

// State returns a copy of the current input state
func (s *Session) State() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastUsed returns when the session last handled an input
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// frame assembles the response from the renderers' artifacts. Caller holds mu.
func (s *Session) frame() models.Frame {
	layer, _ := s.mapView.Layer()
	hist, _ := s.histogram.Chart()
	heat, _ := s.heatmap.Chart()

	var selection []int
	if s.state.Selection != nil {
		selection = s.state.Selection.Members
	}

	return models.Frame{
		Version:   s.version,
		Filters:   s.state.Filters,
		Query:     s.state.Query,
		Filtered:  s.derived.Filtered,
		InRange:   s.derived.InRange,
		Selection: selection,
		Counts: models.SubsetCounts{
			Dataset:   s.store.Len(),
			Filtered:  len(s.derived.Filtered),
			InRange:   len(s.derived.InRange),
			Selection: len(selection),
		},
		Map:       layer,
		Histogram: hist,
		Heatmap:   heat,
		Summary:   Summarize(s.store, s.derived.Active(s.state)),
	}
}

// Summarize aggregates a subset
func Summarize(store *dataset.Store, subset []int) models.SubsetSummary {
	stars := make([]float64, len(subset))
	reviews := make([]float64, len(subset))
	total := 0
	for k, i := range subset {
		b := store.At(i)
		stars[k] = b.Stars
		reviews[k] = float64(b.ReviewCount)
		total += b.ReviewCount
	}
	return models.SubsetSummary{
		Count:             len(subset),
		AverageStars:      stats.Mean(stars),
		MedianReviewCount: stats.Median(reviews),
		TotalReviews:      total,
	}
}
