package service

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/jengzang/yelp-map-backend-go/internal/auth"
	"github.com/jengzang/yelp-map-backend-go/internal/config"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/session"
	"github.com/jengzang/yelp-map-backend-go/internal/spatial"
	"github.com/jengzang/yelp-map-backend-go/internal/state"
	"github.com/jengzang/yelp-map-backend-go/internal/stats"
)

// ErrInvalidViewport is returned for a viewport whose edges are out of order
var ErrInvalidViewport = errors.New("invalid viewport")

const (
	topCategories = 20
	topHotspots   = 10
)

// ExplorerService handles business logic for the map page
type ExplorerService struct {
	cfg      *config.Config
	loader   *dataset.Loader
	sessions *session.Manager
	tokens   *auth.TokenIssuer

	summaryOnce sync.Once
	summary     models.DatasetSummary
}

// NewExplorerService creates a new explorer service
func NewExplorerService(cfg *config.Config, loader *dataset.Loader, sessions *session.Manager, tokens *auth.TokenIssuer) *ExplorerService {
	return &ExplorerService{cfg: cfg, loader: loader, sessions: sessions, tokens: tokens}
}

// Status returns the dataset load status
func (s *ExplorerService) Status() (string, error) {
	return s.loader.Status()
}

// CreateSession opens a page session and returns its token and first frame
func (s *ExplorerService) CreateSession(req models.SessionRequest) (string, models.Frame, error) {
	store, err := s.loader.Store()
	if err != nil {
		return "", models.Frame{}, err
	}

	initial, err := s.initialState(req.Viewport, req.Center, s.cfg.DefaultRadius, req.Filters)
	if err != nil {
		return "", models.Frame{}, err
	}

	sess := s.sessions.Create(store, initial)
	token, err := s.tokens.Issue(sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return "", models.Frame{}, err
	}
	return token, sess.Frame(), nil
}

// Session returns the live session for a verified session id
func (s *ExplorerService) Session(id string) (*session.Session, error) {
	if _, err := s.loader.Store(); err != nil {
		return nil, err
	}
	return s.sessions.Get(id)
}

// CloseSession removes a session
func (s *ExplorerService) CloseSession(id string) error {
	return s.sessions.Delete(id)
}

// Search runs one refresh for a stateless query
func (s *ExplorerService) Search(q models.SearchQuery) (models.Frame, error) {
	frame, err := s.oneShot(q, nil)
	if err != nil {
		return models.Frame{}, err
	}
	if q.Compact {
		frame.Filtered, frame.InRange, frame.Selection = nil, nil, nil
		frame.Map.Markers = nil
	}
	return frame, nil
}

// RenderCharts runs one refresh for q and writes both chart pages
func (s *ExplorerService) RenderCharts(q models.SearchQuery, histogram, heatmap io.Writer) (models.Frame, error) {
	return s.oneShot(q, func(sess *session.Session) error {
		if err := sess.RenderHistogram(histogram); err != nil {
			return fmt.Errorf("failed to render histogram: %w", err)
		}
		if err := sess.RenderHeatmap(heatmap); err != nil {
			return fmt.Errorf("failed to render heatmap: %w", err)
		}
		return nil
	})
}

// oneShot builds a throwaway session, applies the optional cell selection
// and hands the session to fn before closing it
func (s *ExplorerService) oneShot(q models.SearchQuery, fn func(*session.Session) error) (models.Frame, error) {
	store, err := s.loader.Store()
	if err != nil {
		return models.Frame{}, err
	}

	var center *models.LatLng
	if q.Lat != 0 || q.Lng != 0 {
		center = &models.LatLng{Lat: q.Lat, Lng: q.Lng}
	}
	radius := s.cfg.DefaultRadius
	if q.Radius > 0 {
		radius = q.Radius
	}

	initial, err := s.initialState(nil, center, radius, q.FilterConfig)
	if err != nil {
		return models.Frame{}, err
	}

	sess := session.New("", store, initial)
	defer sess.Close()

	frame := sess.Frame()
	if q.Stars > 0 && q.Price > 0 {
		frame, err = sess.Select(models.CellKey{Stars: q.Stars, Price: q.Price})
		if err != nil {
			return models.Frame{}, err
		}
	}
	if fn != nil {
		if err := fn(sess); err != nil {
			return models.Frame{}, err
		}
	}
	return frame, nil
}

// initialState builds the state of a new page from an optional viewport and center
func (s *ExplorerService) initialState(vp *models.Viewport, center *models.LatLng, radius float64, filters models.FilterConfig) (state.State, error) {
	c := models.LatLng{Lat: s.cfg.DefaultLat, Lng: s.cfg.DefaultLon}
	if center != nil {
		c = *center
	} else if vp != nil && !vp.IsZero() {
		c = vp.Center()
	}
	if !state.ValidCoordinate(c) {
		return state.State{}, state.ErrInvalidCenter
	}

	var bounds spatial.Bounds
	if vp != nil && !vp.IsZero() {
		if vp.North <= vp.South || vp.East <= vp.West {
			return state.State{}, fmt.Errorf("%w: north must exceed south and east must exceed west", ErrInvalidViewport)
		}
		bounds = spatial.Bounds{North: vp.North, South: vp.South, East: vp.East, West: vp.West}
	} else {
		bounds = spatial.ViewportAt(spatial.Point{Lat: c.Lat, Lon: c.Lng},
			s.cfg.DefaultZoom, s.cfg.ViewportWidth, s.cfg.ViewportHeight)
	}

	st := state.New(c, bounds, s.cfg.MinRadius, radius, models.FilterConfig{})
	return st.WithFilters(filters), nil
}

// Summary aggregates the whole dataset. Computed once; the dataset never changes.
func (s *ExplorerService) Summary() (models.DatasetSummary, error) {
	store, err := s.loader.Store()
	if err != nil {
		return models.DatasetSummary{}, err
	}
	s.summaryOnce.Do(func() {
		s.summary = summarizeDataset(store)
	})
	return s.summary, nil
}

func summarizeDataset(store *dataset.Store) models.DatasetSummary {
	var (
		stars   []float64
		points  []spatial.Point
		total   int
		located int
	)
	categories := make(map[string]int)
	cells := make(map[string]int)
	cellStars := make(map[string]float64)
	states := make(map[string]*models.StateSummary)

	for i := 0; i < store.Len(); i++ {
		b := store.At(i)
		stars = append(stars, b.Stars)
		total += b.ReviewCount
		if b.HasCoordinates() {
			located++
			p := spatial.Point{Lat: b.Latitude, Lon: b.Longitude}
			points = append(points, p)
			hash := spatial.EncodeGeohash(p, spatial.HotspotPrecision)
			cells[hash]++
			cellStars[hash] += b.Stars
		}
		for _, c := range splitCategories(b.Categories) {
			categories[c]++
		}
		if st := strings.TrimSpace(b.State); st != "" {
			agg, ok := states[st]
			if !ok {
				agg = &models.StateSummary{State: st}
				states[st] = agg
			}
			agg.BusinessCount++
			agg.AverageStars += b.Stars // Sum until the loop ends
			agg.TotalReviews += b.ReviewCount
		}
	}

	summary := models.DatasetSummary{
		BusinessCount: store.Len(),
		Located:       located,
		AverageStars:  stats.Mean(stars),
		TotalReviews:  total,
		TopCategories: []models.CategoryCount{},
		Hotspots:      []models.Hotspot{},
		States:        make([]models.StateSummary, 0, len(states)),
	}
	if len(points) > 0 {
		bb := spatial.BoundingBox(points)
		summary.Extent = &models.Viewport{North: bb.North, South: bb.South, East: bb.East, West: bb.West}
	}
	for _, kc := range stats.TopCounts(categories, topCategories) {
		summary.TopCategories = append(summary.TopCategories, models.CategoryCount{Category: kc.Key, Count: kc.Count})
	}
	for _, kc := range stats.TopCounts(cells, topHotspots) {
		cell := spatial.GeohashCell(kc.Key)
		summary.Hotspots = append(summary.Hotspots, models.Hotspot{
			Geohash:      kc.Key,
			Bounds:       models.Viewport{North: cell.North, South: cell.South, East: cell.East, West: cell.West},
			Count:        kc.Count,
			AverageStars: cellStars[kc.Key] / float64(kc.Count),
		})
	}
	for _, agg := range states {
		agg.AverageStars = math.Round(agg.AverageStars/float64(agg.BusinessCount)*1000) / 1000
		summary.States = append(summary.States, *agg)
	}
	sort.Slice(summary.States, func(i, j int) bool {
		a, b := summary.States[i], summary.States[j]
		if a.BusinessCount != b.BusinessCount {
			return a.BusinessCount > b.BusinessCount
		}
		return a.State < b.State
	})
	return summary
}

// splitCategories accepts both "A, B" and "A;B"
func splitCategories(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
