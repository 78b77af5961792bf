package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

func sampleBusinesses() []models.Business {
	return []models.Business{
		{BusinessID: "downtown", Latitude: 34.4208, Longitude: -119.6982},
		{BusinessID: "goleta", Latitude: 34.4358, Longitude: -119.8276},
		{BusinessID: "missing", Latitude: 0, Longitude: 0},
		{BusinessID: "montecito", Latitude: 34.4367, Longitude: -119.6320},
		{BusinessID: "la", Latitude: 34.0522, Longitude: -118.2437},
	}
}

func TestIndexCandidates(t *testing.T) {
	idx := NewIndex(sampleBusinesses())
	if idx.Len() != 4 {
		t.Fatalf("expected 4 located businesses indexed, got %d", idx.Len())
	}

	got, ok := idx.Candidates(models.LatLng{Lat: 34.4208, Lng: -119.6982}, 1000)
	if !ok {
		t.Fatal("expected index to answer a small query")
	}
	if _, found := got[0]; !found {
		t.Error("expected downtown among the candidates")
	}
	if _, found := got[4]; found {
		t.Error("LA should be far outside a 1km box")
	}
	if _, found := got[2]; found {
		t.Error("businesses without coordinates are never indexed")
	}

	wide, _ := idx.Candidates(models.LatLng{Lat: 34.4208, Lng: -119.6982}, 20000)
	for _, i := range []int{0, 1, 3} {
		if _, found := wide[i]; !found {
			t.Errorf("expected business %d within a 20km box", i)
		}
	}
}

func TestIndexCandidatesFallback(t *testing.T) {
	idx := NewIndex(sampleBusinesses())

	if _, ok := idx.Candidates(models.LatLng{Lat: 89, Lng: 0}, 1000); ok {
		t.Error("expected no answer near the pole")
	}
	if _, ok := idx.Candidates(models.LatLng{Lat: 0, Lng: 179.999}, 5000); ok {
		t.Error("expected no answer across the antimeridian")
	}

	var nilIdx *Index
	if _, ok := nilIdx.Candidates(models.LatLng{Lat: 34, Lng: -119}, 1000); ok {
		t.Error("nil index should defer to a full scan")
	}
}

func TestStore(t *testing.T) {
	s := NewStore(sampleBusinesses())
	if s.Len() != 5 {
		t.Fatalf("Len = %d, want 5", s.Len())
	}
	if s.At(3).BusinessID != "montecito" {
		t.Errorf("At(3) = %s, want montecito", s.At(3).BusinessID)
	}
	all := s.All()
	for i, v := range all {
		if v != i {
			t.Fatalf("All() out of order at %d: %v", i, all)
		}
	}
}

type fakeSource struct {
	release    chan struct{}
	businesses []models.Business
	err        error
	calls      int
}

func (f *fakeSource) LoadBusinesses(ctx context.Context) ([]models.Business, error) {
	f.calls++
	if f.release != nil {
		<-f.release
	}
	return f.businesses, f.err
}

func TestLoaderLifecycle(t *testing.T) {
	src := &fakeSource{release: make(chan struct{}), businesses: sampleBusinesses()}
	l := NewLoader(src)

	if _, err := l.Store(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Store before load: err = %v, want ErrNotReady", err)
	}
	if status, _ := l.Status(); status != StatusLoading {
		t.Errorf("Status = %s, want %s", status, StatusLoading)
	}

	l.Start(context.Background())
	if _, err := l.Store(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Store while loading: err = %v, want ErrNotReady", err)
	}

	close(src.release)
	<-l.Done()

	s, err := l.Store()
	if err != nil {
		t.Fatalf("Store after load: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("loaded %d businesses, want 5", s.Len())
	}
	if status, _ := l.Status(); status != StatusReady {
		t.Errorf("Status = %s, want %s", status, StatusReady)
	}
	if l.LoadedAt().IsZero() {
		t.Error("LoadedAt not set")
	}

	// Later loads reuse the first result
	if err := l.Load(context.Background()); err != nil {
		t.Errorf("second Load: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
}

func TestLoaderFailureIsFinal(t *testing.T) {
	boom := errors.New("file not found")
	l := NewLoader(&fakeSource{err: boom})

	if err := l.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Load err = %v, want %v", err, boom)
	}
	if _, err := l.Store(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Store err = %v, want ErrUnavailable", err)
	}
	status, err := l.Status()
	if status != StatusFailed || !errors.Is(err, boom) {
		t.Errorf("Status = %s, %v, want %s, %v", status, err, StatusFailed, boom)
	}
}
