package dataset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Load status
const (
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusFailed  = "failed"
)

var (
	// ErrNotReady is returned until the initial load has completed
	ErrNotReady = errors.New("dataset is still loading")
	// ErrUnavailable is returned after the initial load failed
	ErrUnavailable = errors.New("dataset is unavailable")
)

// Source loads the full business list
type Source interface {
	LoadBusinesses(ctx context.Context) ([]models.Business, error)
}

// Loader performs the one-time dataset load and gates access to the Store
// until it has completed. A failed load is final: there is no retry.
type Loader struct {
	source Source
	once   sync.Once
	done   chan struct{}

	mu       sync.RWMutex
	store    *Store
	err      error
	loadedAt time.Time
}

// NewLoader creates a loader for source
func NewLoader(source Source) *Loader {
	return &Loader{source: source, done: make(chan struct{})}
}

// Start loads the dataset in the background. Only the first call has an effect.
func (l *Loader) Start(ctx context.Context) {
	go l.Load(ctx)
}

// Load loads the dataset and blocks until done. Only the first call performs
// the load; later calls wait for it and return its result.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() {
		defer close(l.done)

		start := time.Now()
		log.Printf("Loading dataset from %v", l.source)

		businesses, err := l.source.LoadBusinesses(ctx)

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.err = err
			log.Printf("Dataset load failed: %v", err)
			return
		}
		l.store = NewStore(businesses)
		l.loadedAt = time.Now()
		log.Printf("Dataset loaded: %d businesses (%d located) in %v",
			l.store.Len(), l.store.Index().Len(), time.Since(start))
	})

	<-l.done
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Done is closed once the load has finished, successfully or not
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Store returns the loaded dataset, ErrNotReady while loading, or
// ErrUnavailable after a failed load.
func (l *Loader) Store() (*Store, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.store != nil {
		return l.store, nil
	}
	if l.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, l.err)
	}
	return nil, ErrNotReady
}

// Status returns the load status and, after a failure, the load error
func (l *Loader) Status() (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	switch {
	case l.store != nil:
		return StatusReady, nil
	case l.err != nil:
		return StatusFailed, l.err
	default:
		return StatusLoading, nil
	}
}

// LoadedAt returns when the dataset finished loading
func (l *Loader) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}
