// Package view turns derived subsets into the artifacts the page draws: the
// map layer, the review-count histogram and the stars x price heatmap.
//
// Renderers are pure consumers of a Scene. Each one owns the artifact it drew
// last and disposes it before drawing the next; nothing is patched in place.
package view

import (
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/state"
)

// Scene is the input of one redraw
type Scene struct {
	Store   *dataset.Store
	State   state.State
	Derived state.Derived
}

// Renderer draws one view
type Renderer interface {
	Name() string
	Draw(sc Scene)
	Dispose()
}

// artifact tracks the draw/dispose lifecycle of a renderer's output
type artifact[T any] struct {
	current  *T
	drawn    int
	disposed int
}

func (a *artifact[T]) replace(next T) {
	a.dispose()
	a.current = &next
	a.drawn++
}

func (a *artifact[T]) dispose() {
	if a.current != nil {
		a.current = nil
		a.disposed++
	}
}

// Stats reports how many artifacts were drawn and disposed
type Stats struct {
	Drawn    int
	Disposed int
}

func (a *artifact[T]) stats() Stats {
	return Stats{Drawn: a.drawn, Disposed: a.disposed}
}
