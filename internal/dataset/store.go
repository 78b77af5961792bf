// Package dataset holds the loaded business list. The list is immutable
// after load, so a Store can be shared by every session without locking.
package dataset

import (
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// Store is the read-only business dataset with its spatial index
type Store struct {
	businesses []models.Business
	index      *Index
}

// NewStore takes ownership of businesses; callers must not modify them afterwards
func NewStore(businesses []models.Business) *Store {
	return &Store{
		businesses: businesses,
		index:      NewIndex(businesses),
	}
}

// Len returns the dataset size
func (s *Store) Len() int {
	return len(s.businesses)
}

// At returns the business at dataset index i
func (s *Store) At(i int) *models.Business {
	return &s.businesses[i]
}

// All returns the dataset indexes 0..n-1 in input order
func (s *Store) All() []int {
	all := make([]int, len(s.businesses))
	for i := range all {
		all[i] = i
	}
	return all
}

// Index returns the spatial index
func (s *Store) Index() *Index {
	return s.index
}
