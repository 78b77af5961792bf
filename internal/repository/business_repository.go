package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jengzang/yelp-map-backend-go/internal/database"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
)

// BusinessSource loads the complete business list once
type BusinessSource interface {
	LoadBusinesses(ctx context.Context) ([]models.Business, error)
	String() string
}

// NewBusinessSource picks the source by file extension: .db/.sqlite go to
// sqlite, everything else is read as a JSON array.
func NewBusinessSource(path string) BusinessSource {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return &SQLiteBusinessRepository{path: path}
	default:
		return &JSONBusinessRepository{path: path}
	}
}

// JSONBusinessRepository reads the processed JSON dataset
type JSONBusinessRepository struct {
	path string
}

// NewJSONBusinessRepository creates a JSON-backed repository
func NewJSONBusinessRepository(path string) *JSONBusinessRepository {
	return &JSONBusinessRepository{path: path}
}

// LoadBusinesses reads and decodes the whole file
func (r *JSONBusinessRepository) LoadBusinesses(ctx context.Context) ([]models.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	businesses, skipped, err := models.DecodeBusinesses(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", r.path, err)
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed records in %s", skipped, r.path)
	}
	return businesses, nil
}

func (r *JSONBusinessRepository) String() string {
	return "json:" + r.path
}

// SQLiteBusinessRepository reads businesses from a sqlite dataset file
type SQLiteBusinessRepository struct {
	path string
	db   *sql.DB
}

// NewSQLiteBusinessRepository wraps an already opened database
func NewSQLiteBusinessRepository(db *sql.DB) *SQLiteBusinessRepository {
	return &SQLiteBusinessRepository{db: db}
}

// LoadBusinesses reads every row in insertion order
func (r *SQLiteBusinessRepository) LoadBusinesses(ctx context.Context) ([]models.Business, error) {
	db := r.db
	if db == nil {
		if _, err := os.Stat(r.path); err != nil {
			return nil, fmt.Errorf("failed to read dataset: %w", err)
		}
		opened, err := database.Open(database.Config{Path: r.path, ReadOnly: true})
		if err != nil {
			return nil, err
		}
		defer opened.Close()
		db = opened
	}

	query := `SELECT business_id, name, city, state, latitude, longitude,
		stars, review_count, is_open, price_range, categories, attributes
		FROM businesses ORDER BY rowid`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	var businesses []models.Business
	for rows.Next() {
		var (
			b          models.Business
			id         sql.NullString
			lat, lon   sql.NullFloat64
			stars      sql.NullFloat64
			reviews    sql.NullFloat64
			isOpen     sql.NullFloat64
			price      sql.NullFloat64
			attributes sql.NullString
		)
		err := rows.Scan(
			&id, &b.Name, &b.City, &b.State, &lat, &lon,
			&stars, &reviews, &isOpen, &price, &b.Categories, &attributes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}

		b.BusinessID = id.String
		b.Latitude = lat.Float64
		b.Longitude = lon.Float64
		b.Stars = stars.Float64
		if reviews.Valid && reviews.Float64 > 0 {
			b.ReviewCount = int(math.Floor(reviews.Float64))
		}
		b.IsOpen = models.BoolLike(isOpen.Float64 != 0)
		b.PriceRange = models.FloorPrice(price.Float64, price.Valid)
		if attributes.Valid {
			attrs, err := models.ParseAttributes(attributes.String)
			if err != nil {
				log.Printf("Ignoring attributes of %q: %v", b.Name, err)
			}
			b.Attributes = attrs
		}
		b.Normalize()
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read businesses: %w", err)
	}

	return businesses, nil
}

func (r *SQLiteBusinessRepository) String() string {
	if r.path == "" {
		return "sqlite"
	}
	return "sqlite:" + r.path
}
