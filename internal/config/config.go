package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port        string
	DatasetPath string // .json array or .db sqlite file
	JWTSecret   string
	TokenTTL    time.Duration
	SessionTTL  time.Duration

	// Initial map view
	DefaultLat     float64
	DefaultLon     float64
	DefaultZoom    int
	ViewportWidth  int // Pixels
	ViewportHeight int // Pixels

	MinRadius     float64 // Meters
	DefaultRadius float64 // Meters

	RateLimit  int
	RateWindow time.Duration
}

// Load 加载配置
func Load() *Config {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:           getString("PORT", ":8080"),
		DatasetPath:    getString("DATASET_PATH", "./data/processed/ca_restaurants.json"),
		JWTSecret:      jwtSecret,
		TokenTTL:       getDuration("TOKEN_TTL", 24*time.Hour),
		SessionTTL:     getDuration("SESSION_TTL", 30*time.Minute),
		DefaultLat:     getFloat("DEFAULT_CENTER_LAT", 34.4208),
		DefaultLon:     getFloat("DEFAULT_CENTER_LON", -119.6982),
		DefaultZoom:    getInt("DEFAULT_ZOOM", 12),
		ViewportWidth:  getInt("VIEWPORT_WIDTH_PX", 1024),
		ViewportHeight: getInt("VIEWPORT_HEIGHT_PX", 768),
		MinRadius:      getFloat("MIN_RADIUS_M", 100),
		DefaultRadius:  getFloat("DEFAULT_RADIUS_M", 2000),
		RateLimit:      getInt("RATE_LIMIT", 300),
		RateWindow:     getDuration("RATE_WINDOW", time.Minute),
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, v, def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, v, def)
		return def
	}
	return d
}
