package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration loaded from env.
type Config struct {
	Port           string
	DatabaseURL    string // empty = in-memory venue mappings
	ValkeyAddr     string // empty = in-memory scrape cache
	ValkeyPassword string
	TMDBAPIKey     string
	TMDBLanguage   string
	Env            string

	// Browser automation (aeon lane)
	BrowserBin         string
	BrowserOpenTimeout time.Duration
	BrowserCmdTimeout  time.Duration
	BrowserSettle      time.Duration

	// Scraping
	FetchTimeout   time.Duration
	BrowserTimeout time.Duration

	// Result cache
	CacheTTL      time.Duration
	CacheCapacity int
}

func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ValkeyAddr:     os.Getenv("VALKEY_ADDR"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		TMDBAPIKey:     os.Getenv("TMDB_API_KEY"),
		TMDBLanguage:   getEnv("TMDB_LANGUAGE", "ja-JP"),
		Env:            getEnv("ENV", "development"),

		BrowserBin:         getEnv("BROWSER_BIN", "agent-browser"),
		BrowserOpenTimeout: getDuration("BROWSER_OPEN_TIMEOUT", 30*time.Second),
		BrowserCmdTimeout:  getDuration("BROWSER_CMD_TIMEOUT", 10*time.Second),
		BrowserSettle:      getDuration("BROWSER_SETTLE", 5*time.Second),

		FetchTimeout:   getDuration("FETCH_TIMEOUT", 15*time.Second),
		BrowserTimeout: getDuration("BROWSER_TIMEOUT", 90*time.Second),

		CacheTTL:      getDuration("CACHE_TTL", 10*time.Minute),
		CacheCapacity: getInt("CACHE_CAPACITY", 200),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("warning: invalid duration for %s: %v", key, err)
		return def
	}
	return d
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: invalid integer for %s: %v", key, err)
		return def
	}
	return n
}
