package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	ViewStore      string
	RedisAddr      string
	RedisPass      string
	RedisDB        int
	ViewTTL        time.Duration
	MySQLDSN       string
	DefaultWidth   int
	AuthUserHeader string
	AuthNameHeader string
	SubmitRPS      float64
	SubmitBurst    int
	SeedWorkers    int
	RequestTimeout time.Duration
	TrustProxy     bool
}

// Load reads the process environment. A .env file in the working directory,
// when present, fills variables that are not already set.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("read .env failed")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("var", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("var", k).Str("value", v).Msg("not a number, using default")
		}
		return def
	}
	atob := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
			log.Warn().Str("var", k).Str("value", v).Msg("not a boolean, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		ViewStore:      strings.ToLower(env("VIEW_STORE", StoreMemory)),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		ViewTTL:        time.Duration(atoi("VIEW_TTL_SECONDS", 1800)) * time.Second,
		MySQLDSN:       env("MYSQL_DSN", ""),
		DefaultWidth:   atoi("DEFAULT_VIEWPORT_WIDTH", 1280),
		AuthUserHeader: env("AUTH_USER_HEADER", "X-Forwarded-User"),
		AuthNameHeader: env("AUTH_NAME_HEADER", "X-Forwarded-Preferred-Username"),
		SubmitRPS:      atof("SUBMIT_RPS", 1),
		SubmitBurst:    atoi("SUBMIT_BURST", 5),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		TrustProxy:     atob("TRUST_PROXY_HEADERS", false),
	}
	if c.ViewStore != StoreMemory && c.ViewStore != StoreRedis {
		log.Warn().Str("view_store", c.ViewStore).Msg("unknown VIEW_STORE, using memory")
		c.ViewStore = StoreMemory
	}
	if c.DefaultWidth <= 0 {
		c.DefaultWidth = 1280
	}
	if c.SeedWorkers <= 0 {
		c.SeedWorkers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
