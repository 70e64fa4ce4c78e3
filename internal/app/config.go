package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/storefront-backend/internal/data/db"
	"github.com/yungbote/storefront-backend/internal/observability"
	"github.com/yungbote/storefront-backend/internal/platform/envutil"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/platform/ratelimit"
	"github.com/yungbote/storefront-backend/internal/services"
)

const defaultTaxRate = "0.1"

type Config struct {
	LogMode string
	Port    int

	DB db.Config

	PageSize    int
	TaxRate     decimal.Decimal
	CORSOrigins []string

	RateLimit ratelimit.Config
	Otel      observability.OtelConfig

	ShutdownTimeout time.Duration
}

// fileValues holds the optional CONFIG_FILE overlay. Keys use the same names
// as the environment variables; the environment wins.
type fileValues map[string]string

func readConfigFile(path string) (fileValues, error) {
	out := fileValues{}
	if strings.TrimSpace(path) == "" {
		return out, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	for k, v := range doc {
		key := strings.ToUpper(strings.TrimSpace(k))
		switch vv := v.(type) {
		case nil:
		case []any:
			parts := make([]string, 0, len(vv))
			for _, p := range vv {
				parts = append(parts, fmt.Sprint(p))
			}
			out[key] = strings.Join(parts, ",")
		default:
			out[key] = fmt.Sprint(vv)
		}
	}
	return out, nil
}

func (f fileValues) str(key, def string) string {
	return envutil.String(key, f.defString(key, def))
}

func (f fileValues) int(key string, def int) int {
	if v, ok := f[key]; ok {
		var parsed int
		if _, err := fmt.Sscan(v, &parsed); err == nil {
			def = parsed
		}
	}
	return envutil.Int(key, def)
}

func (f fileValues) float(key string, def float64) float64 {
	if v, ok := f[key]; ok {
		var parsed float64
		if _, err := fmt.Sscan(v, &parsed); err == nil {
			def = parsed
		}
	}
	return envutil.Float(key, def)
}

func (f fileValues) bool(key string, def bool) bool {
	if v, ok := f[key]; ok {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			def = true
		case "0", "false", "no", "off":
			def = false
		}
	}
	return envutil.Bool(key, def)
}

func (f fileValues) list(key string, def []string) []string {
	if v, ok := f[key]; ok {
		var parts []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		def = parts
	}
	return envutil.List(key, def)
}

func (f fileValues) defString(key, def string) string {
	if v, ok := f[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func LoadConfig(log *logger.Logger) (Config, error) {
	path := envutil.String("CONFIG_FILE", "")
	f, err := readConfigFile(path)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		log.Info("Loaded config file", "path", path, "keys", len(f))
	}

	taxRaw := f.str("TAX_RATE", defaultTaxRate)
	taxRate, err := decimal.NewFromString(taxRaw)
	if err != nil || taxRate.IsNegative() {
		return Config{}, fmt.Errorf("invalid TAX_RATE %q", taxRaw)
	}

	cfg := Config{
		LogMode: f.str("LOG_MODE", "development"),
		Port:    f.int("PORT", 8080),
		DB: db.Config{
			Driver:       f.str("DB_DRIVER", db.DriverPostgres),
			Host:         f.str("POSTGRES_HOST", "localhost"),
			Port:         f.int("POSTGRES_PORT", 5432),
			User:         f.str("POSTGRES_USER", "postgres"),
			Password:     f.str("POSTGRES_PASSWORD", ""),
			Name:         f.str("POSTGRES_NAME", "storefront"),
			SSLMode:      f.str("POSTGRES_SSLMODE", "disable"),
			SQLitePath:   f.str("SQLITE_PATH", "storefront.db"),
			MaxOpenConns: f.int("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns: f.int("DB_MAX_IDLE_CONNS", 5),
		},
		PageSize:    f.int("PAGE_SIZE", services.DefaultPageSize),
		TaxRate:     taxRate,
		CORSOrigins: f.list("CORS_ORIGINS", nil),
		RateLimit: ratelimit.Config{
			Addr:     f.str("REDIS_ADDR", ""),
			Password: f.str("REDIS_PASSWORD", ""),
			DB:       f.int("REDIS_DB", 0),
			Limit:    f.int("RATE_LIMIT_PER_MINUTE", 0),
			Window:   time.Minute,
			Prefix:   f.str("RATE_LIMIT_PREFIX", "storefront:rl"),
		},
		Otel: observability.OtelConfig{
			Enabled:     f.bool("OTEL_ENABLED", false),
			ServiceName: f.str("OTEL_SERVICE_NAME", observability.DefaultServiceName),
			Environment: f.str("OTEL_ENVIRONMENT", f.str("LOG_MODE", "development")),
			Version:     f.str("APP_VERSION", "dev"),
			Endpoint:    f.str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(f.str("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    f.bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: observability.ClampRatio(f.float("OTEL_SAMPLER_RATIO", 1)),
		},
		ShutdownTimeout: time.Duration(f.int("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = services.DefaultPageSize
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return cfg, nil
}

// RateLimitEnabled reports whether a redis limiter should be built.
func (c Config) RateLimitEnabled() bool {
	return c.RateLimit.Addr != "" && c.RateLimit.Limit > 0
}
