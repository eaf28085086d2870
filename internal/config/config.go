package config

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"forum-fingerprint-api/internal/logx"
)

var configLogger = logx.GetScope("config")

// Config holds the application configuration
type Config struct {
	AppEnv string
	Server struct {
		Addr string
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text, json
	}
	PG struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	MQ struct {
		URL      string // RabbitMQ URL
		Exchange string
	}
	ES struct {
		Addrs    string // comma separated
		Username string
		Password string
	}
	JWT struct {
		Algo         string // HS256 | RS256
		HSSecret     string
		RSPrivateKey string
		RSPublicKey  string
		Issuer       string
		Audience     string
		AccessMin    int
		RefreshDays  int
	}
	Fingerprint struct {
		CookieEnabled bool
		IPEnabled     bool
		MaxAgeDays    int // age cutoff for the retention sweep
		MaxPerUser    int // 0 disables the per-user cap pass
		SweepHours    int
		RateWindowSec int
		RateLimit     int
	}
	Apollo struct {
		Enable    bool
		AppID     string
		Cluster   string
		Namespace string
		Addrs     string
		AccessKey string
	}
}

// Load loads config from env, and if enabled, overrides with Apollo values.
// Returns config, the watchable store, an optional apollo closer, and error.
func Load() (*Config, *Store, func(), error) {
	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")
	cfg.PG.URL = getEnv("POSTGRES_URL", "")
	cfg.PG.MaxOpenConns = getInt("PG_MAX_OPEN", 10)
	cfg.PG.MaxIdleConns = getInt("PG_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	cfg.MQ.URL = getEnv("RABBITMQ_URL", "")
	cfg.MQ.Exchange = getEnv("RABBITMQ_EXCHANGE", "events")

	cfg.ES.Addrs = getEnv("ES_ADDRS", "")
	cfg.ES.Username = getEnv("ES_USERNAME", "")
	cfg.ES.Password = getEnv("ES_PASSWORD", "")

	cfg.JWT.Algo = getEnv("JWT_ALGO", "HS256")
	cfg.JWT.HSSecret = getEnv("JWT_HS_SECRET", "dev-secret")
	cfg.JWT.RSPrivateKey = getEnv("JWT_RS_PRIVATE_KEY", "")
	cfg.JWT.RSPublicKey = getEnv("JWT_RS_PUBLIC_KEY", "")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "forum-fingerprint-api")
	cfg.JWT.Audience = getEnv("JWT_AUDIENCE", "forum")
	cfg.JWT.AccessMin = getInt("JWT_ACCESS_MIN", 15)
	cfg.JWT.RefreshDays = getInt("JWT_REFRESH_DAYS", 14)

	cfg.Fingerprint.CookieEnabled = getBool("FP_COOKIE_ENABLED", true)
	cfg.Fingerprint.IPEnabled = getBool("FP_IP_ENABLED", true)
	cfg.Fingerprint.MaxAgeDays = getInt("FP_MAX_AGE_DAYS", 180)
	cfg.Fingerprint.MaxPerUser = getInt("FP_MAX_PER_USER", 0)
	cfg.Fingerprint.SweepHours = getInt("FP_SWEEP_HOURS", 24)
	cfg.Fingerprint.RateWindowSec = getInt("FP_RATE_WINDOW_SEC", 60)
	cfg.Fingerprint.RateLimit = getInt("FP_RATE_LIMIT", 30)

	cfg.Apollo.Enable = getBool("APOLLO_ENABLE", false)
	cfg.Apollo.AppID = getEnv("APOLLO_APP_ID", "")
	cfg.Apollo.Cluster = getEnv("APOLLO_CLUSTER", "default")
	cfg.Apollo.Namespace = getEnv("APOLLO_NAMESPACE", "application")
	cfg.Apollo.Addrs = getEnv("APOLLO_ADDRS", "")
	cfg.Apollo.AccessKey = getEnv("APOLLO_ACCESS_KEY", "")

	store := NewStore(cfg)

	if cfg.Apollo.Enable {
		closer, err := overrideFromApollo(cfg, store)
		if err != nil {
			configLogger.Sugar().Errorf("apollo override failed: %v", err)
			return cfg, store, closer, err
		}
		return cfg, store, closer, nil
	}

	return cfg, store, nil, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	return lo.Ternary(v != "", v, def)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
