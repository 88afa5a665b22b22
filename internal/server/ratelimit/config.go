package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a limit for one endpoint. Path matching is exact unless the path
// ends with "/", in which case prefix matching applies.
type Rule struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // bucket capacity; defaults to Limit when 0
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Rules           []Rule
}

// DefaultConfig returns the built-in limits: generation is capped hard, the
// health check is unlimited, and unmatched paths are untouched.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		Rules: []Rule{
			{Path: "/generate", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		},
	}
}

// LoadConfig builds a Config from environment variables, falling back to
// DefaultConfig values.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := DefaultConfig()
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))

	if limit := getEnvInt("RATE_LIMIT_GENERATE_LIMIT", 0); limit > 0 {
		cfg.Rules[0].Limit = limit
	}
	if window := getEnvDuration("RATE_LIMIT_GENERATE_WINDOW", 0); window > 0 {
		cfg.Rules[0].Window = window
	}
	return cfg
}

// match finds the rule for a path and method, or nil when none applies. The
// health check is never limited.
func (c *Config) match(path, method string) *Rule {
	if path == "/health" && method == "GET" {
		return nil
	}
	for i := range c.Rules {
		r := &c.Rules[i]
		if r.Method != method {
			continue
		}
		if r.Path == path {
			return r
		}
		if strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return nil
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
