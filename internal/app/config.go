package app

import (
	"os"
	"strconv"
	"time"

	"github.com/vmarik/lingo/internal/lang"
)

type Config struct {
	HTTPAddr  string
	SentryDSN string

	// Session defaults, merged over by per-session config messages
	DefaultSourceLang lang.Code
	DefaultTargetLang lang.Code
	DefaultSampleRate int

	// Translation engine
	CacheCapacity  int
	AdapterTimeout time.Duration

	// Remote provider endpoints (overridable for self-hosted instances)
	LibreTranslateURL string
	MyMemoryURL       string
	GoogleWebURL      string
}

func LoadConfigFromEnv() Config {
	return Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		SentryDSN: getenv("SENTRY_DSN", ""),

		DefaultSourceLang: lang.Code(getenv("DEFAULT_SOURCE_LANG", "en")),
		DefaultTargetLang: lang.Code(getenv("DEFAULT_TARGET_LANG", "ar")),
		DefaultSampleRate: getenvInt("DEFAULT_SAMPLE_RATE", 16000),

		CacheCapacity:  getenvInt("CACHE_CAPACITY", 1000),
		AdapterTimeout: getenvDuration("ADAPTER_TIMEOUT", 8*time.Second),

		LibreTranslateURL: getenv("LIBRETRANSLATE_URL", ""),
		MyMemoryURL:       getenv("MYMEMORY_URL", ""),
		GoogleWebURL:      getenv("GOOGLE_WEB_URL", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
