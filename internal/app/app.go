package app

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/vmarik/lingo/internal/httpapi"
	"github.com/vmarik/lingo/internal/lexicon"
	"github.com/vmarik/lingo/internal/phrase"
	"github.com/vmarik/lingo/internal/stt"
	"github.com/vmarik/lingo/internal/translate"
)

type App struct {
	cfg    Config
	logger *log.Logger
	engine *translate.Engine
	router *httpapi.Router
}

func New(cfg Config, logger *log.Logger) *App {
	table := phrase.Default()
	resolver := lexicon.NewResolver(table)

	// Shared HTTP client with connection pooling for the remote providers.
	// Keeps TCP connections alive to reduce latency for repeated calls.
	httpClient := &http.Client{
		Timeout: cfg.AdapterTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}

	remoteCfg := func(baseURL string) translate.RemoteConfig {
		return translate.RemoteConfig{BaseURL: baseURL, HTTPClient: httpClient, Logger: logger}
	}

	engine := translate.New(translate.Config{
		Adapters: []translate.Adapter{
			translate.NewLibreTranslate(remoteCfg(cfg.LibreTranslateURL)),
			translate.NewMyMemory(remoteCfg(cfg.MyMemoryURL)),
			translate.NewGoogleWeb(remoteCfg(cfg.GoogleWebURL)),
			translate.NewLexical(resolver),
		},
		Scorer:         translate.NewScorer(table),
		Cache:          translate.NewCache(cfg.CacheCapacity),
		Logger:         logger,
		AdapterTimeout: cfg.AdapterTimeout,
	})

	router := httpapi.NewRouter(httpapi.RouterConfig{
		DefaultSourceLang: cfg.DefaultSourceLang,
		DefaultTargetLang: cfg.DefaultTargetLang,
		DefaultSampleRate: cfg.DefaultSampleRate,
	}, logger, engine, stt.NewHeuristic())

	return &App{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		router: router,
	}
}

func (a *App) Handler() http.Handler {
	return a.router.Handler()
}

// Close shuts down live websocket sessions. In-flight translations complete
// on their own; their results are discarded with the sessions.
func (a *App) Close() error {
	a.router.Close()
	return nil
}
