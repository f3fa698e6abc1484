package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/vmarik/lingo/internal/lang"
)

const (
	defaultLibreTranslateURL = "https://libretranslate.com/translate"
	defaultMyMemoryURL       = "https://api.mymemory.translated.net/get"
	defaultGoogleWebURL      = "https://translate.googleapis.com/translate_a/single"
)

// RemoteConfig configures one remote translation adapter.
type RemoteConfig struct {
	BaseURL    string       // empty selects the provider default
	HTTPClient *http.Client // shared pooled client
	Logger     *log.Logger
}

func (c *RemoteConfig) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// LibreTranslateAdapter calls the LibreTranslate JSON API.
type LibreTranslateAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewLibreTranslate returns an adapter for the LibreTranslate endpoint.
func NewLibreTranslate(cfg RemoteConfig) *LibreTranslateAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultLibreTranslateURL
	}
	return &LibreTranslateAdapter{baseURL: baseURL, httpClient: cfg.client(), logger: cfg.Logger}
}

func (a *LibreTranslateAdapter) Name() string   { return "libretranslate" }
func (a *LibreTranslateAdapter) Method() Method { return MethodRemote }

func (a *LibreTranslateAdapter) Attempt(ctx context.Context, text string, src, dst lang.Code) (string, bool) {
	result, err := a.request(ctx, text, src, dst)
	if err != nil {
		a.logger.Printf("translate: libretranslate failed: %v", err)
		return "", false
	}
	if !acceptable(result, text) {
		return "", false
	}
	return result, true
}

func (a *LibreTranslateAdapter) request(ctx context.Context, text string, src, dst lang.Code) (string, error) {
	body, err := json.Marshal(map[string]string{
		"q":      text,
		"source": string(src),
		"target": string(dst),
		"format": "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("libretranslate error: %s - %s", resp.Status, string(respBody))
	}

	var payload struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return payload.TranslatedText, nil
}

// MyMemoryAdapter calls the MyMemory translation memory API.
type MyMemoryAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewMyMemory returns an adapter for the MyMemory endpoint.
func NewMyMemory(cfg RemoteConfig) *MyMemoryAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMyMemoryURL
	}
	return &MyMemoryAdapter{baseURL: baseURL, httpClient: cfg.client(), logger: cfg.Logger}
}

func (a *MyMemoryAdapter) Name() string   { return "mymemory" }
func (a *MyMemoryAdapter) Method() Method { return MethodRemote }

func (a *MyMemoryAdapter) Attempt(ctx context.Context, text string, src, dst lang.Code) (string, bool) {
	result, err := a.request(ctx, text, src, dst)
	if err != nil {
		a.logger.Printf("translate: mymemory failed: %v", err)
		return "", false
	}
	if !acceptable(result, text) {
		return "", false
	}
	return result, true
}

func (a *MyMemoryAdapter) request(ctx context.Context, text string, src, dst lang.Code) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", fmt.Sprintf("%s|%s", src, dst))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory error: %s", resp.Status)
	}

	var payload struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return payload.ResponseData.TranslatedText, nil
}

// GoogleWebAdapter calls the unauthenticated Google translate web endpoint.
// The response is a nested JSON array; only the first alternative is used.
type GoogleWebAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewGoogleWeb returns an adapter for the Google translate web endpoint.
func NewGoogleWeb(cfg RemoteConfig) *GoogleWebAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleWebURL
	}
	return &GoogleWebAdapter{baseURL: baseURL, httpClient: cfg.client(), logger: cfg.Logger}
}

func (a *GoogleWebAdapter) Name() string   { return "google-web" }
func (a *GoogleWebAdapter) Method() Method { return MethodRemote }

func (a *GoogleWebAdapter) Attempt(ctx context.Context, text string, src, dst lang.Code) (string, bool) {
	result, err := a.request(ctx, text, src, dst)
	if err != nil {
		a.logger.Printf("translate: google-web failed: %v", err)
		return "", false
	}
	if !acceptable(result, text) {
		return "", false
	}
	return result, true
}

func (a *GoogleWebAdapter) request(ctx context.Context, text string, src, dst lang.Code) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", string(src))
	q.Set("tl", string(dst))
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google-web error: %s", resp.Status)
	}

	// Response shape: [[["translation","original",...],...],...]
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}
	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}
	if len(sentences) == 0 || len(sentences[0]) == 0 {
		return "", fmt.Errorf("empty translation")
	}
	var result string
	if err := json.Unmarshal(sentences[0][0], &result); err != nil {
		return "", fmt.Errorf("unexpected translation element: %w", err)
	}
	return result, nil
}
