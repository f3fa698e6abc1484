package translate

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLibreTranslateAttempt(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "hola"})
	}))
	defer srv.Close()

	a := NewLibreTranslate(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
	got, ok := a.Attempt(context.Background(), "hello", "en", "es")
	if !ok || got != "hola" {
		t.Errorf("Attempt = (%q, %v), want (hola, true)", got, ok)
	}
	if gotBody["q"] != "hello" || gotBody["source"] != "en" || gotBody["target"] != "es" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestLibreTranslateRejectsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewLibreTranslate(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
	if _, ok := a.Attempt(context.Background(), "hello", "en", "es"); ok {
		t.Error("Attempt should miss on a non-200 response")
	}
}

func TestLibreTranslateRejectsEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "hello"})
	}))
	defer srv.Close()

	a := NewLibreTranslate(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
	if _, ok := a.Attempt(context.Background(), "hello", "en", "es"); ok {
		t.Error("Attempt should miss when the response echoes the input")
	}
}

func TestMyMemoryAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "hello" {
			t.Errorf("q = %q, want hello", q)
		}
		if lp := r.URL.Query().Get("langpair"); lp != "en|es" {
			t.Errorf("langpair = %q, want en|es", lp)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"responseData": map[string]string{"translatedText": "hola"},
		})
	}))
	defer srv.Close()

	a := NewMyMemory(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
	got, ok := a.Attempt(context.Background(), "hello", "en", "es")
	if !ok || got != "hola" {
		t.Errorf("Attempt = (%q, %v), want (hola, true)", got, ok)
	}
}

func TestMyMemoryRejectsQuotaWarning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responseData": map[string]string{
				"translatedText": "MYMEMORY WARNING: YOU USED ALL AVAILABLE FREE TRANSLATIONS FOR TODAY",
			},
		})
	}))
	defer srv.Close()

	a := NewMyMemory(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
	if _, ok := a.Attempt(context.Background(), "hello", "en", "es"); ok {
		t.Error("Attempt should miss on a quota warning dressed as a translation")
	}
}

func TestGoogleWebAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("client") != "gtx" || q.Get("sl") != "en" || q.Get("tl") != "es" {
			t.Errorf("query = %v", q)
		}
		io.WriteString(w, `[[["hola","hello",null,null,10]],null,"en"]`)
	}))
	defer srv.Close()

	a := NewGoogleWeb(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
	got, ok := a.Attempt(context.Background(), "hello", "en", "es")
	if !ok || got != "hola" {
		t.Errorf("Attempt = (%q, %v), want (hola, true)", got, ok)
	}
}

func TestGoogleWebRejectsMalformedResponse(t *testing.T) {
	bodies := []string{
		`[]`,
		`[[]]`,
		`not json`,
		`[["no nesting"]]`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		}))
		a := NewGoogleWeb(RemoteConfig{BaseURL: srv.URL, Logger: discardLogger()})
		if _, ok := a.Attempt(context.Background(), "hello", "en", "es"); ok {
			t.Errorf("Attempt should miss for body %q", body)
		}
		srv.Close()
	}
}

func TestContainsErrorMarker(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hola", false},
		{"MYMEMORY WARNING: something", true},
		{"quota exceeded for key", true},
		{"an error occurred", true},
		{"request failed", true},
		{"invalid pair", true},
		{"terror plot thickens", true}, // substring match, "terror" contains "error"
	}
	for _, tt := range tests {
		if got := containsErrorMarker(tt.in); got != tt.want {
			t.Errorf("containsErrorMarker(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
