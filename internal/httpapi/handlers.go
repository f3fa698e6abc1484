package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vmarik/lingo/internal/lang"
)

type translateRequest struct {
	Text       string    `json:"text"`
	SourceLang lang.Code `json:"sourceLang"`
	TargetLang lang.Code `json:"targetLang"`
}

type translateResponse struct {
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	SourceLang     lang.Code `json:"sourceLang"`
	TargetLang     lang.Code `json:"targetLang"`
	Timestamp      string    `json:"timestamp"`
}

func (r *Router) handleTranslate(w http.ResponseWriter, req *http.Request) {
	var body translateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if body.Text == "" || body.SourceLang == "" || body.TargetLang == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "missing required fields: text, sourceLang, targetLang",
		})
		return
	}
	for _, code := range []lang.Code{body.SourceLang, body.TargetLang} {
		if !lang.IsSupported(code) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("unsupported language: %s", code),
			})
			return
		}
	}

	translated := r.engine.Translate(req.Context(), body.Text, body.SourceLang, body.TargetLang)
	writeJSON(w, http.StatusOK, translateResponse{
		OriginalText:   body.Text,
		TranslatedText: translated,
		SourceLang:     body.SourceLang,
		TargetLang:     body.TargetLang,
		Timestamp:      nowRFC3339(),
	})
}

func (r *Router) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, lang.Supported)
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": nowRFC3339(),
		"clients":   r.sessions.len(),
	})
}

func (r *Router) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"translation": r.engine.Stats(),
		"server": map[string]any{
			"uptimeSeconds":    int(time.Since(r.started).Seconds()),
			"connectedClients": r.sessions.len(),
		},
	})
}

func (r *Router) handleCacheClear(w http.ResponseWriter, _ *http.Request) {
	r.engine.ClearCache()
	r.logger.Printf("httpapi: translation cache cleared")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "translation cache cleared",
	})
}
