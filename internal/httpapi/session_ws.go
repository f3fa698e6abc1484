package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/stt"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// flushSeconds of buffered audio trigger an interim transcription.
const flushSeconds = 2

// sessionConfig is the per-connection translation configuration. Partial
// config messages merge field by field.
type sessionConfig struct {
	SourceLang lang.Code `json:"sourceLang"`
	TargetLang lang.Code `json:"targetLang"`
	SampleRate int       `json:"sampleRate"`
}

// controlMessage is any inbound JSON frame.
type controlMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
	Text string          `json:"text"`
}

type configPayload struct {
	SourceLang *lang.Code `json:"sourceLang"`
	TargetLang *lang.Code `json:"targetLang"`
	SampleRate *int       `json:"sampleRate"`
}

// event is an outbound frame.
type event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// session is the per-connection state machine. All of its state is owned by
// the connection's read loop; messages for one session are handled strictly
// in order, while separate sessions proceed independently.
type session struct {
	id     string
	conn   *websocket.Conn
	connMu sync.Mutex

	cfg       sessionConfig
	recording bool
	audioBuf  []byte

	router *Router

	ctx    context.Context
	cancel context.CancelFunc
}

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*session)}
}

func (sr *sessionRegistry) add(s *session) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.sessions[s.id] = s
}

func (sr *sessionRegistry) remove(id string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	delete(sr.sessions, id)
}

func (sr *sessionRegistry) len() int {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return len(sr.sessions)
}

// closeAll closes every live connection; each read loop then unwinds and
// cleans up its own session.
func (sr *sessionRegistry) closeAll() {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	for _, s := range sr.sessions {
		s.connMu.Lock()
		_ = s.conn.Close()
		s.connMu.Unlock()
	}
}

func (r *Router) handleSessionWS(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Printf("session_ws: upgrade failed: %v", err)
		captureError(req, err, "session_ws: upgrade failed")
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	s := &session{
		id:   uuid.NewString(),
		conn: conn,
		cfg: sessionConfig{
			SourceLang: r.cfg.DefaultSourceLang,
			TargetLang: r.cfg.DefaultTargetLang,
			SampleRate: r.cfg.DefaultSampleRate,
		},
		router: r,
		ctx:    ctx,
		cancel: cancel,
	}

	r.sessions.add(s)
	r.logger.Printf("session_ws: client connected: %s (total: %d)", s.id, r.sessions.len())

	s.writeFrame(map[string]any{
		"type":     "connection",
		"status":   "connected",
		"clientId": s.id,
		"message":  "connected to real-time translation server",
	})

	s.run()
}

func (s *session) run() {
	defer s.cleanup()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.router.logger.Printf("session_ws: client disconnected: %s", s.id)
			} else {
				s.router.logger.Printf("session_ws: read error for %s: %v", s.id, err)
			}
			return
		}

		// Control frames are JSON objects; anything else is raw audio.
		if msgType == websocket.BinaryMessage || len(data) == 0 || data[0] != '{' {
			s.handleAudio(data)
			continue
		}
		s.handleControl(data)
	}
}

func (s *session) handleControl(data []byte) {
	var msg controlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError("invalid message format", err.Error())
		return
	}

	switch msg.Type {
	case "config":
		s.mergeConfig(msg.Data)
		s.sendEvent("config", map[string]any{
			"status": "updated",
			"config": s.cfg,
		})

	case "start_recording":
		s.recording = true
		s.audioBuf = nil
		s.sendEvent("recording", map[string]any{
			"status":  "started",
			"message": "recording started",
		})

	case "stop_recording":
		s.recording = false
		if len(s.audioBuf) > 0 {
			s.flushAudio(true)
		}
		s.sendEvent("recording", map[string]any{
			"status":  "stopped",
			"message": "recording stopped",
		})

	case "translate_text":
		if msg.Text != "" {
			s.translateAndSend(msg.Text)
		}

	case "ping":
		s.sendEvent("pong", map[string]any{"timestamp": nowRFC3339()})

	default:
		s.sendError("unknown message type", msg.Type)
	}
}

// mergeConfig applies only the fields present in the payload; recording
// state is untouched.
func (s *session) mergeConfig(data json.RawMessage) {
	if len(data) == 0 {
		return
	}
	var p configPayload
	if err := json.Unmarshal(data, &p); err != nil {
		s.sendError("invalid config payload", err.Error())
		return
	}
	if p.SourceLang != nil {
		s.cfg.SourceLang = *p.SourceLang
	}
	if p.TargetLang != nil {
		s.cfg.TargetLang = *p.TargetLang
	}
	if p.SampleRate != nil && *p.SampleRate > 0 {
		s.cfg.SampleRate = *p.SampleRate
	}
}

// flushThreshold is the accumulated byte count that triggers an interim
// flush: flushSeconds of 16-bit PCM at the session's sample rate.
func (s *session) flushThreshold() int {
	return flushSeconds * s.cfg.SampleRate * 2
}

func (s *session) handleAudio(data []byte) {
	if !s.recording {
		return
	}
	s.audioBuf = append(s.audioBuf, data...)
	if len(s.audioBuf) >= s.flushThreshold() {
		s.flushAudio(false)
	}
}

// flushAudio hands the buffer to the transcription provider and, for a
// non-empty transcript, emits the transcript event followed by the
// translation. The buffer is reset before transcription so new audio
// accumulates cleanly.
func (s *session) flushAudio(final bool) {
	buf := s.audioBuf
	s.audioBuf = nil

	transcript, err := s.router.transcriber.Transcribe(s.ctx, buf, stt.Options{
		SampleRate: s.cfg.SampleRate,
		Language:   s.cfg.SourceLang,
	})
	if err != nil {
		s.router.logger.Printf("session_ws: transcription failed for %s: %v", s.id, err)
		s.sendError("audio processing failed", err.Error())
		return
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return
	}

	eventType := "transcript"
	if final {
		eventType = "final_transcript"
	}
	s.sendEvent(eventType, map[string]any{
		"text":      transcript,
		"language":  s.cfg.SourceLang,
		"timestamp": nowRFC3339(),
	})

	s.translateAndSend(transcript)
}

func (s *session) translateAndSend(text string) {
	translated := s.router.engine.Translate(s.ctx, text, s.cfg.SourceLang, s.cfg.TargetLang)
	s.sendEvent("translation", map[string]any{
		"originalText":   text,
		"translatedText": translated,
		"sourceLang":     s.cfg.SourceLang,
		"targetLang":     s.cfg.TargetLang,
		"timestamp":      nowRFC3339(),
	})
}

func (s *session) sendEvent(eventType string, data any) {
	s.writeFrame(event{Type: eventType, Data: data})
}

func (s *session) sendError(message, details string) {
	s.writeFrame(event{Type: "error", Data: map[string]any{
		"message":   message,
		"details":   details,
		"timestamp": nowRFC3339(),
	}})
}

// writeFrame serializes outbound sends; a failed write on a closed
// connection is discarded, never fatal.
func (s *session) writeFrame(v any) {
	s.connMu.Lock()
	err := s.conn.WriteJSON(v)
	s.connMu.Unlock()
	if err != nil {
		s.router.logger.Printf("session_ws: write failed for %s: %v", s.id, err)
	}
}

func (s *session) cleanup() {
	s.cancel()
	s.router.sessions.remove(s.id)

	s.connMu.Lock()
	_ = s.conn.Close()
	s.connMu.Unlock()

	s.router.logger.Printf("session_ws: session closed: %s (total: %d)", s.id, s.router.sessions.len())
}
