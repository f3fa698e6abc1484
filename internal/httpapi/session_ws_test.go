package httpapi

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("setting read deadline: %v", err)
	}
	var m map[string]any
	if err := conn.ReadJSON(&m); err != nil {
		t.Fatalf("reading frame: %v", err)
	}
	return m
}

func eventData(t *testing.T, frame map[string]any) map[string]any {
	t.Helper()
	data, ok := frame["data"].(map[string]any)
	if !ok {
		t.Fatalf("frame has no data object: %v", frame)
	}
	return data
}

func TestSessionConnectionGreeting(t *testing.T) {
	r := newTestRouter(RouterConfig{}, nil)
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	greeting := readFrame(t, conn)

	if greeting["type"] != "connection" || greeting["status"] != "connected" {
		t.Errorf("greeting = %v", greeting)
	}
	if id, _ := greeting["clientId"].(string); id == "" {
		t.Error("greeting is missing a clientId")
	}
	if r.sessions.len() != 1 {
		t.Errorf("registry size = %d, want 1", r.sessions.len())
	}
}

func TestSessionConfigMerge(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(RouterConfig{}, nil).Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	msg := `{"type":"config","data":{"targetLang":"es"}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	ack := readFrame(t, conn)
	if ack["type"] != "config" {
		t.Fatalf("ack type = %v, want config", ack["type"])
	}
	cfg, _ := eventData(t, ack)["config"].(map[string]any)
	if cfg["targetLang"] != "es" {
		t.Errorf("targetLang = %v, want es", cfg["targetLang"])
	}
	if cfg["sourceLang"] != "en" {
		t.Errorf("sourceLang = %v, want the untouched default en", cfg["sourceLang"])
	}
	if cfg["sampleRate"] != float64(16000) {
		t.Errorf("sampleRate = %v, want the untouched default 16000", cfg["sampleRate"])
	}
}

func TestSessionTranslateText(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(RouterConfig{}, nil).Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	msg := `{"type":"translate_text","text":"hello"}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("writing translate_text: %v", err)
	}

	frame := readFrame(t, conn)
	if frame["type"] != "translation" {
		t.Fatalf("type = %v, want translation", frame["type"])
	}
	data := eventData(t, frame)
	if data["originalText"] != "hello" {
		t.Errorf("originalText = %v, want hello", data["originalText"])
	}
	if data["translatedText"] != "مرحبا" {
		t.Errorf("translatedText = %v, want مرحبا", data["translatedText"])
	}
	if data["sourceLang"] != "en" || data["targetLang"] != "ar" {
		t.Errorf("langs = %v→%v, want en→ar", data["sourceLang"], data["targetLang"])
	}
}

func TestSessionUnknownTypeKeepsSessionAlive(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(RouterConfig{}, nil).Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"foo"}`)); err != nil {
		t.Fatalf("writing unknown type: %v", err)
	}
	errFrame := readFrame(t, conn)
	if errFrame["type"] != "error" {
		t.Fatalf("type = %v, want error", errFrame["type"])
	}
	if details := eventData(t, errFrame)["details"]; details != "foo" {
		t.Errorf("details = %v, want foo", details)
	}

	// The session must still respond after the error.
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
		t.Fatalf("writing ping: %v", err)
	}
	if pong := readFrame(t, conn); pong["type"] != "pong" {
		t.Errorf("type = %v, want pong", pong["type"])
	}
}

func TestSessionAudioFlow(t *testing.T) {
	transcriber := &fixedTranscriber{text: "hello there"}
	// sampleRate 1000 keeps the flush threshold at 4000 bytes.
	srv := httptest.NewServer(newTestRouter(RouterConfig{DefaultSampleRate: 1000}, transcriber).Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"start_recording"}`)); err != nil {
		t.Fatalf("writing start_recording: %v", err)
	}
	started := readFrame(t, conn)
	if started["type"] != "recording" || eventData(t, started)["status"] != "started" {
		t.Fatalf("frame = %v, want recording started", started)
	}

	// Below the threshold: no events yet.
	if err := conn.WriteMessage(websocket.BinaryMessage, make([]byte, 1000)); err != nil {
		t.Fatalf("writing audio: %v", err)
	}
	// Crossing the threshold triggers an interim flush.
	if err := conn.WriteMessage(websocket.BinaryMessage, make([]byte, 3000)); err != nil {
		t.Fatalf("writing audio: %v", err)
	}

	transcript := readFrame(t, conn)
	if transcript["type"] != "transcript" {
		t.Fatalf("type = %v, want transcript", transcript["type"])
	}
	if text := eventData(t, transcript)["text"]; text != "hello there" {
		t.Errorf("transcript text = %v, want hello there", text)
	}

	translation := readFrame(t, conn)
	if translation["type"] != "translation" {
		t.Fatalf("type = %v, want translation after transcript", translation["type"])
	}
	if got := eventData(t, translation)["originalText"]; got != "hello there" {
		t.Errorf("originalText = %v, want hello there", got)
	}

	opts := transcriber.seenOpts()
	if opts.SampleRate != 1000 {
		t.Errorf("transcriber sample rate = %d, want 1000", opts.SampleRate)
	}
	if opts.Language != "en" {
		t.Errorf("transcriber language = %s, want en", opts.Language)
	}
}

func TestSessionStopRecordingFlushesFinal(t *testing.T) {
	transcriber := &fixedTranscriber{text: "goodbye"}
	srv := httptest.NewServer(newTestRouter(RouterConfig{DefaultSampleRate: 1000}, transcriber).Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"start_recording"}`))
	readFrame(t, conn) // recording started

	// Below the interim threshold; flushed as final on stop.
	if err := conn.WriteMessage(websocket.BinaryMessage, make([]byte, 500)); err != nil {
		t.Fatalf("writing audio: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"stop_recording"}`)); err != nil {
		t.Fatalf("writing stop_recording: %v", err)
	}

	final := readFrame(t, conn)
	if final["type"] != "final_transcript" {
		t.Fatalf("type = %v, want final_transcript", final["type"])
	}
	translation := readFrame(t, conn)
	if translation["type"] != "translation" {
		t.Fatalf("type = %v, want translation", translation["type"])
	}
	stopped := readFrame(t, conn)
	if stopped["type"] != "recording" || eventData(t, stopped)["status"] != "stopped" {
		t.Errorf("frame = %v, want recording stopped", stopped)
	}
}

func TestSessionIgnoresAudioWhenNotRecording(t *testing.T) {
	transcriber := &fixedTranscriber{text: "should not appear"}
	srv := httptest.NewServer(newTestRouter(RouterConfig{DefaultSampleRate: 1000}, transcriber).Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	if err := conn.WriteMessage(websocket.BinaryMessage, make([]byte, 8000)); err != nil {
		t.Fatalf("writing audio: %v", err)
	}
	// A ping after the audio proves nothing was emitted for it.
	conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`))
	if frame := readFrame(t, conn); frame["type"] != "pong" {
		t.Errorf("type = %v, want pong with no transcript in between", frame["type"])
	}
}

func TestSessionRegistryCleanupOnDisconnect(t *testing.T) {
	r := newTestRouter(RouterConfig{}, nil)
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting
	if r.sessions.len() != 1 {
		t.Fatalf("registry size = %d, want 1", r.sessions.len())
	}

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for r.sessions.len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("registry size = %d after disconnect, want 0", r.sessions.len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRouterCloseTerminatesSessions(t *testing.T) {
	r := newTestRouter(RouterConfig{}, nil)
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	conn := dialWS(t, srv)
	readFrame(t, conn) // greeting

	r.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var m map[string]any
	if err := conn.ReadJSON(&m); err == nil {
		t.Error("read after Close should fail once the server drops the connection")
	}
	deadline := time.Now().Add(2 * time.Second)
	for r.sessions.len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("registry size = %d after Close, want 0", r.sessions.len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
