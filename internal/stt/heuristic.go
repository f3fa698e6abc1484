package stt

import (
	"context"
	"encoding/binary"
	"math/rand"

	"github.com/vmarik/lingo/internal/lang"
)

// minAudioBytes is the smallest buffer worth analyzing; anything shorter is
// treated as silence.
const minAudioBytes = 1000

// audioMetrics summarize a 16-bit PCM buffer.
type audioMetrics struct {
	strength    float64 // average amplitude, 0..1
	consistency float64 // low sample-to-sample variation, 0..1
	duration    float64 // seconds
}

// Heuristic is a stand-in transcriber that picks a canned phrase based on
// amplitude characteristics of the buffer. It exists so the pipeline can run
// end to end without a real recognizer; substitute any Transcriber for
// production use.
type Heuristic struct{}

// NewHeuristic returns the amplitude-heuristic stand-in transcriber.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Transcribe never fails; quiet or too-short audio yields an empty string.
func (h *Heuristic) Transcribe(_ context.Context, audio []byte, opts Options) (string, error) {
	if len(audio) < minAudioBytes {
		return "", nil
	}

	sampleRate := opts.SampleRate
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	m := analyze(audio, sampleRate)

	switch {
	case m.strength > 0.8 && m.consistency > 0.7:
		return pickPhrase(opts.Language, confidentPhrases, m), nil
	case m.strength > 0.5 && m.consistency > 0.5:
		return pickPhrase(opts.Language, moderatePhrases, m), nil
	case m.strength > 0.2:
		return pickPhrase(opts.Language, weakPhrases, m), nil
	}
	return "", nil
}

func analyze(buf []byte, sampleRate int) audioMetrics {
	if len(buf) < 2 {
		return audioMetrics{}
	}

	var sum, consistency float64
	var prev float64
	count := 0

	for i := 0; i+1 < len(buf); i += 2 {
		sample := float64(int16(binary.LittleEndian.Uint16(buf[i : i+2])))
		if sample < 0 {
			sample = -sample
		}
		sum += sample
		if count > 0 {
			variation := (sample - prev) / 32768
			if variation < 0 {
				variation = -variation
			}
			consistency += 1 - variation
		}
		prev = sample
		count++
	}

	m := audioMetrics{
		strength:    sum / float64(count) / 32768,
		consistency: consistency / float64(count),
		duration:    float64(len(buf)) / float64(sampleRate*2),
	}
	if m.strength > 1 {
		m.strength = 1
	}
	if m.consistency > 1 {
		m.consistency = 1
	}
	return m
}

// pickPhrase selects from the bank, biasing longer audio toward the longer
// phrases at the front of each bank.
func pickPhrase(language lang.Code, bank []string, m audioMetrics) string {
	_ = language // only an English bank ships; the stand-in ignores the language

	var idx int
	switch {
	case m.duration > 3:
		idx = rand.Intn(minInt(5, len(bank)))
	case m.duration > 1.5:
		idx = rand.Intn(minInt(3, len(bank))) + 2
	default:
		idx = rand.Intn(minInt(3, len(bank))) + 5
	}
	if idx >= len(bank) {
		idx = len(bank) - 1
	}
	return bank[idx]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var confidentPhrases = []string{
	"Hello, how are you today?",
	"I need help with translation",
	"This is a test of the speech system",
	"The weather is beautiful today",
	"Thank you for your assistance",
	"Can you help me with this?",
	"I would like to learn more",
	"This application works very well",
}

var moderatePhrases = []string{
	"Hello there",
	"Good morning",
	"How are you?",
	"Thank you",
	"Yes, please",
	"That sounds good",
	"I understand",
	"Let me think",
}

var weakPhrases = []string{
	"Hello",
	"Yes",
	"No",
	"Thanks",
	"Okay",
	"Sure",
	"Maybe",
	"Good",
}
