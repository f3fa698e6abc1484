// Package stt defines the transcription provider consumed by the session
// pipeline. The provider is an opaque collaborator: the pipeline only needs
// a transcript string back, or an empty string for silence.
package stt

import (
	"context"

	"github.com/vmarik/lingo/internal/lang"
)

// Options describe the audio handed to a transcription request.
type Options struct {
	SampleRate int       // samples per second, 16-bit PCM assumed
	Language   lang.Code // expected spoken language
}

// Transcriber converts accumulated audio into text.
type Transcriber interface {
	// Transcribe returns the transcript for the audio, or an empty string
	// when no meaningful speech was detected. Errors are recoverable and
	// surface to the client as error events, never as disconnects.
	Transcribe(ctx context.Context, audio []byte, opts Options) (string, error)
}
