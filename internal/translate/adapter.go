package translate

import (
	"context"
	"strings"

	"github.com/vmarik/lingo/internal/lang"
)

// Method tags where a candidate came from.
type Method int

const (
	MethodRemote Method = iota
	MethodLexical
)

func (m Method) String() string {
	if m == MethodLexical {
		return "lexical"
	}
	return "remote"
}

// Candidate is one adapter's translation output, scored before selection.
type Candidate struct {
	Text    string
	Method  Method
	Adapter string
	Score   float64
}

// Adapter is a single translation strategy. Attempt returns false instead of
// an error for any failure: timeouts, bad responses, echoes of the input and
// remote error markers are all absorbed.
type Adapter interface {
	Name() string
	Method() Method
	Attempt(ctx context.Context, text string, src, dst lang.Code) (string, bool)
}

// errorMarkers flag remote responses that are service errors dressed up as
// translations (quota warnings, API limit notices and the like).
var errorMarkers = []string{
	"MYMEMORY WARNING",
	"QUOTA EXCEEDED",
	"API LIMIT",
	"ERROR",
	"FAILED",
	"INVALID",
}

// containsErrorMarker reports whether text embeds a known remote error token.
func containsErrorMarker(text string) bool {
	upper := strings.ToUpper(text)
	for _, marker := range errorMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// acceptable rejects empty responses, error markers and verbatim echoes of
// the input.
func acceptable(result, input string) bool {
	result = strings.TrimSpace(result)
	if result == "" || result == input {
		return false
	}
	return !containsErrorMarker(result)
}
