package translate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/phrase"
)

// Scoring weights. Empirical constants carried over from tuning against the
// bundled phrase tables; kept configurable here rather than derived.
const (
	scoreBase             = 0.5
	scoreLengthWeight     = 0.2
	scoreCoverageWeight   = 0.3
	scoreErrorPenalty     = 0.3
	scoreScriptBonus      = 0.2
	scoreCompleteBonus    = 0.2
	scoreBracketPerWord   = 0.3
	scoreUnknownPairCover = 0.5 // coverage fallback when no table exists for the pair
)

var bracketMarker = regexp.MustCompile(`\[[^\]]*\]`)

// Scorer rates candidate translations against heuristics. Pure and
// deterministic: the same inputs always produce the same score.
type Scorer struct {
	table *phrase.Table
}

// NewScorer returns a scorer that measures dictionary coverage against table.
func NewScorer(table *phrase.Table) *Scorer {
	return &Scorer{table: table}
}

// Score rates candidate as a translation of original into dst, in [0,1].
func (s *Scorer) Score(original, candidate string, src, dst lang.Code) float64 {
	if candidate == "" {
		return 0
	}

	score := scoreBase

	// Length similarity: good translations usually stay in the same ballpark.
	origLen := utf8.RuneCountInString(original)
	candLen := utf8.RuneCountInString(candidate)
	minLen, maxLen := origLen, candLen
	if candLen < origLen {
		minLen, maxLen = candLen, origLen
	}
	if maxLen > 0 {
		score += scoreLengthWeight * float64(minLen) / float64(maxLen)
	}

	// Dictionary coverage of the original's words for this pair.
	score += scoreCoverageWeight * s.coverage(original, src, dst)

	// Obvious error shapes: unresolved brackets, remote error tokens, or a
	// candidate identical to the original.
	if strings.Contains(candidate, "[") || containsErrorMarker(candidate) || candidate == original {
		score -= scoreErrorPenalty
	}

	// Script family of the target language.
	if lang.ScriptMatches(dst, candidate) {
		score += scoreScriptBonus
	}

	// Completeness: bonus when nothing stayed bracketed, density penalty
	// otherwise. Applies on top of the flat penalty above.
	brackets := len(bracketMarker.FindAllString(candidate, -1))
	if brackets == 0 {
		score += scoreCompleteBonus
	} else if words := len(strings.Fields(original)); words > 0 {
		score -= scoreBracketPerWord * float64(brackets) / float64(words)
	}

	return clamp01(score)
}

// coverage is the fraction of the original's whitespace-split words present
// as single-word keys in the pair table.
func (s *Scorer) coverage(original string, src, dst lang.Code) float64 {
	pair, ok := s.table.Pair(src, dst)
	if !ok {
		return scoreUnknownPairCover
	}
	words := strings.Fields(strings.ToLower(original))
	if len(words) == 0 {
		return 0
	}
	found := 0
	for _, w := range words {
		if _, ok := pair.Lookup(w); ok {
			found++
		}
	}
	return float64(found) / float64(len(words))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
