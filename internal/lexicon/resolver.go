// Package lexicon implements the local phrase-table translation fallback:
// exact lookup, fuzzy matching, substring containment and word-by-word
// decomposition, in that order.
package lexicon

import (
	"strings"
	"unicode"

	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/phrase"
)

// fuzzyThreshold is the minimum edit-distance similarity for a fuzzy phrase
// match. Phrases of 3 characters or fewer are never fuzzy-matched.
const fuzzyThreshold = 0.8

// decompositionMinResolved is the fraction of input words that must resolve
// for a decomposed translation to be accepted.
const decompositionMinResolved = 0.6

// maxPhraseWords bounds the greedy lookahead during decomposition.
const maxPhraseWords = 5

// Resolver translates text using a phrase table. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	table *phrase.Table
}

// NewResolver returns a resolver backed by table.
func NewResolver(table *phrase.Table) *Resolver {
	return &Resolver{table: table}
}

var quoteNormalizer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
)

// Normalize prepares text for table lookups: trim, collapse whitespace,
// normalize curly quotes and lowercase.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Join(strings.Fields(text), " ")
	text = quoteNormalizer.Replace(text)
	return strings.ToLower(text)
}

// Resolve translates text for the given language pair. The second return is
// false when the pair has no table or no step produces an acceptable result.
func (r *Resolver) Resolve(text string, src, dst lang.Code) (string, bool) {
	pair, ok := r.table.Pair(src, dst)
	if !ok {
		return "", false
	}

	normalized := Normalize(text)
	if normalized == "" {
		return "", false
	}

	// Step 1: exact full-string lookup.
	if tr, ok := pair.Lookup(normalized); ok {
		return tr, true
	}

	// Step 2: fuzzy match against longer phrases, first hit in table order.
	if tr, ok := fuzzyMatch(normalized, pair); ok {
		return tr, true
	}

	// Step 3: first multi-word phrase wholly contained in the input.
	for _, e := range pair.Entries() {
		if strings.Contains(e.Source, " ") && strings.Contains(normalized, e.Source) {
			return e.Target, true
		}
	}

	// Step 4: word-by-word decomposition.
	return r.decompose(normalized, pair, src, dst)
}

func fuzzyMatch(text string, pair *phrase.Pair) (string, bool) {
	for _, e := range pair.Entries() {
		if len(e.Source) <= 3 {
			continue
		}
		if similarity(text, e.Source) >= fuzzyThreshold {
			return e.Target, true
		}
	}
	return "", false
}

// similarity is the edit-distance ratio (maxLen - distance) / maxLen over
// runes of the two strings.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}
	return float64(longest-levenshtein(ra, rb)) / float64(longest)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// decompose scans word by word, greedily consuming the longest table phrase
// at each position, then single words, morphological variants and the
// common-words table. Unresolved words stay bracketed; the result is accepted
// only when enough of the input resolved.
func (r *Resolver) decompose(text string, pair *phrase.Pair, src, dst lang.Code) (string, bool) {
	words := strings.Fields(stripPunct(text))
	if len(words) == 0 {
		return "", false
	}

	out := make([]string, 0, len(words))
	resolved := 0

	for i := 0; i < len(words); {
		if tr, consumed := longestPhraseAt(words, i, pair); consumed > 0 {
			out = append(out, tr)
			resolved += consumed
			i += consumed
			continue
		}

		word := words[i]
		if tr, ok := pair.Lookup(word); ok {
			out = append(out, tr)
			resolved++
		} else if tr := r.variant(word, pair); tr != "" {
			out = append(out, tr)
			resolved++
		} else if tr, ok := r.table.CommonWord(word, src, dst); ok {
			out = append(out, tr)
			resolved++
		} else {
			out = append(out, "["+word+"]")
		}
		i++
	}

	if float64(resolved) < decompositionMinResolved*float64(len(words)) {
		return "", false
	}

	result := strings.Join(out, " ")
	if result == text {
		return "", false
	}
	return result, true
}

// longestPhraseAt tries multi-word phrases starting at position i, longest
// first, and returns the translation and the number of words consumed.
func longestPhraseAt(words []string, i int, pair *phrase.Pair) (string, int) {
	limit := i + maxPhraseWords
	if limit > len(words) {
		limit = len(words)
	}
	for j := limit; j > i+1; j-- {
		if tr, ok := pair.Lookup(strings.Join(words[i:j], " ")); ok {
			return tr, j - i
		}
	}
	return "", 0
}

// variant tries common English morphological transformations against the
// table: stripped plural/tense/comparative suffixes, then added ones.
func (r *Resolver) variant(word string, pair *phrase.Pair) string {
	candidates := make([]string, 0, 10)
	for _, suffix := range []string{"s", "es", "ed", "ing", "er", "est"} {
		if v := strings.TrimSuffix(word, suffix); v != word {
			candidates = append(candidates, v)
		}
	}
	if strings.HasSuffix(word, "ies") {
		candidates = append(candidates, strings.TrimSuffix(word, "ies")+"y")
	}
	candidates = append(candidates, word+"s", word+"ed", word+"ing")

	for _, c := range candidates {
		if tr, ok := pair.Lookup(c); ok {
			return tr
		}
	}
	return ""
}

func stripPunct(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
