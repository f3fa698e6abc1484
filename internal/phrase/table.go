// Package phrase holds the bilingual phrase tables used as the local
// translation fallback. Tables preserve construction order: longer phrases
// are registered before shorter ones so longest-match-first lookups stay
// stable across iterations.
package phrase

import "github.com/vmarik/lingo/internal/lang"

// Entry maps one normalized source phrase to its target-language rendering.
type Entry struct {
	Source string
	Target string
}

// Pair is the ordered phrase table for a single language pair.
type Pair struct {
	entries []Entry
	index   map[string]string
}

// Lookup returns the exact translation for a normalized source phrase.
func (p *Pair) Lookup(source string) (string, bool) {
	v, ok := p.index[source]
	return v, ok
}

// Entries returns the table in construction order.
func (p *Pair) Entries() []Entry {
	return p.entries
}

// Len returns the number of entries in the pair table.
func (p *Pair) Len() int { return len(p.entries) }

// Table partitions phrase entries per language pair, with a secondary
// common-words table consulted during word-by-word decomposition.
type Table struct {
	pairs  map[string]*Pair
	common map[string]map[string]string
}

// New returns an empty table.
func New() *Table {
	return &Table{
		pairs:  make(map[string]*Pair),
		common: make(map[string]map[string]string),
	}
}

func pairKey(src, dst lang.Code) string {
	return string(src) + "-" + string(dst)
}

// AddPair registers entries for a language pair, appending in order.
// Later duplicates of a source phrase do not displace the first translation.
func (t *Table) AddPair(src, dst lang.Code, entries []Entry) {
	p, ok := t.pairs[pairKey(src, dst)]
	if !ok {
		p = &Pair{index: make(map[string]string)}
		t.pairs[pairKey(src, dst)] = p
	}
	for _, e := range entries {
		if _, dup := p.index[e.Source]; dup {
			continue
		}
		p.entries = append(p.entries, e)
		p.index[e.Source] = e.Target
	}
}

// AddCommon registers secondary common-word mappings for a language pair.
func (t *Table) AddCommon(src, dst lang.Code, words map[string]string) {
	key := pairKey(src, dst)
	if t.common[key] == nil {
		t.common[key] = make(map[string]string)
	}
	for w, tr := range words {
		t.common[key][w] = tr
	}
}

// Pair returns the ordered table for a language pair, if one exists.
func (t *Table) Pair(src, dst lang.Code) (*Pair, bool) {
	p, ok := t.pairs[pairKey(src, dst)]
	return p, ok
}

// CommonWord consults the secondary common-words table for a pair.
func (t *Table) CommonWord(word string, src, dst lang.Code) (string, bool) {
	m, ok := t.common[pairKey(src, dst)]
	if !ok {
		return "", false
	}
	v, ok := m[word]
	return v, ok
}

// Default builds the bundled English↔Arabic tables. The reverse direction is
// generated by flipping the forward entries, as the shipped data set only
// curates en→ar.
func Default() *Table {
	t := New()
	t.AddPair("en", "ar", enAr)
	reversed := make([]Entry, 0, len(enAr))
	for _, e := range enAr {
		reversed = append(reversed, Entry{Source: e.Target, Target: e.Source})
	}
	t.AddPair("ar", "en", reversed)
	t.AddCommon("en", "ar", enArCommon)
	return t
}
