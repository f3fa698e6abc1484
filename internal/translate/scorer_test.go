package translate

import (
	"testing"

	"github.com/vmarik/lingo/internal/phrase"
)

func newTestScorer() *Scorer {
	tbl := phrase.New()
	tbl.AddPair("en", "ar", []phrase.Entry{
		{Source: "hello", Target: "مرحبا"},
		{Source: "friend", Target: "صديق"},
	})
	return NewScorer(tbl)
}

func TestScoreEmptyCandidate(t *testing.T) {
	s := newTestScorer()
	if got := s.Score("hello", "", "en", "ar"); got != 0 {
		t.Errorf("Score of empty candidate = %v, want 0", got)
	}
}

func TestScoreBounds(t *testing.T) {
	s := newTestScorer()
	candidates := []string{
		"مرحبا",
		"hello",
		"[hello]",
		"MYMEMORY WARNING: quota exceeded",
		"[Translation unavailable: hello my good old friend from the city]",
	}
	for _, c := range candidates {
		got := s.Score("hello", c, "en", "ar")
		if got < 0 || got > 1 {
			t.Errorf("Score(%q) = %v, out of [0,1]", c, got)
		}
	}
}

func TestScoreRanksCleanInScriptHighest(t *testing.T) {
	s := newTestScorer()
	original := "hello"

	clean := s.Score(original, "مرحبا", "en", "ar")
	echo := s.Score(original, "hello", "en", "ar")
	bracketed := s.Score(original, "[hello]", "en", "ar")
	marker := s.Score(original, "ERROR 500", "en", "ar")

	if clean < 0.9 {
		t.Errorf("clean in-script candidate scored %v, want >= 0.9", clean)
	}
	for name, got := range map[string]float64{
		"echo":      echo,
		"bracketed": bracketed,
		"marker":    marker,
	} {
		if got >= clean {
			t.Errorf("%s candidate scored %v, want below clean score %v", name, got, clean)
		}
	}
	if bracketed >= echo {
		t.Errorf("bracketed (%v) should rank below a plain echo (%v)", bracketed, echo)
	}
}

func TestScoreBracketDensityPenalty(t *testing.T) {
	s := newTestScorer()
	original := "hello friend zzq qqz"

	light := s.Score(original, "مرحبا صديق [zzq] qqz", "en", "ar")
	heavy := s.Score(original, "مرحبا [friend] [zzq] [qqz]", "en", "ar")
	if heavy >= light {
		t.Errorf("more brackets should score lower: heavy=%v light=%v", heavy, light)
	}
}

func TestScoreCoverage(t *testing.T) {
	s := newTestScorer()

	covered := s.coverage("hello friend", "en", "ar")
	if covered != 1.0 {
		t.Errorf("coverage of fully tabled words = %v, want 1.0", covered)
	}
	half := s.coverage("hello zzq", "en", "ar")
	if half != 0.5 {
		t.Errorf("coverage = %v, want 0.5", half)
	}
	if got := s.coverage("hello", "en", "zz"); got != scoreUnknownPairCover {
		t.Errorf("coverage for untabled pair = %v, want %v", got, scoreUnknownPairCover)
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := newTestScorer()
	a := s.Score("hello friend", "مرحبا صديق", "en", "ar")
	b := s.Score("hello friend", "مرحبا صديق", "en", "ar")
	if a != b {
		t.Errorf("scores differ across calls: %v vs %v", a, b)
	}
}
