package translate

import (
	"context"

	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/lexicon"
)

// LexicalAdapter wraps the phrase-table resolver as the last-priority
// translation strategy. It never fails with an error; unknown pairs and
// unresolvable text simply yield no candidate.
type LexicalAdapter struct {
	resolver *lexicon.Resolver
}

// NewLexical returns an adapter backed by resolver.
func NewLexical(resolver *lexicon.Resolver) *LexicalAdapter {
	return &LexicalAdapter{resolver: resolver}
}

func (a *LexicalAdapter) Name() string   { return "lexicon" }
func (a *LexicalAdapter) Method() Method { return MethodLexical }

func (a *LexicalAdapter) Attempt(_ context.Context, text string, src, dst lang.Code) (string, bool) {
	result, ok := a.resolver.Resolve(text, src, dst)
	if !ok {
		return "", false
	}
	// Echo check still applies: a decomposition that reproduces the input
	// adds nothing over the original.
	if !acceptableLexical(result, text) {
		return "", false
	}
	return result, true
}

func acceptableLexical(result, input string) bool {
	return result != "" && result != input
}
