package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
)

func resolveAll(t *testing.T, message string, window int) []Match {
	t.Helper()
	lex := lexicon.Default()
	m, err := NewMatcher(lex)
	require.NoError(t, err)
	r := NewNegationResolver(lex, window)

	text := Normalize(message)
	matches, err := m.Match(text)
	require.NoError(t, err)
	resolved, err := r.Resolve(matches, text)
	require.NoError(t, err)
	return resolved
}

func TestNegationDirectCue(t *testing.T) {
	resolved := resolveAll(t, "I don't want to die", 0)
	require.Len(t, resolved, 1)
	require.True(t, resolved[0].Negated, "cue directly before the match must negate it")
}

func TestNegationMultiWordCue(t *testing.T) {
	resolved := resolveAll(t, "there is no longer a reason to hurt myself", 0)
	require.Len(t, resolved, 1)
	// "no longer" sits four tokens before "hurt myself", inside the window.
	require.True(t, resolved[0].Negated)
}

func TestNegationScopeEndsAtSentenceBoundary(t *testing.T) {
	resolved := resolveAll(t, "I'm not sure anymore. I want to die", 0)
	require.Len(t, resolved, 1)
	require.False(t, resolved[0].Negated, "cue in a previous sentence must not negate")
}

func TestNegationScopeEndsAtClausePivot(t *testing.T) {
	resolved := resolveAll(t, "I said never but I want to die", 0)
	require.Len(t, resolved, 1)
	require.False(t, resolved[0].Negated, "cue before 'but' must not cross the pivot")
}

func TestNegationWindowBound(t *testing.T) {
	// Six filler tokens put the cue outside the five-token window.
	resolved := resolveAll(t, "never did the cat or the dog once hurt myself", 5)
	require.Len(t, resolved, 1)
	require.False(t, resolved[0].Negated)
}

func TestNegationOnlyMarksTheMatchInScope(t *testing.T) {
	resolved := resolveAll(t, "I don't want to die, I just feel worthless", 0)
	require.Len(t, resolved, 2)

	byCategory := map[string]Match{}
	for _, m := range resolved {
		byCategory[m.Category] = m
	}
	require.True(t, byCategory["immediate_risk"].Negated)
	require.False(t, byCategory["self_harm"].Negated, "negation must not spill over the comma onto the second signal")
}

func TestNegationSkipsOptedOutCategories(t *testing.T) {
	lex := lexicon.Default()
	for i := range lex.Categories {
		lex.Categories[i].CheckNegation = false
	}
	m, err := NewMatcher(lex)
	require.NoError(t, err)
	r := NewNegationResolver(lex, 0)

	text := Normalize("I don't want to die")
	matches, err := m.Match(text)
	require.NoError(t, err)
	resolved, err := r.Resolve(matches, text)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.False(t, resolved[0].Negated)
}

func TestNegationNoMatchesPassThrough(t *testing.T) {
	lex := lexicon.Default()
	r := NewNegationResolver(lex, 0)
	resolved, err := r.Resolve(nil, "anything")
	require.NoError(t, err)
	require.Empty(t, resolved)
}

func TestNegationDoesNotModifyInput(t *testing.T) {
	lex := lexicon.Default()
	m, err := NewMatcher(lex)
	require.NoError(t, err)
	r := NewNegationResolver(lex, 0)

	text := Normalize("I don't want to die")
	matches, err := m.Match(text)
	require.NoError(t, err)
	_, err = r.Resolve(matches, text)
	require.NoError(t, err)
	require.False(t, matches[0].Negated, "Resolve must not mutate the input slice")
}
