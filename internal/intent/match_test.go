package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/intent"
)

func TestMatch_FirstPatternHit(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"fever", "flu"}, Responses: []string{"Rest and hydrate."}},
	}

	assert.Equal(t, "Rest and hydrate.", intent.Match("i have a flu", intents))
}

func TestMatch_NoMatchReturnsFallback(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"fever", "flu"}, Responses: []string{"Rest and hydrate."}},
	}

	assert.Equal(t, intent.Fallback, intent.Match("xyzzy unrelated text", intents))
}

func TestMatch_EmptyIntentsReturnsFallback(t *testing.T) {
	assert.Equal(t, intent.Fallback, intent.Match("fever", nil))
}

func TestMatch_EarliestIntentWins(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"head"}, Responses: []string{"first"}},
		{Patterns: []string{"headache"}, Responses: []string{"second"}},
	}

	// The later intent has the longer, more specific pattern but is never consulted.
	assert.Equal(t, "first", intent.Match("bad headache today", intents))
}

func TestMatch_PatternOrderWithinIntentIrrelevantToResult(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"cough", "cold"}, Responses: []string{"cough-cold", "never used"}},
		{Patterns: []string{"cold"}, Responses: []string{"other"}},
	}

	assert.Equal(t, "cough-cold", intent.Match("a cold", intents))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"Covid"}, Responses: []string{"Get tested."}},
	}

	tests := []struct {
		name    string
		message string
	}{
		{"lower", "i think i have covid"},
		{"upper", "I THINK I HAVE COVID"},
		{"mixed", "Maybe CoViD?"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "Get tested.", intent.Match(tc.message, intents))
		})
	}
}

func TestMatch_SubstringNotWord(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"flu"}, Responses: []string{"flu advice"}},
	}

	// Containment is literal, so "fluid" contains "flu".
	assert.Equal(t, "flu advice", intent.Match("drink more fluids", intents))
}

func TestMatch_SkipsIntentWithoutResponses(t *testing.T) {
	intents := []domain.Intent{
		{Patterns: []string{"fever"}},
		{Patterns: []string{"fever"}, Responses: []string{"second"}},
	}

	assert.Equal(t, "second", intent.Match("fever", intents))
}

func TestMatch_BuiltInIntents(t *testing.T) {
	intents := intent.Load("")

	assert.Contains(t, intent.Match("I have a high fever", intents), "fever or flu")
	assert.Contains(t, intent.Match("my head hurts", intents), "headache")
	assert.Equal(t, intent.Fallback, intent.Match("xyzzy unrelated text", intents))
}
