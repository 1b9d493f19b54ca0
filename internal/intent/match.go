package intent

import (
	"strings"

	"github.com/msomdec/swasth-ai/internal/domain"
)

// Fallback is returned when no intent matches.
const Fallback = "I'm not sure about that. Try asking about flu, headache, or covid."

// Match returns the first response of the first intent that has a pattern
// contained in message. Intents and their patterns are tried in order and
// the first hit wins, even if a later pattern is a longer match.
func Match(message string, intents []domain.Intent) string {
	message = strings.ToLower(message)
	for _, in := range intents {
		if len(in.Responses) == 0 {
			continue
		}
		for _, p := range in.Patterns {
			if strings.Contains(message, strings.ToLower(p)) {
				return in.Responses[0]
			}
		}
	}
	return Fallback
}
