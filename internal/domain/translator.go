package domain

import "context"

// Translator converts text between languages. sourceLang may be "auto"
// when the caller does not know the input language.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, destLang string) (string, error)
}
