package service_test

import (
	"testing"

	"github.com/msomdec/swasth-ai/internal/service"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "en"},
		{"  ", "en"},
		{"EN", "en"},
		{"hi", "hi"},
		{"pt-br", "pt-BR"},
		{"en-us", "en-US"},
		{"not a tag!", "not a tag!"},
	}
	for _, tt := range tests {
		if got := service.NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"en", true},
		{"en-GB", true},
		{"EN-us", true},
		{"hi", false},
		{"ta", false},
		{"garbage!!", false},
	}
	for _, tt := range tests {
		if got := service.IsEnglish(tt.in); got != tt.want {
			t.Errorf("IsEnglish(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
