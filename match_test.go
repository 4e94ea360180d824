package langx_test

import (
	"testing"

	"github.com/mickamy/langx"
)

func TestPreferred(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty header", input: "", want: ""},
		{name: "single tag", input: "ja", want: "ja"},
		{name: "first of equal qualities", input: "en-US, en-GB", want: "en-US"},
		{name: "highest quality not first", input: "en;q=0.8,ja", want: "ja"},
		{name: "only empty names", input: ";q", want: ""},
		{name: "full header", input: mockAcceptLanguage, want: "en-US"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := langx.Preferred(tt.input); got != tt.want {
				t.Errorf("Preferred(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	catalog := []string{"en-US", "ja", "de"}

	tests := []struct {
		name      string
		header    string
		supported []string
		fallback  string
		want      string
	}{
		{
			name:      "exact match wins",
			header:    "ja, en-US;q=0.9",
			supported: catalog,
			fallback:  "en-US",
			want:      "ja",
		},
		{
			name:      "related region matches",
			header:    "en-GB",
			supported: catalog,
			fallback:  "de",
			want:      "en-US",
		},
		{
			name:      "quality order respected",
			header:    "de;q=0.5, ja;q=0.9",
			supported: catalog,
			fallback:  "en-US",
			want:      "ja",
		},
		{
			name:      "unrelated language falls back",
			header:    "pt-BR",
			supported: catalog,
			fallback:  "en-US",
			want:      "en-US",
		},
		{
			name:      "empty header falls back",
			header:    "",
			supported: catalog,
			fallback:  "ja",
			want:      "ja",
		},
		{
			name:      "unparsable header falls back",
			header:    "not a valid header!!!",
			supported: catalog,
			fallback:  "en-US",
			want:      "en-US",
		},
		{
			name:      "empty catalog falls back",
			header:    "ja",
			supported: nil,
			fallback:  "en-US",
			want:      "en-US",
		},
		{
			name:      "malformed catalog entry falls back",
			header:    "ja",
			supported: []string{"ja", "not-a-tag!!"},
			fallback:  "en-US",
			want:      "en-US",
		},
		{
			name:      "caller spelling preserved",
			header:    "en-us",
			supported: []string{"en-us"},
			fallback:  "de",
			want:      "en-us",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := langx.Match(tt.header, tt.supported, tt.fallback)
			if got != tt.want {
				t.Errorf("Match(%q, %v, %q) = %q, want %q", tt.header, tt.supported, tt.fallback, got, tt.want)
			}
		})
	}
}
