package conversation

import (
	"testing"
	"time"
)

func TestEscapeMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>", "&lt;script&gt;"},
		{"a & b", "a &amp; b"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
		{"&lt;", "&amp;lt;"},
		{"🙂", "🙂"},
	}
	for _, tt := range tests {
		if got := EscapeMarkup(tt.in); got != tt.want {
			t.Errorf("EscapeMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortTime(t *testing.T) {
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "00:00"},
		{time.Date(2026, 1, 1, 7, 3, 59, 0, time.UTC), "07:03"},
		{time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC), "23:59"},
	}
	for _, tt := range tests {
		if got := ShortTime(tt.at); got != tt.want {
			t.Errorf("ShortTime(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}
