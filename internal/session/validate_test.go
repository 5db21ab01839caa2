package session

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", DefaultSessionName, false},
		{"demo run", "demo-2", false},
		{"underscore", "qa_ngeima", false},
		{"single char", "x", false},
		{"max length", strings.Repeat("w", 64), false},
		{"empty", "", true},
		{"uppercase", "Demo", true},
		{"space", "demo run", true},
		{"dot", "demo.db", true},
		{"too long", strings.Repeat("w", 65), true},
		{"at sign", "me@phone", true},
		{"path escape", "../main", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", tt.input, err)
			}
		})
	}
}
