package main

import "testing"

func TestIsDevMode(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{"", false},
		{"release", false},
		{"debug", true},
		{"test", true},
	}
	for _, tt := range tests {
		t.Setenv("GIN_MODE", tt.mode)
		if got := isDevMode(); got != tt.want {
			t.Errorf("isDevMode() with GIN_MODE=%q = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
