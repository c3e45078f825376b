package interval

import (
	"strings"
	"testing"
)

func TestSeconds_Supported(t *testing.T) {
	tests := []struct {
		label    string
		expected int64
	}{
		{"1d", 86400},
		{"5d", 5 * 86400},
		{"1wk", 7 * 86400},
		{"1mo", 30 * 86400},
		{"3mo", 90 * 86400},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Seconds(tt.label); got != tt.expected {
				t.Errorf("Seconds(%q) = %d, want %d", tt.label, got, tt.expected)
			}
		})
	}
}

func TestSeconds_Unsupported(t *testing.T) {
	labels := []string{"", "2d", "1D", "1 d", "1w", "1wk ", "1y", "max"}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			if got := Seconds(label); got != 0 {
				t.Errorf("Seconds(%q) = %d, want 0", label, got)
			}
		})
	}
}

func TestValidate_Accepted(t *testing.T) {
	for _, label := range []string{"1d", "5d", "1wk", "1mo", "3mo"} {
		t.Run(label, func(t *testing.T) {
			if err := Validate(label); err != nil {
				t.Errorf("Validate(%q) returned unexpected error: %v", label, err)
			}
		})
	}
}

func TestValidate_Rejected(t *testing.T) {
	labels := []string{"", "2d", "1D", "5D", "1WK", "1Mo", "3MO", " 1d", "1d ", "1h", "1y"}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			err := Validate(label)
			if err == nil {
				t.Fatalf("Validate(%q) expected error, got nil", label)
			}

			invalid, ok := err.(*InvalidIntervalError)
			if !ok {
				t.Fatalf("Validate(%q) error type = %T, want *InvalidIntervalError", label, err)
			}
			if invalid.Label != label {
				t.Errorf("InvalidIntervalError.Label = %q, want %q", invalid.Label, label)
			}
		})
	}
}

func TestValidate_ErrorListsSupported(t *testing.T) {
	err := Validate("2d")
	if err == nil {
		t.Fatal("Validate(\"2d\") expected error, got nil")
	}

	// The message is shown to the user, so every supported label must appear
	for _, label := range []string{"1d", "5d", "1wk", "1mo", "3mo"} {
		if !strings.Contains(err.Error(), label) {
			t.Errorf("error message missing supported interval %q: %s", label, err.Error())
		}
	}
}

func TestSupported_Sorted(t *testing.T) {
	labels := Supported()

	if len(labels) != 5 {
		t.Fatalf("Supported() returned %d labels, want 5", len(labels))
	}

	for i := 1; i < len(labels); i++ {
		if labels[i-1] >= labels[i] {
			t.Errorf("Supported() not sorted: %q before %q", labels[i-1], labels[i])
		}
	}
}
