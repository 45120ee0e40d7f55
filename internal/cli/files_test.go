package cli

import (
	"testing"
	"time"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"zero", 0, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"one minute", time.Minute, "1m ago"},
		{"rounds minutes down", 5*time.Minute + 59*time.Second, "5m ago"},
		{"last minute of the hour", 59 * time.Minute, "59m ago"},
		{"one hour", time.Hour, "1h ago"},
		{"last hour of the day", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"one day", 24 * time.Hour, "1d ago"},
		{"ten days", 240 * time.Hour, "10d ago"},
		{"modified in the future", -time.Hour, "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAge(now.Add(-tt.age), now); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
