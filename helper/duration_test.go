package helper

import (
	"testing"
	"time"
)

func TestResolveDuration(t *testing.T) {
	cases := []struct {
		label string
		want  time.Duration
	}{
		{"15min", 15 * time.Minute},
		{"30min", 30 * time.Minute},
		{"45min", 45 * time.Minute},
		{"1h", time.Hour},
		{"", time.Hour},
		{"2h", time.Hour},
		{"90min", time.Hour},
		{"garbage", time.Hour},
	}

	for _, tc := range cases {
		t.Run("label "+tc.label, func(t *testing.T) {
			if got := ResolveDuration(tc.label); got != tc.want {
				t.Fatalf("ResolveDuration(%q) = %v, want %v", tc.label, got, tc.want)
			}
		})
	}
}
