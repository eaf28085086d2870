package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{250 * time.Millisecond, "250ms"},
		{12 * time.Second, "12s"},
		{90 * time.Second, "1m30s"},
		{28 * time.Hour, "1d4h"},
		{24 * time.Hour, "1d"},
		{time.Hour + time.Second, "1h1s"},
	}
	for _, tc := range cases {
		if got := SmartDurationFormat(tc.in); got != tc.want {
			t.Errorf("SmartDurationFormat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
