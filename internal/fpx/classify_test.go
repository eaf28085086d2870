package fpx

import "testing"

func TestIsCommon(t *testing.T) {
	cases := []struct {
		name  string
		attrs AttributeMap
		want  bool
	}{
		{"empty", nil, false},
		{"iphone platform", AttributeMap{"navigator_platform": "iPhone"}, true},
		{"ipad platform", AttributeMap{"navigator_platform": "iPad"}, true},
		{"ipod platform", AttributeMap{"navigator_platform": "iPod touch"}, true},
		{"mac platform", AttributeMap{"navigator_platform": "MacIntel"}, false},
		{
			"generic safari ua",
			AttributeMap{"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Safari/605.1.15"},
			true,
		},
		{
			"ios device in ua",
			AttributeMap{"user_agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15"},
			true,
		},
		{
			"chrome desktop ua",
			AttributeMap{"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"},
			false,
		},
		{"non-string values", AttributeMap{"navigator_platform": 42, "User-Agent": true}, false},
	}
	for _, tc := range cases {
		if got := IsCommon(tc.attrs); got != tc.want {
			t.Errorf("%s: IsCommon = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDeviceType(t *testing.T) {
	cases := []struct {
		name  string
		attrs AttributeMap
		want  string
	}{
		{
			"iphone",
			AttributeMap{"User-Agent": "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) Mobile/15E148 Safari/604.1"},
			"mobile",
		},
		{
			"android",
			AttributeMap{"User-Agent": "Mozilla/5.0 (Linux; Android 13) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36"},
			"mobile",
		},
		{
			"ipad is desktop",
			AttributeMap{"User-Agent": "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) Mobile/15E148 Safari/604.1"},
			"desktop",
		},
		{
			"desktop chrome",
			AttributeMap{"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36"},
			"desktop",
		},
		{
			"lowercase key fallback",
			AttributeMap{"user_agent": "Mozilla/5.0 (webOS/1.4.0; U) Pre/1.0"},
			"mobile",
		},
		{"no user agent", AttributeMap{"screen": "1920x1080"}, "desktop"},
	}
	for _, tc := range cases {
		if got := DeviceType(tc.attrs); got != tc.want {
			t.Errorf("%s: DeviceType = %q, want %q", tc.name, got, tc.want)
		}
	}
}
