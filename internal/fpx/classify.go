package fpx

import "regexp"

var (
	appleDeviceRe   = regexp.MustCompile(`iPad|iPhone|iPod`)
	safariVersionRe = regexp.MustCompile(`Version/(\d+).+?Safari`)
	mobileUARe      = regexp.MustCompile(`Mobile|webOS`)
	ipadUARe        = regexp.MustCompile(`iPad`)
)

// IsCommon reports whether an attribute payload looks like a generic Apple or
// Safari signature. Those are shared by too many devices to identify a unique
// user, so reviewers weigh matches on them accordingly.
func IsCommon(attrs AttributeMap) bool {
	if len(attrs) == 0 {
		return false
	}
	platform := attrString(attrs, "navigator_platform")
	ua := userAgent(attrs)
	return appleDeviceRe.MatchString(platform) ||
		safariVersionRe.MatchString(ua) ||
		appleDeviceRe.MatchString(ua)
}

// DeviceType classifies the payload's user agent as "mobile" or "desktop".
// iPads count as desktop.
func DeviceType(attrs AttributeMap) string {
	ua := userAgent(attrs)
	if mobileUARe.MatchString(ua) && !ipadUARe.MatchString(ua) {
		return "mobile"
	}
	return "desktop"
}

func userAgent(attrs AttributeMap) string {
	if v := attrString(attrs, "User-Agent"); v != "" {
		return v
	}
	return attrString(attrs, "user_agent")
}

func attrString(attrs AttributeMap, key string) string {
	v, ok := attrs[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
