// Package scheme turns free-text stylist completions into structured outfit
// schemes. Every exported function is total: malformed input degrades to
// defaults or synthesized schemes rather than an error.
package scheme

import (
	"regexp"
	"strings"
)

// DefaultColor is returned whenever a color token cannot be resolved.
const DefaultColor = "#CCCCCC"

var reHexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// colorTable is read-only after init.
var colorTable = map[string]string{
	"红色": "#FF4444", "红": "#FF4444",
	"蓝色": "#4444FF", "蓝": "#4444FF",
	"绿色": "#44FF44", "绿": "#44FF44",
	"黄色": "#FFFF44", "黄": "#FFFF44",
	"黑色": "#333333", "黑": "#333333",
	"白色": "#FFFFFF", "白": "#FFFFFF",
	"灰色": "#888888", "灰": "#888888",
	"粉色": "#FF88CC", "粉": "#FF88CC",
	"紫色": "#8844FF", "紫": "#8844FF",
	"橙色": "#FF8844", "橙": "#FF8844",
	"棕色": "#8B4513", "棕": "#8B4513",
	"深蓝": "#000080", "深蓝色": "#000080",
	"浅蓝": "#87CEEB", "浅蓝色": "#87CEEB",
	"浅粉": "#FFB6C1", "浅粉色": "#FFB6C1",
	"深红": "#8B0000", "深红色": "#8B0000",
	"浅绿": "#90EE90", "浅绿色": "#90EE90",
	"深绿": "#006400", "深绿色": "#006400",
	"深棕": "#5C3317", "深棕色": "#5C3317",
	"米色": "#F5F5DC", "米": "#F5F5DC",
	"卡其色": "#F0E68C", "卡其": "#F0E68C",
	"驼色":  "#DEB887", "驼": "#DEB887",
	"咖啡色": "#6F4E37", "咖啡": "#6F4E37",
	"藏青色": "#191970", "藏青": "#191970",
	"藏蓝色": "#191970", "藏蓝": "#191970",
	"天蓝色": "#87CEEB", "天蓝": "#87CEEB",
	"海军蓝": "#000080", "海军": "#000080",
	"军绿色": "#556B2F", "军绿": "#556B2F",
	"深灰色": "#555555", "深灰": "#555555",
	"浅灰色": "#CCCCCC", "浅灰": "#CCCCCC",
	"炭灰色": "#36454F", "炭灰": "#36454F",

	// English aliases, matched after lowercasing.
	"red": "#FF4444", "blue": "#4444FF", "green": "#44FF44",
	"yellow": "#FFFF44", "black": "#333333", "white": "#FFFFFF",
	"gray": "#888888", "grey": "#888888", "pink": "#FF88CC",
	"purple": "#8844FF", "orange": "#FF8844", "brown": "#8B4513",
	"dark blue": "#000080", "light blue": "#87CEEB", "sky blue": "#87CEEB",
	"navy": "#000080", "navy blue": "#000080",
	"light pink": "#FFB6C1", "dark red": "#8B0000",
	"light green": "#90EE90", "dark green": "#006400",
	"beige": "#F5F5DC", "khaki": "#F0E68C", "camel": "#DEB887",
	"coffee": "#6F4E37", "olive": "#556B2F",
	"dark gray": "#555555", "dark grey": "#555555",
	"light gray": "#CCCCCC", "light grey": "#CCCCCC",
	"charcoal": "#36454F", "charcoal gray": "#36454F", "charcoal grey": "#36454F",
}

// ResolveColor maps a free-text color token to a #RRGGBB value. It never
// fails: anything it cannot resolve becomes DefaultColor.
func ResolveColor(token string) string {
	t := strings.TrimSpace(token)
	if strings.HasPrefix(t, "#") && reHexColor.MatchString(t) {
		return t
	}

	if v, ok := lookupColor(t); ok {
		if !strings.HasPrefix(v, "#") {
			v = "#" + v
		}
		if reHexColor.MatchString(v) {
			return v
		}
		return DefaultColor
	}

	if t != "" && !strings.HasPrefix(t, "#") {
		if c := "#" + t; reHexColor.MatchString(c) {
			return c
		}
	}
	return DefaultColor
}

// lookupColor consults the table with the token as given, then lowercased.
func lookupColor(t string) (string, bool) {
	if v, ok := colorTable[t]; ok {
		return v, true
	}
	v, ok := colorTable[strings.ToLower(t)]
	return v, ok
}

// IsHexColor reports whether s is a strict #RRGGBB value.
func IsHexColor(s string) bool {
	return reHexColor.MatchString(s)
}
