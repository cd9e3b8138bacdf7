package utils

import (
	"fmt"
	"hash/fnv"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHexColor reports whether s is a "#RRGGBB" color string.
func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// ClassColor derives a stable "#RRGGBB" display color from a string, so the
// same block letter or feed class name always renders the same color.
func ClassColor(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	hue := float64(h.Sum32()%360) / 360
	r, g, b := hslToRGB(hue, 0.55, 0.45)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// TextIsDark reports whether dark text should be drawn over the given
// "#RRGGBB" background color.
func TextIsDark(hex string) bool {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return false
	}
	// Relative luminance, BT.709 weights.
	lum := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
	return lum > 0.6
}

func hslToRGB(h, s, l float64) (int, int, int) {
	if s == 0 {
		v := int(l * 255)
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)
	return int(r*255 + 0.5), int(g*255 + 0.5), int(b*255 + 0.5)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
