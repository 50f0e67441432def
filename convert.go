package colorpicker

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// HSV is the canonical color representation. H is in degrees [0,360), S and
// V are percentages in [0,100]. Values are never rounded internally so that
// hex -> HSV -> hex is exact.
type HSV struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	V float64 `yaml:"v"`
}

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// HSL is hue in degrees with saturation and lightness as percentages.
type HSL struct {
	H, S, L float64
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.V)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.L)
}

// Normalize wraps the hue into [0,360) and clamps saturation and value to
// [0,100]. NaN components become 0.
func (c HSV) Normalize() HSV {
	h := c.H
	if math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return HSV{H: h, S: clampPercent(c.S), V: clampPercent(c.V)}
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// Converter is the pair of conversions the panel state needs. StdConverter
// is the default; hosts may supply their own.
type Converter interface {
	HexToHSV(hex string) (HSV, error)
	HSVToHex(hsv HSV) string
}

// StdConverter delegates to the package level conversion functions. It holds
// no state and is safe for concurrent use.
type StdConverter struct{}

func (StdConverter) HexToHSV(hex string) (HSV, error) { return HexToHSV(hex) }
func (StdConverter) HSVToHex(hsv HSV) string          { return HSVToHex(hsv) }

// NormalizeHex accepts a 3 or 6 digit hex color, with or without a leading
// '#', and returns the lowercase 6 digit form with '#'.
func NormalizeHex(s string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 3 && len(h) != 6 {
		return "", errors.Wrapf(ErrInvalidColorFormat, "%q: want 3 or 6 hex digits", s)
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return "", errors.Wrapf(ErrInvalidColorFormat, "%q: bad hex digit %q", s, h[i])
		}
	}
	h = strings.ToLower(h)
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	return "#" + h, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func parseHex(s string) (colorful.Color, error) {
	n, err := NormalizeHex(s)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(n)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(ErrInvalidColorFormat, "%q: %v", s, err)
	}
	return c, nil
}

// HexToHSV parses a 3 or 6 digit hex color.
func HexToHSV(hex string) (HSV, error) {
	c, err := parseHex(hex)
	if err != nil {
		return HSV{}, err
	}
	h, s, v := c.Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}, nil
}

// HexToRGB parses a 3 or 6 digit hex color into 8-bit channels.
func HexToRGB(hex string) (RGB, error) {
	c, err := parseHex(hex)
	if err != nil {
		return RGB{}, err
	}
	return rgbOf(c), nil
}

// HSVToHex formats hsv as a lowercase "#rrggbb" string.
func HSVToHex(hsv HSV) string {
	return RGBToHex(HSVToRGB(hsv))
}

// HSVToRGB converts hsv to 8-bit channels, rounding to the nearest value.
func HSVToRGB(hsv HSV) RGB {
	n := hsv.Normalize()
	return rgbOf(colorful.Hsv(n.H, n.S/100, n.V/100))
}

// RGBToHex formats rgb as a lowercase "#rrggbb" string.
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBToHSV converts 8-bit channels to HSV.
func RGBToHSV(rgb RGB) HSV {
	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, s, v := c.Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}
}

// HSVToHSL converts within the cylindrical space so the hue survives for
// grays, which a round trip through RGB would lose.
func HSVToHSL(hsv HSV) HSL {
	n := hsv.Normalize()
	s, v := n.S/100, n.V/100
	l := v * (1 - s/2)
	sl := 0.0
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return HSL{H: n.H, S: clampPercent(sl * 100), L: clampPercent(l * 100)}
}

// HSLToHSV is the inverse of HSVToHSL.
func HSLToHSV(hsl HSL) HSV {
	s, l := clampPercent(hsl.S)/100, clampPercent(hsl.L)/100
	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return HSV{H: hsl.H, S: sv * 100, V: v * 100}.Normalize()
}

// ParseColor accepts a hex color or a CSS color name and returns the
// normalized hex form.
func ParseColor(s string) (string, error) {
	if hex, err := NormalizeHex(s); err == nil {
		return hex, nil
	}
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return RGBToHex(RGB{R: c.R, G: c.G, B: c.B}), nil
	}
	return "", errors.Wrapf(ErrInvalidColorFormat, "%q is neither hex nor a color name", s)
}

func rgbOf(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

func channel(f float64) uint8 {
	return safecast.MustConv[uint8](int(math.Round(f * 255)))
}
