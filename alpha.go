package colorpicker

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// Alpha bounds, in percent.
const (
	AlphaMin = 0
	AlphaMax = 100
)

// ClampAlpha rounds v to the nearest integer percentage and clamps it into
// [0,100]. NaN and infinities fail with ErrInvalidAlpha.
func ClampAlpha(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidAlpha, "%v is not a number", v)
	}
	switch r := math.Round(v); {
	case r < AlphaMin:
		return AlphaMin, nil
	case r > AlphaMax:
		return AlphaMax, nil
	default:
		return int(r), nil
	}
}

func clampAlphaInt(v int) int {
	a, _ := ClampAlpha(float64(v))
	return a
}

// ParseAlpha parses a percentage typed into a text field. A trailing '%' is
// allowed.
func ParseAlpha(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAlpha, "%q is not a number", s)
	}
	return ClampAlpha(f)
}

// AlphaUnit maps an alpha percentage onto [0,1].
func AlphaUnit(alpha int) float64 {
	return float64(clampAlphaInt(alpha)) / 100
}

// ResolveEffectiveAlpha decides which alpha the widget shows. When the host
// controls alpha its value wins, capped by ceiling if one is given. The cap
// is only passed at construction, so later host updates are tracked exactly.
// Otherwise the widget's own stateAlpha is used.
func ResolveEffectiveAlpha(stateAlpha int, host, ceiling Prop[int]) int {
	a, ok := host.Get()
	if !ok {
		return clampAlphaInt(stateAlpha)
	}
	if c, ok := ceiling.Get(); ok && c < a {
		a = c
	}
	return clampAlphaInt(a)
}

// ComposeRGBA combines rgb with an alpha percentage into a render color.
func ComposeRGBA(rgb RGB, alpha int) color.NRGBA {
	a := int(math.Round(AlphaUnit(alpha) * 255))
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: safecast.MustConv[uint8](a)}
}

// CSSRGBA renders the CSS rgba() form used for the trigger background.
func CSSRGBA(rgb RGB, alpha int) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", rgb.R, rgb.G, rgb.B,
		strconv.FormatFloat(AlphaUnit(alpha), 'f', -1, 64))
}
