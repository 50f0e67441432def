package colorpicker

import (
	"math"
	"strings"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Mode selects which numeric fields the panel shows. It never changes how
// the color is stored.
type Mode string

const (
	ModeRGB Mode = "RGB"
	ModeHSB Mode = "HSB"
	ModeHSL Mode = "HSL"
)

var modeOrder = []Mode{ModeRGB, ModeHSB, ModeHSL}

// ParseMode accepts RGB, HSB (or HSV) and HSL in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RGB":
		return ModeRGB, nil
	case "HSB", "HSV":
		return ModeHSB, nil
	case "HSL":
		return ModeHSL, nil
	}
	return "", errors.Wrapf(ErrInvalidMode, "%q", s)
}

func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Next cycles RGB -> HSB -> HSL -> RGB.
func (m Mode) Next() Mode {
	for i, o := range modeOrder {
		if o == m {
			return modeOrder[(i+1)%len(modeOrder)]
		}
	}
	return ModeRGB
}

// Labels names the three fields of the mode.
func (m Mode) Labels() [3]string {
	switch m {
	case ModeHSB:
		return [3]string{"H", "S", "B"}
	case ModeHSL:
		return [3]string{"H", "S", "L"}
	default:
		return [3]string{"R", "G", "B"}
	}
}

// Fields returns the integer values the numeric editors display for hsv.
func Fields(m Mode, hsv HSV) [3]int {
	switch m {
	case ModeHSB:
		n := hsv.Normalize()
		return [3]int{roundHue(n.H), roundInt(n.S), roundInt(n.V)}
	case ModeHSL:
		l := HSVToHSL(hsv)
		return [3]int{roundHue(l.H), roundInt(l.S), roundInt(l.L)}
	default:
		rgb := HSVToRGB(hsv)
		return [3]int{int(rgb.R), int(rgb.G), int(rgb.B)}
	}
}

// ParseFields converts an edit of the mode's three fields back to HSV.
// Values outside the field range fail with ErrInvalidColorFormat.
func ParseFields(m Mode, v [3]float64) (HSV, error) {
	limit := [3]float64{360, 100, 100}
	if m == ModeRGB {
		limit = [3]float64{255, 255, 255}
	}
	labels := m.Labels()
	for i := range v {
		if math.IsNaN(v[i]) || v[i] < 0 || v[i] > limit[i] {
			return HSV{}, errors.Wrapf(ErrInvalidColorFormat, "%s %s=%v out of range [0,%v]", m, labels[i], v[i], limit[i])
		}
	}
	switch m {
	case ModeHSB:
		return HSV{H: v[0], S: v[1], V: v[2]}.Normalize(), nil
	case ModeHSL:
		return HSLToHSV(HSL{H: v[0], S: v[1], L: v[2]}), nil
	case ModeRGB:
		return RGBToHSV(RGB{
			R: safecast.MustConv[uint8](roundInt(v[0])),
			G: safecast.MustConv[uint8](roundInt(v[1])),
			B: safecast.MustConv[uint8](roundInt(v[2])),
		}), nil
	}
	return HSV{}, errors.Wrapf(ErrInvalidMode, "%q", string(m))
}

func roundInt(f float64) int {
	return int(math.Round(f))
}

func roundHue(h float64) int {
	return roundInt(h) % 360
}
