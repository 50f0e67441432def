package colorpicker

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SaveState writes the color, exact HSV and alpha of st as YAML so a host
// can bring the picker back where it left off.
func SaveState(path string, st State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&st); err != nil {
		return err
	}
	return enc.Close()
}

// LoadState reads a file written by SaveState. The color must be valid; the
// HSV is dropped in favour of the color when the two disagree.
func LoadState(path string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}
	var st State
	if err := yaml.Unmarshal(b, &st); err != nil {
		return State{}, errors.Wrapf(err, "state %s", path)
	}
	hex, err := NormalizeHex(st.Color)
	if err != nil {
		return State{}, errors.WithMessagef(err, "state %s", path)
	}
	st.Color = hex
	if HSVToHex(st.HSV) != hex {
		st.HSV, _ = HexToHSV(hex)
	} else {
		st.HSV = st.HSV.Normalize()
	}
	st.Alpha = clampAlphaInt(st.Alpha)
	return st, nil
}

// Restore puts the picker back to a saved state. A controlled alpha is left
// alone. If the panel is open it is rebuilt from the restored values.
func (p *ColorPicker) Restore(st State) error {
	hex, err := NormalizeHex(st.Color)
	if err != nil {
		return err
	}
	hsv, err := p.conv.HexToHSV(hex)
	if err != nil {
		return err
	}
	if p.conv.HSVToHex(st.HSV) == hex {
		hsv = st.HSV.Normalize()
	}
	p.color = hex
	p.hsv = hsv
	if !p.alphaProp.IsControlled() {
		p.alpha = clampAlphaInt(st.Alpha)
	}
	if p.panel != nil {
		p.mount(true)
	}
	return nil
}
