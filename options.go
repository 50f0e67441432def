package colorpicker

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Placement is the corner of the trigger the popup is anchored to.
type Placement string

const (
	TopLeft     Placement = "topLeft"
	TopRight    Placement = "topRight"
	BottomLeft  Placement = "bottomLeft"
	BottomRight Placement = "bottomRight"
)

func ParsePlacement(s string) (Placement, error) {
	switch p := Placement(s); p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return p, nil
	}
	return "", errors.Wrapf(ErrInvalidPlacement, "%q", s)
}

func (p *Placement) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParsePlacement(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Options is the host configuration surface of a ColorPicker. Start from
// DefaultOptions; the zero value disables alpha and the system picker.
type Options struct {
	// Color and Alpha are controlled when set: every SetProps overrides
	// widget state with them.
	Color Prop[string] `yaml:"color"`
	Alpha Prop[int]    `yaml:"alpha"`

	DefaultColor string `yaml:"default_color"`
	DefaultAlpha int    `yaml:"default_alpha"`

	// EnableAlpha shows the alpha slider. When off the swatch is drawn
	// opaque.
	EnableAlpha        bool      `yaml:"enable_alpha"`
	EnableSystemPicker bool      `yaml:"enable_system_picker"`
	Mode               Mode      `yaml:"mode"`
	DisableModeChange  bool      `yaml:"disable_mode_change"`
	Placement          Placement `yaml:"placement"`
	// Disabled suppresses opening from the trigger.
	Disabled bool `yaml:"disabled"`

	OnChange func(State) `yaml:"-"`
	OnOpen   func(State) `yaml:"-"`
	OnClose  func(State) `yaml:"-"`
	OnFocus  func()      `yaml:"-"`
	OnBlur   func()      `yaml:"-"`

	// FocusTrigger and FocusPanel move input focus in the host UI.
	FocusTrigger func() `yaml:"-"`
	FocusPanel   func() `yaml:"-"`

	Clock     Clock       `yaml:"-"`
	Converter Converter   `yaml:"-"`
	Logger    *log.Logger `yaml:"-"`
}

// DefaultOptions mirrors the widget defaults: red, fully opaque, alpha and
// system picker enabled, RGB fields, anchored top left.
func DefaultOptions() Options {
	return Options{
		DefaultColor:       "#F00",
		DefaultAlpha:       AlphaMax,
		EnableAlpha:        true,
		EnableSystemPicker: true,
		Mode:               ModeRGB,
		Placement:          TopLeft,
	}
}

// LoadOptions reads a YAML options file on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return Options{}, errors.Wrapf(err, "options %s", path)
	}
	if err := opts.normalize(); err != nil {
		return Options{}, errors.WithMessagef(err, "options %s", path)
	}
	return opts, nil
}

// normalize fills empty fields with defaults and canonicalizes colors.
// Color names are accepted here even though the panel only speaks hex.
func (o *Options) normalize() error {
	if o.DefaultColor == "" {
		o.DefaultColor = DefaultColor
	}
	hex, err := ParseColor(o.DefaultColor)
	if err != nil {
		return errors.WithMessage(err, "default_color")
	}
	o.DefaultColor = hex

	if c, ok := o.Color.Get(); ok && c != "" {
		hex, err := ParseColor(c)
		if err != nil {
			return errors.WithMessage(err, "color")
		}
		o.Color = Controlled(hex)
	}
	o.DefaultAlpha = clampAlphaInt(o.DefaultAlpha)
	if o.Mode == "" {
		o.Mode = ModeRGB
	}
	if o.Placement == "" {
		o.Placement = TopLeft
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}
