package colorpicker

import (
	"image/color"
	"log"

	"github.com/pkg/errors"
)

// State is the full snapshot handed to OnChange, OnOpen and OnClose.
type State struct {
	Color string `yaml:"color"`
	HSV   HSV    `yaml:"hsv"`
	Alpha int    `yaml:"alpha"`
	Open  bool   `yaml:"-"`
}

// RGB returns the color channels of s. A malformed Color yields black.
func (s State) RGB() RGB {
	rgb, _ := HexToRGB(s.Color)
	return rgb
}

// CSS renders s as rgba(), the way the trigger background is written.
func (s State) CSS() string {
	return CSSRGBA(s.RGB(), s.Alpha)
}

// Props is a host-driven update of the controlled values.
type Props struct {
	Color Prop[string] `yaml:"color"`
	Alpha Prop[int]    `yaml:"alpha"`
}

// ColorPicker is the composition root: it owns the trigger's color, the
// visibility controller and, only while open, the panel state. Closing
// discards the panel; reopening rebuilds it from the last color and alpha.
type ColorPicker struct {
	opts   Options
	conv   Converter
	logger *log.Logger

	color string
	hsv   HSV
	alpha int
	mode  Mode

	colorProp Prop[string]
	alphaProp Prop[int]

	vis   *VisibilityController
	panel *PanelState

	destroyed bool
}

// New builds a closed picker. Start opts from DefaultOptions or LoadOptions.
func New(opts Options) (*ColorPicker, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	p := &ColorPicker{
		opts:      opts,
		conv:      opts.Converter,
		logger:    opts.Logger,
		mode:      opts.Mode,
		colorProp: opts.Color,
		alphaProp: opts.Alpha,
	}
	if p.conv == nil {
		p.conv = StdConverter{}
	}

	c := opts.Color.Or("")
	if c == "" {
		c = opts.DefaultColor
	}
	hsv, err := p.conv.HexToHSV(c)
	if err != nil {
		return nil, errors.WithMessage(err, "colorpicker: initial color")
	}
	p.hsv = hsv
	p.color = p.conv.HSVToHex(hsv)
	p.alpha = ResolveEffectiveAlpha(opts.DefaultAlpha, opts.Alpha, Controlled(opts.DefaultAlpha))

	p.vis = NewVisibilityController(VisibilityConfig{
		Clock:         opts.Clock,
		Snapshot:      p.State,
		OnStateChange: p.mount,
		OnOpen:        opts.OnOpen,
		OnClose:       opts.OnClose,
		OnFocus:       opts.OnFocus,
		OnBlur:        p.onPanelBlur,
		FocusPanel:    opts.FocusPanel,
		FocusTrigger:  opts.FocusTrigger,
	})
	return p, nil
}

func (p *ColorPicker) State() State {
	return State{Color: p.color, HSV: p.hsv, Alpha: p.alpha, Open: p.vis.IsOpen()}
}

func (p *ColorPicker) IsOpen() bool { return p.vis.IsOpen() }

// Options returns the configuration the picker was built with.
func (p *ColorPicker) Options() Options { return p.opts }

// Panel is the live panel state, or nil while closed.
func (p *ColorPicker) Panel() *PanelState { return p.panel }

// Swatch is the trigger background. Alpha is ignored when disabled.
func (p *ColorPicker) Swatch() color.NRGBA {
	return ComposeRGBA(p.State().RGB(), p.swatchAlpha())
}

// SwatchCSS is Swatch in rgba() notation.
func (p *ColorPicker) SwatchCSS() string {
	return CSSRGBA(p.State().RGB(), p.swatchAlpha())
}

func (p *ColorPicker) swatchAlpha() int {
	if !p.opts.EnableAlpha {
		return AlphaMax
	}
	return p.alpha
}

// Toggle handles a trigger click.
func (p *ColorPicker) Toggle() {
	if p.opts.Disabled && !p.vis.IsOpen() {
		return
	}
	p.vis.Toggle()
}

// Open opens the popup; callback runs even if it is already open.
func (p *ColorPicker) Open(callback func()) {
	p.vis.RequestOpen(callback)
}

// Close closes the popup; callback runs even if it is already closed.
func (p *ColorPicker) Close(callback func()) {
	p.vis.RequestClose(callback)
}

// OnVisibilityChange is called by the popup host on outside clicks, escape
// and trigger activation.
func (p *ColorPicker) OnVisibilityChange(open bool) {
	if open && p.opts.Disabled {
		return
	}
	p.vis.OnVisibilityChange(open)
}

// Focus moves focus to the trigger while closed.
func (p *ColorPicker) Focus() { p.vis.Focus() }

// OnFocus and OnBlur are the panel root's focus events.
func (p *ColorPicker) OnFocus() { p.vis.OnFocus() }
func (p *ColorPicker) OnBlur()  { p.vis.OnBlur() }

// MarkSystemPickerOpen must be called before a native dialog is shown from
// inside the panel so the blur it causes doesn't close the popup.
func (p *ColorPicker) MarkSystemPickerOpen() {
	if !p.opts.EnableSystemPicker {
		return
	}
	p.vis.MarkSystemPickerOpen()
}

// Tick drives the blur debounce. Call it from the host's event loop.
func (p *ColorPicker) Tick() BlurOutcome { return p.vis.Tick() }

// Mode is the numeric field set currently shown.
func (p *ColorPicker) Mode() Mode { return p.mode }

// NextMode cycles the field set unless mode changes are disabled.
func (p *ColorPicker) NextMode() Mode {
	if !p.opts.DisableModeChange {
		p.mode = p.mode.Next()
	}
	return p.mode
}

func (p *ColorPicker) SetMode(m Mode) error {
	if p.opts.DisableModeChange && m != p.mode {
		return errors.Wrapf(ErrInvalidMode, "mode change to %s is disabled", m)
	}
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	p.mode = m
	return nil
}

// Fields returns the numeric field values for the current mode, taken
// from the committed HSV while open.
func (p *ColorPicker) Fields() [3]int {
	if p.panel != nil {
		return Fields(p.mode, p.panel.Committed())
	}
	return Fields(p.mode, p.hsv)
}

// SetProps applies a host update. Controlled values override widget state;
// a malformed color is logged, returned and otherwise ignored.
func (p *ColorPicker) SetProps(props Props) error {
	p.colorProp = props.Color
	p.alphaProp = props.Alpha

	var err error
	if c, ok := props.Color.Get(); ok && c != "" {
		err = p.applyHostColor(c)
	}
	if a, ok := props.Alpha.Get(); ok {
		p.alpha = clampAlphaInt(a)
		if p.panel != nil {
			p.panel.OnExternalAlphaUpdate(p.alpha)
		}
	}
	if p.panel != nil {
		p.panel.SetAlphaControlled(props.Alpha.IsControlled())
	}
	return err
}

func (p *ColorPicker) applyHostColor(c string) error {
	hex, err := ParseColor(c)
	if err != nil {
		p.logger.Printf("colorpicker: ignoring host color: %v", err)
		return err
	}
	if p.panel != nil {
		if err := p.panel.OnExternalColorUpdate(hex); err != nil {
			return err
		}
		p.hsv = p.panel.Live()
	} else {
		hsv, err := p.conv.HexToHSV(hex)
		if err != nil {
			p.logger.Printf("colorpicker: ignoring host color: %v", err)
			return err
		}
		p.hsv = hsv
	}
	p.color = hex
	return nil
}

// Destroy cancels the blur debounce and detaches the panel. No
// notifications are delivered afterwards.
func (p *ColorPicker) Destroy() {
	p.vis.Destroy()
	p.panel = nil
	p.destroyed = true
}

func (p *ColorPicker) mount(open bool) {
	if !open {
		p.panel = nil
		return
	}
	alpha := Uncontrolled[int]()
	if p.alphaProp.IsControlled() {
		alpha = Controlled(p.alpha)
	}
	hsv := p.hsv
	ps, err := NewPanelState(PanelConfig{
		Color:        p.color,
		Restore:      &hsv,
		Alpha:        alpha,
		DefaultAlpha: p.alpha,
		Converter:    p.conv,
		OnChange:     p.onPanelChange,
		Logger:       p.logger,
	})
	if err != nil {
		p.logger.Printf("colorpicker: mounting panel: %v", err)
		return
	}
	p.panel = ps
}

func (p *ColorPicker) onPanelChange(c Change) {
	if p.destroyed {
		return
	}
	p.color = c.Color
	p.hsv = c.HSV
	if !p.alphaProp.IsControlled() {
		p.alpha = c.Alpha
	}
	if p.opts.OnChange != nil {
		st := p.State()
		st.Alpha = c.Alpha
		p.opts.OnChange(st)
	}
}

func (p *ColorPicker) onPanelBlur() {
	if p.opts.OnBlur != nil {
		p.opts.OnBlur()
	}
	p.vis.RequestClose(nil)
}
