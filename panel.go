package colorpicker

import (
	"log"

	"github.com/pkg/errors"
)

// DefaultColor is used when neither the host nor the options name a color.
const DefaultColor = "#ff0000"

// Change is what the panel reports to its owner after every color or alpha
// edit.
type Change struct {
	Color string
	HSV   HSV
	Alpha int
}

// PanelConfig seeds a PanelState. Color falls back to DefaultColor when
// empty. Restore, when it converts to the same hex as Color, is used as the
// initial HSV so that reopening a panel keeps hue and fractional values that
// the hex form cannot hold.
type PanelConfig struct {
	Color        string
	Restore      *HSV
	Alpha        Prop[int]
	DefaultAlpha int

	Converter Converter
	OnChange  func(Change)
	Logger    *log.Logger
}

// PanelState owns the color and alpha of an open panel. Drag surfaces update
// the live HSV on every frame; the committed HSV feeding the numeric fields
// only moves on discrete edits so the fields don't jitter during a drag.
//
// A PanelState is driven from a single event loop and is not safe for
// concurrent use.
type PanelState struct {
	conv     Converter
	onChange func(Change)
	logger   *log.Logger

	live      HSV
	committed HSV
	alpha     int

	alphaControlled bool
}

// NewPanelState initializes live and committed HSV from cfg.Color and
// resolves the starting alpha.
func NewPanelState(cfg PanelConfig) (*PanelState, error) {
	ps := &PanelState{
		conv:     cfg.Converter,
		onChange: cfg.OnChange,
		logger:   cfg.Logger,
	}
	if ps.conv == nil {
		ps.conv = StdConverter{}
	}
	if ps.logger == nil {
		ps.logger = log.Default()
	}

	c := cfg.Color
	if c == "" {
		c = DefaultColor
	}
	hsv, err := ps.conv.HexToHSV(c)
	if err != nil {
		return nil, errors.WithMessage(err, "panel: initial color")
	}
	if r := cfg.Restore; r != nil && ps.conv.HSVToHex(*r) == ps.conv.HSVToHex(hsv) {
		hsv = r.Normalize()
	}
	ps.live = hsv
	ps.committed = hsv
	ps.alphaControlled = cfg.Alpha.IsControlled()
	ps.alpha = ResolveEffectiveAlpha(cfg.DefaultAlpha, cfg.Alpha, Controlled(cfg.DefaultAlpha))
	return ps, nil
}

// Live is the HSV the drag surfaces render.
func (ps *PanelState) Live() HSV { return ps.live }

// Committed is the HSV the numeric fields render.
func (ps *PanelState) Committed() HSV { return ps.committed }

func (ps *PanelState) Alpha() int { return ps.alpha }

// Hex is the live color as "#rrggbb".
func (ps *PanelState) Hex() string { return ps.conv.HSVToHex(ps.live) }

// SetAlphaControlled records whether the host owns alpha. While it does,
// OnAlphaChange reports edits without applying them.
func (ps *PanelState) SetAlphaControlled(controlled bool) {
	ps.alphaControlled = controlled
}

// OnExternalColorUpdate re-syncs both HSV copies from a host supplied color.
// An empty string is ignored. A malformed color is logged and returned and
// the state keeps its last valid value.
func (ps *PanelState) OnExternalColorUpdate(hex string) error {
	if hex == "" {
		return nil
	}
	hsv, err := ps.conv.HexToHSV(hex)
	if err != nil {
		ps.logger.Printf("colorpicker: ignoring host color: %v", err)
		return err
	}
	ps.live = hsv
	ps.committed = hsv
	return nil
}

// OnExternalAlphaUpdate overwrites alpha with a host supplied value.
func (ps *PanelState) OnExternalAlphaUpdate(alpha int) {
	ps.alpha = clampAlphaInt(alpha)
}

// OnLiveColorChange is called by drag surfaces on every movement. The live
// HSV always follows; the committed HSV follows only when syncCommitted is
// set, which discrete pickers do and continuous drags don't.
func (ps *PanelState) OnLiveColorChange(hsv HSV, syncCommitted bool) {
	hsv = hsv.Normalize()
	ps.live = hsv
	if syncCommitted {
		ps.committed = hsv
	}
	ps.emit(ps.alpha)
}

// Commit copies the live HSV into the committed HSV, e.g. when a drag ends.
func (ps *PanelState) Commit() {
	ps.OnLiveColorChange(ps.live, true)
}

// CommitHex applies a color typed into the hex field. The field is expected
// to have validated the text already; a malformed value is still rejected
// without touching state.
func (ps *PanelState) CommitHex(hex string) error {
	hsv, err := ps.conv.HexToHSV(hex)
	if err != nil {
		ps.logger.Printf("colorpicker: rejecting hex entry: %v", err)
		return err
	}
	ps.OnLiveColorChange(hsv, true)
	return nil
}

// CommitFields applies an edit from the numeric fields of the given mode.
func (ps *PanelState) CommitFields(mode Mode, values [3]float64) error {
	hsv, err := ParseFields(mode, values)
	if err != nil {
		ps.logger.Printf("colorpicker: rejecting %s fields: %v", mode, err)
		return err
	}
	ps.OnLiveColorChange(hsv, true)
	return nil
}

// OnAlphaChange validates alpha and reports it. Internal alpha only changes
// when the host doesn't control it; the owner is notified either way.
func (ps *PanelState) OnAlphaChange(alpha float64) error {
	a, err := ClampAlpha(alpha)
	if err != nil {
		ps.logger.Printf("colorpicker: rejecting alpha: %v", err)
		return err
	}
	if !ps.alphaControlled {
		ps.alpha = a
	}
	ps.emit(a)
	return nil
}

func (ps *PanelState) emit(alpha int) {
	if ps.onChange == nil {
		return
	}
	ps.onChange(Change{Color: ps.conv.HSVToHex(ps.live), HSV: ps.live, Alpha: alpha})
}
