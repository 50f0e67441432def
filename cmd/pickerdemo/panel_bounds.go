package main

import (
	picker "github.com/example/colorpicker"
)

// PanelBounds is the on-screen layout of the popup and every control in it.
type PanelBounds struct {
	Popup   picker.Rect
	Board   picker.Rect
	Ribbon  picker.Rect
	Alpha   picker.Rect // zero when alpha is disabled
	Preview picker.Rect
	Hex     picker.Rect
	Fields  [3]picker.Rect
	Mode    picker.Rect
	System  picker.Rect // zero when the system picker is disabled
}

func triggerRect() picker.Rect {
	return picker.Rect{X: TriggerX, Y: TriggerY, W: TriggerW, H: TriggerH}
}

func popupSize(enableAlpha bool) (w, h int) {
	sliders := SliderH + SliderGap
	if enableAlpha {
		sliders += SliderH + SliderGap
	}
	// the preview sits beside the sliders
	sliders = max(sliders, PreviewSize+SliderGap)
	w = BoardW + PanelPadding*2
	h = PanelPadding + BoardH + SliderGap + sliders + FieldH + SliderGap + FieldH + PanelPadding
	return w, h
}

// anchorPopup places a w*h popup against the trigger. topLeft opens above
// the trigger with left edges aligned, bottomRight opens below with right
// edges aligned, and so on.
func anchorPopup(trigger picker.Rect, placement picker.Placement, w, h int) (x, y int) {
	switch placement {
	case picker.TopRight, picker.BottomRight:
		x = trigger.X + trigger.W - w
	default:
		x = trigger.X
	}
	switch placement {
	case picker.BottomLeft, picker.BottomRight:
		y = trigger.Y + trigger.H + PopupOffset
	default:
		y = trigger.Y - h - PopupOffset
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// GetBounds lays the popup out for the given options.
func GetBounds(opts picker.Options) PanelBounds {
	w, h := popupSize(opts.EnableAlpha)
	x, y := anchorPopup(triggerRect(), opts.Placement, w, h)

	var b PanelBounds
	b.Popup = picker.Rect{X: x, Y: y, W: w, H: h}
	cx := x + PanelPadding
	cy := y + PanelPadding

	b.Board = picker.Rect{X: cx, Y: cy, W: BoardW, H: BoardH}
	cy += BoardH + SliderGap

	sliderW := BoardW - PreviewSize - SliderGap
	b.Ribbon = picker.Rect{X: cx, Y: cy, W: sliderW, H: SliderH}
	b.Preview = picker.Rect{X: cx + sliderW + SliderGap, Y: cy, W: PreviewSize, H: PreviewSize}
	cy += SliderH + SliderGap
	if opts.EnableAlpha {
		b.Alpha = picker.Rect{X: cx, Y: cy, W: sliderW, H: SliderH}
		cy += SliderH + SliderGap
	}
	if cy < b.Preview.Y+b.Preview.H+SliderGap {
		cy = b.Preview.Y + b.Preview.H + SliderGap
	}

	b.Hex = picker.Rect{X: cx, Y: cy, W: HexFieldW, H: FieldH}
	b.Mode = picker.Rect{X: cx + HexFieldW + SliderGap, Y: cy, W: ButtonW, H: FieldH}
	if opts.EnableSystemPicker {
		b.System = picker.Rect{X: cx + BoardW - ButtonW, Y: cy, W: ButtonW, H: FieldH}
	}
	cy += FieldH + SliderGap

	for i := range b.Fields {
		b.Fields[i] = picker.Rect{X: cx + i*(FieldW+SliderGap+18) + 14, Y: cy, W: FieldW, H: FieldH}
	}
	return b
}
