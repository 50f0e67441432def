package main

import (
	"testing"

	picker "github.com/example/colorpicker"
)

func TestAnchorPopup(t *testing.T) {
	trigger := picker.Rect{X: 300, Y: 200, W: 40, H: 20}
	tests := []struct {
		placement picker.Placement
		x, y      int
	}{
		{picker.TopLeft, 300, 200 - 100 - PopupOffset},
		{picker.TopRight, 340 - 150, 200 - 100 - PopupOffset},
		{picker.BottomLeft, 300, 220 + PopupOffset},
		{picker.BottomRight, 340 - 150, 220 + PopupOffset},
	}
	for _, tt := range tests {
		x, y := anchorPopup(trigger, tt.placement, 150, 100)
		if x != tt.x || y != tt.y {
			t.Errorf("anchorPopup(%s) = %d,%d, want %d,%d", tt.placement, x, y, tt.x, tt.y)
		}
	}
}

func TestAnchorPopupStaysOnScreen(t *testing.T) {
	x, y := anchorPopup(picker.Rect{X: 10, Y: 10, W: 40, H: 20}, picker.TopRight, 150, 100)
	if x != 0 || y != 0 {
		t.Errorf("anchorPopup = %d,%d, want 0,0", x, y)
	}
}

func TestGetBoundsAlpha(t *testing.T) {
	opts := picker.DefaultOptions()
	with := GetBounds(opts)
	if with.Alpha.W == 0 {
		t.Fatal("alpha slider missing with alpha enabled")
	}
	if with.System.W == 0 {
		t.Error("system picker button missing")
	}
	if !with.Popup.Contains(with.Fields[2].X, with.Fields[2].Y+with.Fields[2].H-1) {
		t.Error("fields overflow the popup")
	}

	opts.EnableAlpha = false
	opts.EnableSystemPicker = false
	without := GetBounds(opts)
	if without.Alpha.W != 0 || without.System.W != 0 {
		t.Errorf("disabled controls laid out: alpha %+v system %+v", without.Alpha, without.System)
	}
	f := without.Fields[2]
	if !without.Popup.Contains(f.X, f.Y+f.H-1) {
		t.Error("fields overflow the popup without alpha")
	}
}
