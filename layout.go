package colorpicker

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Normalize maps a pointer position to [0,1] on both axes. Positions outside
// the rectangle are clamped so a captured drag keeps working past the edge.
func (r Rect) Normalize(x, y int) (nx, ny float64) {
	return unit(x-r.X, r.W), unit(y-r.Y, r.H)
}

// Point is the inverse of Normalize.
func (r Rect) Point(nx, ny float64) (x, y int) {
	return r.X + roundInt(unitClamp(nx)*float64(r.W-1)), r.Y + roundInt(unitClamp(ny)*float64(r.H-1))
}

func unit(d, size int) float64 {
	if size <= 1 {
		return 0
	}
	return unitClamp(float64(d) / float64(size-1))
}

func unitClamp(f float64) float64 {
	switch {
	case f < 0 || f != f:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// BoardColor is the color under a normalized point of the saturation/value
// board for the given hue: saturation grows to the right, value upwards.
func BoardColor(hue, nx, ny float64) HSV {
	return HSV{H: hue, S: unitClamp(nx) * 100, V: (1 - unitClamp(ny)) * 100}.Normalize()
}

// BoardPosition is where hsv sits on the board.
func BoardPosition(hsv HSV) (nx, ny float64) {
	n := hsv.Normalize()
	return n.S / 100, 1 - n.V/100
}

// RibbonHue is the hue under a normalized point of the hue ribbon. The far
// edge maps to 359.999... rather than wrapping back to red.
func RibbonHue(nx float64) float64 {
	h := unitClamp(nx) * 360
	if h >= 360 {
		h = 359.999
	}
	return h
}

// RibbonPosition is where hue sits on the ribbon.
func RibbonPosition(hue float64) float64 {
	return HSV{H: hue}.Normalize().H / 360
}

// SliderAlpha is the alpha under a normalized point of the alpha slider.
func SliderAlpha(nx float64) float64 {
	return unitClamp(nx) * 100
}
