package main

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	picker "github.com/example/colorpicker"
)

// Renderer handles all drawing operations for the demo. It caches the
// saturation/value board per hue and the hue ribbon.
type Renderer struct {
	board    *ebiten.Image
	boardHue float64
	ribbon   *ebiten.Image
}

// NewRenderer creates a new Renderer instance.
func NewRenderer() *Renderer {
	return &Renderer{boardHue: -1}
}

// DrawTrigger renders the swatch button with the current color over a
// checkerboard so alpha is visible.
func (r *Renderer) DrawTrigger(screen *ebiten.Image, p *picker.ColorPicker, focused bool) {
	t := triggerRect()
	drawChecker(screen, t)
	fillRect(screen, t, p.Swatch())
	border := ColorPanelBorder
	if focused {
		border = ColorFieldActive
	}
	drawBorder(screen, float64(t.X), float64(t.Y), float64(t.W), float64(t.H), 2, border)
	if p.Options().Disabled {
		fillRect(screen, t, color.RGBA{0x00, 0x00, 0x00, 0x88})
	}
}

// DrawPanel renders the popup. It does nothing while the picker is closed.
func (r *Renderer) DrawPanel(screen *ebiten.Image, face font.Face, p *picker.ColorPicker, im *InputManager) {
	ps := p.Panel()
	if ps == nil {
		return
	}
	opts := p.Options()
	b := GetBounds(opts)
	live := ps.Live()

	fillRect(screen, b.Popup, ColorPanelBg)
	drawBorder(screen, float64(b.Popup.X), float64(b.Popup.Y), float64(b.Popup.W), float64(b.Popup.H), PanelBorderWidth, ColorPanelBorder)

	r.drawBoard(screen, b.Board, live)
	r.drawRibbon(screen, b.Ribbon, live)
	if opts.EnableAlpha {
		r.drawAlpha(screen, b.Alpha, live, ps.Alpha())
	}

	drawChecker(screen, b.Preview)
	fillRect(screen, b.Preview, picker.ComposeRGBA(picker.HSVToRGB(live), ps.Alpha()))

	r.drawHex(screen, face, b.Hex, ps.Hex(), im)
	r.drawButton(screen, face, b.Mode, string(p.Mode()))
	if opts.EnableSystemPicker {
		r.drawButton(screen, face, b.System, "...")
	}

	labels := p.Mode().Labels()
	values := p.Fields()
	for i, f := range b.Fields {
		drawTextAt(screen, face, labels[i], f.X-12, f.Y+3, ColorTextDim)
		fillRect(screen, f, ColorFieldBg)
		drawTextAt(screen, face, strconv.Itoa(values[i]), f.X+4, f.Y+3, ColorText)
	}
	if opts.EnableAlpha {
		last := b.Fields[2]
		drawTextAt(screen, face, strconv.Itoa(ps.Alpha())+"%", last.X+last.W+6, last.Y+3, ColorTextDim)
	}
}

func (r *Renderer) drawBoard(screen *ebiten.Image, rect picker.Rect, live picker.HSV) {
	if r.board == nil || r.boardHue != live.H {
		r.board = boardImage(rect.W, rect.H, live.H)
		r.boardHue = live.H
	}
	drawImageAt(screen, r.board, rect)
	nx, ny := picker.BoardPosition(live)
	x, y := rect.Point(nx, ny)
	drawHandle(screen, x, y)
}

func (r *Renderer) drawRibbon(screen *ebiten.Image, rect picker.Rect, live picker.HSV) {
	if r.ribbon == nil {
		r.ribbon = ribbonImage(rect.W, rect.H)
	}
	drawImageAt(screen, r.ribbon, rect)
	x, _ := rect.Point(picker.RibbonPosition(live.H), 0)
	drawHandle(screen, x, rect.Y+rect.H/2)
}

func (r *Renderer) drawAlpha(screen *ebiten.Image, rect picker.Rect, live picker.HSV, alpha int) {
	drawChecker(screen, rect)
	rgb := picker.HSVToRGB(live)
	// gradient from transparent to opaque, one column per step
	for i := 0; i < rect.W; i++ {
		a := picker.SliderAlpha(float64(i) / float64(rect.W-1))
		c := picker.ComposeRGBA(rgb, int(a+0.5))
		ebitenutil.DrawRect(screen, float64(rect.X+i), float64(rect.Y), 1, float64(rect.H), c)
	}
	x, _ := rect.Point(picker.AlphaUnit(alpha), 0)
	drawHandle(screen, x, rect.Y+rect.H/2)
}

func (r *Renderer) drawHex(screen *ebiten.Image, face font.Face, rect picker.Rect, hex string, im *InputManager) {
	fillRect(screen, rect, ColorFieldBg)
	if im.editingHex {
		drawBorder(screen, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), 1, ColorFieldActive)
		s := "#" + im.hexBuffer
		if im.caretVisible {
			s += "|"
		}
		drawTextAt(screen, face, s, rect.X+4, rect.Y+3, ColorText)
		return
	}
	drawTextAt(screen, face, hex, rect.X+4, rect.Y+3, ColorText)
}

func (r *Renderer) drawButton(screen *ebiten.Image, face font.Face, rect picker.Rect, label string) {
	fillRect(screen, rect, ColorButtonBg)
	drawBorder(screen, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), 1, ColorPanelBorder)
	drawTextAt(screen, face, label, rect.X+6, rect.Y+3, ColorText)
}

// boardImage renders saturation left to right and value top to bottom for
// a single hue.
func boardImage(w, h int, hue float64) *ebiten.Image {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgb := picker.HSVToRGB(picker.BoardColor(hue, unitOf(x, w), unitOf(y, h)))
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = rgb.R, rgb.G, rgb.B, 0xff
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

func ribbonImage(w, h int) *ebiten.Image {
	pix := make([]byte, w*h*4)
	for x := 0; x < w; x++ {
		rgb := picker.HSVToRGB(picker.HSV{H: picker.RibbonHue(unitOf(x, w)), S: 100, V: 100})
		for y := 0; y < h; y++ {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = rgb.R, rgb.G, rgb.B, 0xff
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

func unitOf(i, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(i) / float64(size-1)
}

func drawImageAt(screen, img *ebiten.Image, rect picker.Rect) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(rect.X), float64(rect.Y))
	screen.DrawImage(img, op)
}

func drawHandle(screen *ebiten.Image, x, y int) {
	hs := float64(HandleSize)
	fx := float64(x) - hs/2
	fy := float64(y) - hs/2
	drawBorder(screen, fx, fy, hs, hs, 2, ColorHandle)
	drawBorder(screen, fx+2, fy+2, hs-4, hs-4, 1, ColorHandleShadow)
}

func drawChecker(screen *ebiten.Image, rect picker.Rect) {
	for y := 0; y < rect.H; y += CheckerSize {
		for x := 0; x < rect.W; x += CheckerSize {
			c := ColorCheckerLight
			if (x/CheckerSize+y/CheckerSize)%2 == 1 {
				c = ColorCheckerDark
			}
			w := min(CheckerSize, rect.W-x)
			h := min(CheckerSize, rect.H-y)
			ebitenutil.DrawRect(screen, float64(rect.X+x), float64(rect.Y+y), float64(w), float64(h), c)
		}
	}
}

func fillRect(screen *ebiten.Image, rect picker.Rect, c color.Color) {
	ebitenutil.DrawRect(screen, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), c)
}

func drawBorder(screen *ebiten.Image, x, y, w, h, t float64, c color.Color) {
	ebitenutil.DrawRect(screen, x, y, w, t, c)
	ebitenutil.DrawRect(screen, x, y+h-t, w, t, c)
	ebitenutil.DrawRect(screen, x, y, t, h, c)
	ebitenutil.DrawRect(screen, x+w-t, y, t, h, c)
}
