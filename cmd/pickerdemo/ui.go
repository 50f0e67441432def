package main

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const maxEventLog = 8

type UI struct {
	face   font.Face
	events []string
}

func NewUI() *UI {
	ui := &UI{}

	// Try to load local Roboto TTF from res/
	b, err := os.ReadFile("res/Roboto-Regular.ttf")
	if err != nil {
		log.Printf("could not read font file: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		log.Printf("could not parse ttf: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("could not create font face: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	ui.face = face
	return ui
}

// addEvent appends a line to the on-screen event log, dropping the oldest.
func (ui *UI) addEvent(s string) {
	ui.events = append(ui.events, s)
	if len(ui.events) > maxEventLog {
		ui.events = ui.events[len(ui.events)-maxEventLog:]
	}
}

// Draw renders the HUD and the picker event log.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	screenW := screen.Bounds().Dx()
	screenH := screen.Bounds().Dy()
	drawTextAt(screen, ui.face, "Click the swatch to open - Drag board, hue and alpha - Click hex to edit", 8, screenH-28, ColorText)
	drawTextAt(screen, ui.face, "Right-click panel for menu - Esc or outside click closes - Tab cycles mode", 8, screenH-14, ColorText)

	st := g.picker.State()
	drawTextAt(screen, ui.face, "value: "+st.Color+"  "+g.picker.SwatchCSS(), TriggerX+TriggerW+12, TriggerY+6, ColorText)

	if len(ui.events) == 0 {
		return
	}
	x := screenW - 320
	y := 12
	h := len(ui.events)*16 + 8
	ebitenutil.DrawRect(screen, float64(x-6), float64(y-4), 316, float64(h), ColorLogBg)
	for i, e := range ui.events {
		drawTextAt(screen, ui.face, e, x, y+i*16, ColorTextDim)
	}
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}
