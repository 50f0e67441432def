package main

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	picker "github.com/example/colorpicker"
)

type dragSurface int

const (
	dragNone dragSurface = iota
	dragBoard
	dragRibbon
	dragAlpha
)

type focusTarget int

const (
	focusNone focusTarget = iota
	focusTrigger
	focusPanel
)

// InputManager turns mouse and keyboard input into picker operations.
// It owns transient input state: the captured drag surface, hex entry
// editing and which element holds focus.
type InputManager struct {
	drag  dragSurface
	focus focusTarget

	windowFocused bool

	editingHex   bool
	hexBuffer    string
	blinkCounter int
	caretVisible bool
}

func NewInputManager() *InputManager {
	return &InputManager{windowFocused: true}
}

// HandleWindowFocus forwards OS focus changes to the picker. Losing window
// focus is the blur a native dialog causes.
func (im *InputManager) HandleWindowFocus(g *Game) {
	focused := ebiten.IsFocused()
	if focused == im.windowFocused {
		return
	}
	im.windowFocused = focused
	if focused {
		g.picker.OnFocus()
	} else {
		g.picker.OnBlur()
	}
}

func (im *InputManager) HandlePointer(g *Game) {
	mx, my := ebiten.CursorPosition()
	b := GetBounds(g.picker.Options())
	p := g.picker

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case triggerRect().Contains(mx, my):
			im.stopHexEdit()
			p.Toggle()
			return
		case !p.IsOpen():
			return
		case !b.Popup.Contains(mx, my):
			im.stopHexEdit()
			p.OnVisibilityChange(false)
			return
		case b.Board.Contains(mx, my):
			im.drag = dragBoard
		case b.Ribbon.Contains(mx, my):
			im.drag = dragRibbon
		case b.Alpha.W > 0 && b.Alpha.Contains(mx, my):
			im.drag = dragAlpha
		case b.Hex.Contains(mx, my):
			im.startHexEdit(p)
			return
		case b.Mode.Contains(mx, my):
			g.ui.addEvent("mode: " + string(p.NextMode()))
			return
		case b.System.W > 0 && b.System.Contains(mx, my):
			im.loadSwatch(g)
			return
		}
		im.stopHexEdit()
	}

	if im.drag != dragNone {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			im.applyDrag(p, b, mx, my)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			if ps := p.Panel(); ps != nil && im.drag == dragBoard {
				ps.Commit()
			}
			im.drag = dragNone
		}
	}

	if p.IsOpen() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && b.Popup.Contains(mx, my) {
		g.contextMenu.Show(mx, my)
	}
}

func (im *InputManager) applyDrag(p *picker.ColorPicker, b PanelBounds, mx, my int) {
	ps := p.Panel()
	if ps == nil {
		im.drag = dragNone
		return
	}
	switch im.drag {
	case dragBoard:
		nx, ny := b.Board.Normalize(mx, my)
		ps.OnLiveColorChange(picker.BoardColor(ps.Live().H, nx, ny), false)
	case dragRibbon:
		nx, _ := b.Ribbon.Normalize(mx, my)
		live := ps.Live()
		live.H = picker.RibbonHue(nx)
		ps.OnLiveColorChange(live, true)
	case dragAlpha:
		nx, _ := b.Alpha.Normalize(mx, my)
		if err := ps.OnAlphaChange(picker.SliderAlpha(nx)); err != nil {
			log.Printf("alpha: %v", err)
		}
	}
}

func (im *InputManager) HandleContextMenuInput(g *Game) {
	switch g.contextMenu.Update() {
	case MenuActionNone:
	case MenuActionNextMode:
		g.ui.addEvent("mode: " + string(g.picker.NextMode()))
	case MenuActionLoadSwatch:
		im.loadSwatch(g)
	case MenuActionSaveSwatch:
		im.saveSwatch(g)
	case MenuActionReset:
		ps := g.picker.Panel()
		if ps == nil {
			break
		}
		opts := g.picker.Options()
		if err := ps.CommitHex(opts.DefaultColor); err != nil {
			log.Printf("reset: %v", err)
			break
		}
		if err := ps.OnAlphaChange(float64(opts.DefaultAlpha)); err != nil {
			log.Printf("reset: %v", err)
		}
		g.ui.addEvent("reset: " + opts.DefaultColor)
	}
}

// loadSwatch opens a native file dialog from inside the panel and commits
// the chosen swatch. The dialog steals window focus, so the picker is told
// first.
func (im *InputManager) loadSwatch(g *Game) {
	g.picker.MarkSystemPickerOpen()
	path, err := dialog.File().Filter("Swatch", "yml", "yaml").Title("Load Swatch").Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			log.Printf("file open failed: %v", err)
		}
		return
	}
	if path == "" {
		return
	}
	absPath, _ := filepath.Abs(path)
	st, err := picker.LoadState(absPath)
	if err != nil {
		log.Printf("load swatch failed: %v", err)
		g.ui.addEvent("failed to load: " + filepath.Base(absPath))
		return
	}
	ps := g.picker.Panel()
	if ps == nil {
		// the popup closed while the dialog was up
		if err := g.picker.Restore(st); err != nil {
			log.Printf("restore swatch failed: %v", err)
		}
		return
	}
	if err := ps.CommitHex(st.Color); err != nil {
		log.Printf("load swatch failed: %v", err)
		return
	}
	if err := ps.OnAlphaChange(float64(st.Alpha)); err != nil {
		log.Printf("load swatch failed: %v", err)
	}
	g.ui.addEvent("loaded: " + filepath.Base(absPath))
}

func (im *InputManager) saveSwatch(g *Game) {
	g.picker.MarkSystemPickerOpen()
	path, err := dialog.File().Filter("Swatch", "yml", "yaml").Title("Save Swatch As").Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			log.Printf("file save failed: %v", err)
		}
		return
	}
	if path == "" {
		return
	}
	absPath, _ := filepath.Abs(path)
	if err := picker.SaveState(absPath, g.picker.State()); err != nil {
		log.Printf("save swatch failed: %v", err)
		g.ui.addEvent("failed to save: " + filepath.Base(absPath))
		return
	}
	g.ui.addEvent("saved: " + filepath.Base(absPath))
}

func (im *InputManager) HandleKeyboard(g *Game) {
	p := g.picker
	if im.editingHex {
		im.handleHexEdit(g)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && p.IsOpen() {
		p.OnVisibilityChange(false)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && p.IsOpen() {
		g.ui.addEvent("mode: " + string(p.NextMode()))
	}
	if im.focus == focusTrigger && !p.IsOpen() &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		p.Toggle()
	}
}

func (im *InputManager) startHexEdit(p *picker.ColorPicker) {
	ps := p.Panel()
	if ps == nil {
		return
	}
	im.editingHex = true
	im.hexBuffer = ps.Hex()[1:]
	im.blinkCounter = 0
	im.caretVisible = true
}

func (im *InputManager) stopHexEdit() {
	im.editingHex = false
	im.hexBuffer = ""
}

// handleHexEdit accepts hex digits only; Enter commits a valid 3 or 6
// digit value and keeps editing on anything else.
func (im *InputManager) handleHexEdit(g *Game) {
	im.blinkCounter++
	if im.blinkCounter%30 == 0 {
		im.caretVisible = !im.caretVisible
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if len(im.hexBuffer) >= 6 {
			break
		}
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			im.hexBuffer += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(im.hexBuffer) > 0 {
		im.hexBuffer = im.hexBuffer[:len(im.hexBuffer)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		im.stopHexEdit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		hex, err := picker.NormalizeHex("#" + im.hexBuffer)
		if err != nil {
			g.ui.addEvent("invalid hex: #" + im.hexBuffer)
			return
		}
		if ps := g.picker.Panel(); ps != nil {
			if err := ps.CommitHex(hex); err != nil {
				log.Printf("hex: %v", err)
			}
		}
		im.stopHexEdit()
	}
}
