package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	picker "github.com/example/colorpicker"
)

const (
	windowWidth  = 960
	windowHeight = 540

	optionsFile = "picker.yml"
	stateFile   = "state.yml"
	propsFile   = "host.yml"
)

type Game struct {
	picker *picker.ColorPicker
	ui     *UI

	renderer    *Renderer
	input       *InputManager
	contextMenu *ContextMenu
	props       *picker.PropsWatcher
}

func NewGame() (*Game, error) {
	g := &Game{}
	g.ui = NewUI()
	g.renderer = NewRenderer()
	g.input = NewInputManager()
	g.contextMenu = NewContextMenu()

	opts, err := picker.LoadOptions(optionsFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		opts = picker.DefaultOptions()
	}
	opts.OnChange = func(st picker.State) {
		g.ui.addEvent("change: " + st.Color + " " + st.CSS())
	}
	opts.OnOpen = func(st picker.State) {
		g.ui.addEvent("open: " + st.Color)
	}
	opts.OnClose = func(st picker.State) {
		g.ui.addEvent("close: " + st.Color)
		g.input.stopHexEdit()
		g.contextMenu.Hide()
		g.picker.Focus()
	}
	opts.OnBlur = func() {
		g.ui.addEvent("blur")
	}
	opts.FocusPanel = func() { g.input.focus = focusPanel }
	opts.FocusTrigger = func() { g.input.focus = focusTrigger }

	g.picker, err = picker.New(opts)
	if err != nil {
		return nil, err
	}

	// Restore the last session; a missing file is a first run.
	if st, err := picker.LoadState(stateFile); err == nil {
		if err := g.picker.Restore(st); err != nil {
			log.Printf("Restore: %v", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Printf("LoadState: %v", err)
	}

	if props, err := picker.ReadProps(propsFile); err == nil {
		if err := g.picker.SetProps(props); err != nil {
			log.Printf("SetProps: %v", err)
		}
	}
	if w, err := picker.WatchProps(propsFile, nil); err != nil {
		log.Printf("WatchProps: %v", err)
	} else {
		g.props = w
	}
	return g, nil
}

func (g *Game) Update() error {
	g.drainProps()

	g.input.HandleWindowFocus(g)
	if g.contextMenu.Visible() {
		g.input.HandleContextMenuInput(g)
	} else {
		g.input.HandlePointer(g)
		g.input.HandleKeyboard(g)
	}

	if out := g.picker.Tick(); out != picker.BlurNone {
		g.ui.addEvent("blur timer: " + out.String())
	}
	return nil
}

func (g *Game) drainProps() {
	if g.props == nil {
		return
	}
	select {
	case props := <-g.props.C:
		if err := g.picker.SetProps(props); err != nil {
			log.Printf("SetProps: %v", err)
			return
		}
		g.ui.addEvent("host props: " + g.picker.State().Color)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.renderer.DrawTrigger(screen, g.picker, g.input.focus == focusTrigger)
	g.renderer.DrawPanel(screen, g.ui.face, g.picker, g.input)

	g.ui.Draw(screen, g)

	g.contextMenu.Draw(screen, g.ui.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Return the outside dimensions so the logical screen matches window size.
	return outsideWidth, outsideHeight
}

// Close persists the picker and stops background work.
func (g *Game) Close() {
	if g.props != nil {
		g.props.Stop()
	}
	if err := picker.SaveState(stateFile, g.picker.State()); err != nil {
		log.Printf("SaveState: %v", err)
	}
	g.picker.Destroy()
}

func main() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Color Picker")
	ebiten.SetWindowResizable(true)
	g, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Print(err)
	}
}
