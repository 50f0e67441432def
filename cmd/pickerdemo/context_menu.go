package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// MenuAction describes what action was selected in the context menu
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionNextMode
	MenuActionLoadSwatch
	MenuActionSaveSwatch
	MenuActionReset
)

const (
	menuItemH = 22
	menuW     = 160
	menuPad   = 4
)

// ContextMenu is the right-click menu shown over the open panel.
type ContextMenu struct {
	visible  bool
	x, y     int
	items    []string
	actions  []MenuAction
	selected int
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{
		items:    []string{"Next Mode", "Load Swatch...", "Save Swatch...", "Reset to Default"},
		actions:  []MenuAction{MenuActionNextMode, MenuActionLoadSwatch, MenuActionSaveSwatch, MenuActionReset},
		selected: -1,
	}
}

func (cm *ContextMenu) Visible() bool { return cm.visible }

func (cm *ContextMenu) Show(x, y int) {
	cm.visible = true
	cm.x = x
	cm.y = y
	cm.selected = -1
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

// Update returns the action picked this frame, if any. Any click closes
// the menu.
func (cm *ContextMenu) Update() MenuAction {
	if !cm.visible {
		return MenuActionNone
	}

	mx, my := ebiten.CursorPosition()
	if mx >= cm.x && mx <= cm.x+menuW && my >= cm.y && my < cm.y+menuItemH*len(cm.items) {
		cm.selected = (my - cm.y) / menuItemH
	} else {
		cm.selected = -1
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		sel := cm.selected
		cm.Hide()
		if sel >= 0 {
			return cm.actions[sel]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cm.Hide()
	}
	return MenuActionNone
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	bgX := float64(cm.x - menuPad)
	bgY := float64(cm.y - menuPad)
	bgW := float64(menuW + menuPad*2)
	bgH := float64(menuItemH*len(cm.items) + menuPad*2)
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, bgH, ColorMenuBg)
	drawBorder(screen, bgX, bgY, bgW, bgH, 2, ColorMenuBorder)

	for i, it := range cm.items {
		iy := cm.y + i*menuItemH
		if cm.selected == i {
			ebitenutil.DrawRect(screen, float64(cm.x), float64(iy), menuW, menuItemH, ColorMenuHighlight)
		}
		drawTextAt(screen, face, it, cm.x+6, iy+4, ColorText)
	}
}
