package main

import "image/color"

// Color Palette
var (
	ColorBackground    = color.RGBA{0x12, 0x12, 0x14, 0xff} // Main window background
	ColorPanelBg       = color.RGBA{0x22, 0x22, 0x2a, 0xff} // Popup panel background
	ColorPanelBorder   = color.RGBA{0x44, 0x44, 0x50, 0xff} // Popup and trigger border
	ColorFieldBg       = color.RGBA{0x18, 0x18, 0x1c, 0xff} // Hex and numeric field background
	ColorFieldActive   = color.RGBA{0x33, 0x55, 0xff, 0xff} // Border of the field being edited
	ColorButtonBg      = color.RGBA{0x11, 0x11, 0x16, 0xff} // Mode and system picker buttons
	ColorHandle        = color.White                        // Drag handle outline
	ColorHandleShadow  = color.RGBA{0x00, 0x00, 0x00, 0xaa} // Drag handle inner ring
	ColorCheckerLight  = color.RGBA{0xcc, 0xcc, 0xcc, 0xff} // Transparency checkerboard
	ColorCheckerDark   = color.RGBA{0x88, 0x88, 0x88, 0xff}
	ColorText          = color.White                        // Standard text
	ColorTextDim       = color.RGBA{0xdd, 0xdd, 0xdd, 0xff} // Dimmed text (event log)
	ColorLogBg         = color.RGBA{0x0c, 0x0c, 0x0e, 0xee} // Event log background
	ColorMenuBg        = color.RGBA{0x10, 0x10, 0x12, 0xff} // Context menu background
	ColorMenuBorder    = color.RGBA{0x44, 0x44, 0x50, 0xff} // Context menu border
	ColorMenuHighlight = color.RGBA{0x33, 0x55, 0xff, 0xff} // Context menu hover highlight
)

// Layout Constants
const (
	TriggerX = 40
	TriggerY = 300
	TriggerW = 48
	TriggerH = 24

	PanelPadding     = 8
	PanelBorderWidth = 2
	PopupOffset      = 4

	BoardW      = 200
	BoardH      = 150
	SliderH     = 12
	SliderGap   = 6
	PreviewSize = 30
	FieldH      = 18
	FieldW      = 40
	HexFieldW   = 70
	ButtonW     = 44
	HandleSize  = 8
	CheckerSize = 6
)
