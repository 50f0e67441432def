// Package colorpicker implements the state engine behind an embeddable color
// selection widget: color conversions, the alpha channel, live and committed
// HSV tracking, and the debounced open/close state of the popup panel.
//
// The engine has no drawing code. A host (see cmd/pickerdemo) feeds it pointer,
// keyboard and focus events and renders whatever State it reports.
package colorpicker

import "github.com/pkg/errors"

// Error taxonomy. Call sites wrap these with the offending input, so use
// errors.Is to test for them.
var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrInvalidAlpha       = errors.New("invalid alpha")
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidPlacement   = errors.New("invalid placement")
)
