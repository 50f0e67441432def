package colorpicker

import "time"

// BlurDelay is how long focus may stay away from the panel before the blur
// is reported.
const BlurDelay = 100 * time.Millisecond

// Clock supplies the current time to the blur debounce.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

type blurPhase int

const (
	blurIdle blurPhase = iota
	blurPending
)

type pickerPhase int

const (
	pickerClosed pickerPhase = iota
	pickerOpen
)

// BlurOutcome reports what a Tick did with a pending blur.
type BlurOutcome int

const (
	BlurNone BlurOutcome = iota
	BlurForwarded
	BlurSuppressed
)

func (o BlurOutcome) String() string {
	switch o {
	case BlurForwarded:
		return "forwarded"
	case BlurSuppressed:
		return "suppressed"
	default:
		return "none"
	}
}

// VisibilityConfig wires a VisibilityController to its owner. Every hook is
// optional.
type VisibilityConfig struct {
	Clock Clock
	Delay time.Duration

	// Snapshot builds the state passed to OnOpen and OnClose.
	Snapshot func() State
	// OnStateChange runs right after the open flag flips, before the
	// request callback and the host notification.
	OnStateChange func(open bool)
	OnOpen        func(State)
	OnClose       func(State)

	OnFocus func()
	OnBlur  func()

	FocusPanel   func()
	FocusTrigger func()
}

// VisibilityController owns the open flag of the popup and debounces focus
// loss so that a transient blur, such as a native dialog opened from inside
// the panel, doesn't close it.
//
// The debounce is a deadline rather than a goroutine timer: the host calls
// Tick from its event loop and every hook runs on that loop.
type VisibilityController struct {
	cfg  VisibilityConfig
	open bool

	blur     blurPhase
	deadline time.Time
	picker   pickerPhase

	destroyed bool
}

func NewVisibilityController(cfg VisibilityConfig) *VisibilityController {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.Delay <= 0 {
		cfg.Delay = BlurDelay
	}
	return &VisibilityController{cfg: cfg}
}

func (vc *VisibilityController) IsOpen() bool { return vc.open }

// Toggle flips the open flag unconditionally.
func (vc *VisibilityController) Toggle() {
	vc.setOpen(!vc.open, nil)
}

// RequestOpen opens the popup. It reports whether a transition happened.
// callback runs either way.
func (vc *VisibilityController) RequestOpen(callback func()) bool {
	return vc.setOpen(true, callback)
}

// RequestClose closes the popup. It reports whether a transition happened.
// callback runs either way.
func (vc *VisibilityController) RequestClose(callback func()) bool {
	return vc.setOpen(false, callback)
}

// OnVisibilityChange handles outside clicks, escape and trigger events from
// the popup host. Opening also focuses the panel so blur tracking is armed.
func (vc *VisibilityController) OnVisibilityChange(next bool) {
	vc.setOpen(next, func() {
		if next && vc.cfg.FocusPanel != nil {
			vc.cfg.FocusPanel()
		}
	})
}

func (vc *VisibilityController) setOpen(next bool, callback func()) bool {
	if vc.destroyed {
		return false
	}
	if vc.open == next {
		if callback != nil {
			callback()
		}
		return false
	}
	vc.open = next
	if !next {
		vc.reset()
	}
	if vc.cfg.OnStateChange != nil {
		vc.cfg.OnStateChange(next)
	}
	if callback != nil {
		callback()
	}
	var st State
	if vc.cfg.Snapshot != nil {
		st = vc.cfg.Snapshot()
	}
	st.Open = next
	if next {
		if vc.cfg.OnOpen != nil {
			vc.cfg.OnOpen(st)
		}
	} else if vc.cfg.OnClose != nil {
		vc.cfg.OnClose(st)
	}
	return true
}

// OnFocus cancels a pending blur. Only a focus that didn't cancel anything
// is reported to the host.
func (vc *VisibilityController) OnFocus() {
	if vc.destroyed || !vc.open {
		return
	}
	if vc.blur == blurPending {
		vc.blur = blurIdle
		return
	}
	if vc.cfg.OnFocus != nil {
		vc.cfg.OnFocus()
	}
}

// OnBlur starts, or restarts, the blur deadline.
func (vc *VisibilityController) OnBlur() {
	if vc.destroyed || !vc.open {
		return
	}
	vc.blur = blurPending
	vc.deadline = vc.cfg.Clock.Now().Add(vc.cfg.Delay)
}

// MarkSystemPickerOpen records that a native dialog was opened from inside
// the panel. The next blur to expire is swallowed and the mark cleared.
func (vc *VisibilityController) MarkSystemPickerOpen() {
	if vc.destroyed || !vc.open {
		return
	}
	vc.picker = pickerOpen
}

// Tick fires the pending blur once its deadline has passed.
func (vc *VisibilityController) Tick() BlurOutcome {
	if vc.destroyed || vc.blur != blurPending || vc.cfg.Clock.Now().Before(vc.deadline) {
		return BlurNone
	}
	vc.blur = blurIdle
	if vc.picker == pickerOpen {
		vc.picker = pickerClosed
		return BlurSuppressed
	}
	if vc.cfg.OnBlur != nil {
		vc.cfg.OnBlur()
	}
	return BlurForwarded
}

// Pending reports whether a blur is waiting for its deadline.
func (vc *VisibilityController) Pending() bool {
	return vc.blur == blurPending
}

// Deadline is when the pending blur fires. It is meaningless unless
// Pending is true.
func (vc *VisibilityController) Deadline() time.Time {
	return vc.deadline
}

// Focus moves input focus to the trigger while the popup is closed. While
// open the panel keeps focus.
func (vc *VisibilityController) Focus() {
	if vc.destroyed || vc.open {
		return
	}
	if vc.cfg.FocusTrigger != nil {
		vc.cfg.FocusTrigger()
	}
}

// Destroy cancels any pending blur and makes every later call a no-op.
func (vc *VisibilityController) Destroy() {
	vc.reset()
	vc.destroyed = true
}

func (vc *VisibilityController) reset() {
	vc.blur = blurIdle
	vc.deadline = time.Time{}
	vc.picker = pickerClosed
}
