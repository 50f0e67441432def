package colorpicker

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"strings"
	"testing"
)

var quiet = log.New(io.Discard, "", 0)

func newTestPanel(t *testing.T, cfg PanelConfig) (*PanelState, *[]Change) {
	t.Helper()
	var changes []Change
	cfg.OnChange = func(c Change) { changes = append(changes, c) }
	if cfg.Logger == nil {
		cfg.Logger = quiet
	}
	ps, err := NewPanelState(cfg)
	if err != nil {
		t.Fatalf("NewPanelState: %v", err)
	}
	return ps, &changes
}

func TestPanelInitialize(t *testing.T) {
	ps, changes := newTestPanel(t, PanelConfig{Color: "#F00", DefaultAlpha: 100})
	want := HSV{0, 100, 100}
	if !approxHSV(ps.Live(), want) || !approxHSV(ps.Committed(), want) {
		t.Errorf("live = %v, committed = %v, want both %v", ps.Live(), ps.Committed(), want)
	}
	if ps.Alpha() != 100 {
		t.Errorf("Alpha = %d, want 100", ps.Alpha())
	}
	if ps.Hex() != "#ff0000" {
		t.Errorf("Hex = %q, want #ff0000", ps.Hex())
	}
	if len(*changes) != 0 {
		t.Errorf("initialize emitted %d changes, want 0", len(*changes))
	}
}

func TestPanelInitializeDefaults(t *testing.T) {
	ps, _ := newTestPanel(t, PanelConfig{DefaultAlpha: 80, Alpha: Controlled(120)})
	if ps.Hex() != DefaultColor {
		t.Errorf("Hex = %q, want %q", ps.Hex(), DefaultColor)
	}
	if ps.Alpha() != 80 {
		t.Errorf("Alpha = %d, want min(120, 80) = 80", ps.Alpha())
	}
}

func TestPanelInitializeInvalidColor(t *testing.T) {
	_, err := NewPanelState(PanelConfig{Color: "#nothex", Logger: quiet})
	if !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("NewPanelState error = %v, want ErrInvalidColorFormat", err)
	}
}

func TestPanelRestoreKeepsExactHSV(t *testing.T) {
	exact := HSV{123.456, 67.891, 45.678}
	ps, _ := newTestPanel(t, PanelConfig{Color: HSVToHex(exact), Restore: &exact, DefaultAlpha: 100})
	if ps.Live() != exact || ps.Committed() != exact {
		t.Errorf("live = %v, committed = %v, want %v", ps.Live(), ps.Committed(), exact)
	}

	// a restore value that doesn't match the color is ignored
	other := HSV{10, 10, 10}
	ps, _ = newTestPanel(t, PanelConfig{Color: "#00ff00", Restore: &other, DefaultAlpha: 100})
	if !approxHSV(ps.Live(), HSV{120, 100, 100}) {
		t.Errorf("live = %v, want green", ps.Live())
	}
}

func TestPanelLiveVersusCommitted(t *testing.T) {
	ps, changes := newTestPanel(t, PanelConfig{Color: "#00ff00", DefaultAlpha: 100})
	before := ps.Committed()

	drag := []HSV{{120, 90, 90}, {121, 80, 85}, {122, 70, 80}}
	for _, hsv := range drag {
		ps.OnLiveColorChange(hsv, false)
		if ps.Committed() != before {
			t.Fatalf("committed moved during drag: %v", ps.Committed())
		}
		if ps.Live() != hsv {
			t.Fatalf("live = %v, want %v", ps.Live(), hsv)
		}
	}
	if len(*changes) != len(drag) {
		t.Fatalf("got %d changes, want %d", len(*changes), len(drag))
	}
	last := (*changes)[len(*changes)-1]
	if last.HSV != drag[2] || last.Color != HSVToHex(drag[2]) || last.Alpha != 100 {
		t.Errorf("last change = %+v", last)
	}

	ps.OnLiveColorChange(HSV{200, 50, 50}, true)
	if ps.Committed() != (HSV{200, 50, 50}) || ps.Live() != ps.Committed() {
		t.Errorf("after sync: live = %v, committed = %v", ps.Live(), ps.Committed())
	}
}

func TestPanelCommit(t *testing.T) {
	ps, _ := newTestPanel(t, PanelConfig{Color: "#000", DefaultAlpha: 100})
	ps.OnLiveColorChange(HSV{30, 40, 50}, false)
	ps.Commit()
	if ps.Committed() != (HSV{30, 40, 50}) {
		t.Errorf("Committed = %v, want hsv(30, 40, 50)", ps.Committed())
	}
}

func TestPanelExternalColorUpdate(t *testing.T) {
	var logs bytes.Buffer
	ps, changes := newTestPanel(t, PanelConfig{Color: "#F00", DefaultAlpha: 100, Logger: log.New(&logs, "", 0)})
	ps.OnLiveColorChange(HSV{50, 50, 50}, false)

	if err := ps.OnExternalColorUpdate("#0000ff"); err != nil {
		t.Fatal(err)
	}
	want := HSV{240, 100, 100}
	if !approxHSV(ps.Live(), want) || !approxHSV(ps.Committed(), want) {
		t.Errorf("live = %v, committed = %v, want both %v", ps.Live(), ps.Committed(), want)
	}

	if err := ps.OnExternalColorUpdate(""); err != nil {
		t.Errorf("empty update error: %v", err)
	}
	err := ps.OnExternalColorUpdate("#12")
	if !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("bad update error = %v, want ErrInvalidColorFormat", err)
	}
	if !approxHSV(ps.Live(), want) || !approxHSV(ps.Committed(), want) {
		t.Errorf("bad update changed state: live = %v, committed = %v", ps.Live(), ps.Committed())
	}
	if !strings.Contains(logs.String(), "ignoring host color") {
		t.Errorf("log = %q, want a rejected color entry", logs.String())
	}
	if len(*changes) != 1 {
		t.Errorf("external updates emitted changes: got %d, want 1", len(*changes))
	}
}

func TestPanelExternalAlphaUpdate(t *testing.T) {
	ps, _ := newTestPanel(t, PanelConfig{Alpha: Controlled(30), DefaultAlpha: 100})
	ps.OnExternalAlphaUpdate(55)
	if ps.Alpha() != 55 {
		t.Errorf("Alpha = %d, want 55", ps.Alpha())
	}
	ps.OnExternalAlphaUpdate(500)
	if ps.Alpha() != 100 {
		t.Errorf("Alpha = %d, want 100", ps.Alpha())
	}
}

func TestPanelAlphaChange(t *testing.T) {
	ps, changes := newTestPanel(t, PanelConfig{Color: "#F00", DefaultAlpha: 100})
	if err := ps.OnAlphaChange(40); err != nil {
		t.Fatal(err)
	}
	if ps.Alpha() != 40 {
		t.Errorf("Alpha = %d, want 40", ps.Alpha())
	}
	if got := (*changes)[0]; got.Alpha != 40 || got.Color != "#ff0000" {
		t.Errorf("change = %+v, want alpha 40 on #ff0000", got)
	}

	if err := ps.OnAlphaChange(math.NaN()); !errors.Is(err, ErrInvalidAlpha) {
		t.Errorf("OnAlphaChange(NaN) error = %v, want ErrInvalidAlpha", err)
	}
	if len(*changes) != 1 || ps.Alpha() != 40 {
		t.Errorf("NaN alpha changed state: alpha %d, %d changes", ps.Alpha(), len(*changes))
	}
}

func TestPanelAlphaChangeControlled(t *testing.T) {
	ps, changes := newTestPanel(t, PanelConfig{Alpha: Controlled(30), DefaultAlpha: 100})
	if err := ps.OnAlphaChange(60); err != nil {
		t.Fatal(err)
	}
	if ps.Alpha() != 30 {
		t.Errorf("Alpha = %d, want host value 30", ps.Alpha())
	}
	if len(*changes) != 1 || (*changes)[0].Alpha != 60 {
		t.Errorf("changes = %+v, want one with alpha 60", *changes)
	}

	ps.SetAlphaControlled(false)
	ps.OnAlphaChange(70)
	if ps.Alpha() != 70 {
		t.Errorf("Alpha = %d, want 70 once uncontrolled", ps.Alpha())
	}
}

func TestPanelCommitHex(t *testing.T) {
	ps, changes := newTestPanel(t, PanelConfig{Color: "#F00", DefaultAlpha: 100})
	if err := ps.CommitHex("#0f0"); err != nil {
		t.Fatal(err)
	}
	if ps.Hex() != "#00ff00" || ps.Committed() != ps.Live() {
		t.Errorf("after CommitHex: hex %q, live %v, committed %v", ps.Hex(), ps.Live(), ps.Committed())
	}
	if err := ps.CommitHex("#0f"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("CommitHex(#0f) error = %v, want ErrInvalidColorFormat", err)
	}
	if ps.Hex() != "#00ff00" || len(*changes) != 1 {
		t.Errorf("bad hex changed state: hex %q, %d changes", ps.Hex(), len(*changes))
	}
}

func TestPanelCommitFields(t *testing.T) {
	ps, _ := newTestPanel(t, PanelConfig{Color: "#F00", DefaultAlpha: 100})
	if err := ps.CommitFields(ModeRGB, [3]float64{0, 0, 255}); err != nil {
		t.Fatal(err)
	}
	if ps.Hex() != "#0000ff" {
		t.Errorf("Hex = %q, want #0000ff", ps.Hex())
	}
	if err := ps.CommitFields(ModeHSB, [3]float64{400, 0, 0}); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("CommitFields out of range error = %v", err)
	}
	if ps.Hex() != "#0000ff" {
		t.Errorf("rejected fields changed color to %q", ps.Hex())
	}
}

func TestPanelHighFrequencyDrag(t *testing.T) {
	ps, _ := newTestPanel(t, PanelConfig{DefaultAlpha: 100})
	for i := 0; i < 10000; i++ {
		ps.OnLiveColorChange(HSV{float64(i % 360), 50, 50}, false)
	}
	if ps.Live() != (HSV{float64(9999 % 360), 50, 50}) {
		t.Errorf("Live = %v, want last written value", ps.Live())
	}
}
