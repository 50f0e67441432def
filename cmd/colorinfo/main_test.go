package main

import (
	"strings"
	"testing"

	picker "github.com/example/colorpicker"
)

func TestRender(t *testing.T) {
	out := render("red", "#ff0000", 40, "")
	for _, want := range []string{"red", "#ff0000", "rgb(255, 0, 0)", "rgba(255,0,0,0.4)"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMode(t *testing.T) {
	out := render("blue", "#0000ff", 100, picker.ModeHSL)
	for _, want := range []string{"240", "100", "50"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rgba") {
		t.Errorf("mode output should only list fields:\n%s", out)
	}
}
