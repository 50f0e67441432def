// Command colorinfo prints a color in every notation the picker speaks,
// with a terminal swatch.
//
//	colorinfo [-alpha 40] [-mode hsl] '#f80' rebeccapurple
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	picker "github.com/example/colorpicker"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(7)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	alpha := flag.String("alpha", "100", "alpha percentage used for the rgba line")
	mode := flag.String("mode", "", "only print the numeric fields of this mode (rgb, hsb, hsl)")
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: colorinfo [-alpha N] [-mode M] color...")
		os.Exit(2)
	}
	a, err := picker.ParseAlpha(*alpha)
	if err != nil {
		log.Fatal(err)
	}
	var m picker.Mode
	if *mode != "" {
		if m, err = picker.ParseMode(*mode); err != nil {
			log.Fatal(err)
		}
	}

	failed := false
	for _, arg := range flag.Args() {
		hex, err := picker.ParseColor(arg)
		if err != nil {
			fmt.Println(errStyle.Render(fmt.Sprintf("%s: %v", arg, err)))
			failed = true
			continue
		}
		fmt.Println(render(arg, hex, a, m))
	}
	if failed {
		os.Exit(1)
	}
}

func render(name, hex string, alpha int, mode picker.Mode) string {
	hsv, _ := picker.HexToHSV(hex)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Padding(1, 4).
		Render("")
	title := lipgloss.NewStyle().Bold(true).Render(name)

	var lines []string
	if mode != "" {
		labels := mode.Labels()
		fields := picker.Fields(mode, hsv)
		for i := range labels {
			lines = append(lines, row(labels[i], fmt.Sprint(fields[i])))
		}
	} else {
		lines = []string{
			row("hex", hex),
			row("rgb", picker.HSVToRGB(hsv).String()),
			row("hsv", hsv.String()),
			row("hsl", picker.HSVToHSL(hsv).String()),
			row("rgba", picker.CSSRGBA(picker.HSVToRGB(hsv), alpha)),
		}
	}
	info := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...)
	return lipgloss.NewStyle().MarginBottom(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, swatch, "  ", info))
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
