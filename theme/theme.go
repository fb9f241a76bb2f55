// Package theme holds the colours the richlabel window draws with.
package theme

import (
	"image/color"

	"github.com/rjkroege/richlabel/rich"
)

type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Link       color.RGBA
	Pressed    color.RGBA
	Disabled   color.RGBA
}

var (
	darkMode bool
	current  = lightPalette
)

var lightPalette = Palette{
	// Plan 9 defaults
	Background: color.RGBA{R: 0xff, G: 0xff, B: 0xea, A: 0xff}, // draw.Paleyellow
	Text:       color.RGBA{A: 0xff},
	Link:       rich.LinkBlue,
	Pressed:    rich.PressedGray,
	Disabled:   color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

var darkPalette = Palette{
	Background: color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
	Text:       color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	Link:       color.RGBA{R: 0x88, G: 0xaa, B: 0xff, A: 0xff},
	Pressed:    color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
	Disabled:   color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
}

// SetDarkMode selects between the light and dark palettes.
func SetDarkMode(enabled bool) {
	darkMode = enabled
	if enabled {
		current = darkPalette
	} else {
		current = lightPalette
	}
}

// IsDarkMode reports the current mode.
func IsDarkMode() bool { return darkMode }

// Current returns the active colour palette.
func Current() Palette { return current }

// LinkStyle is the link style in the palette's colours: underlined,
// backed by Pressed while highlighted and greyed out when disabled.
func (p Palette) LinkStyle() rich.Style {
	return rich.NewStyle("a").
		Foreground(rich.Normal, p.Link).
		Underline(rich.Normal, rich.LineSingle).
		Background(rich.Highlighted, p.Pressed).
		Foreground(rich.Disabled, p.Disabled)
}

// Inherited returns the attributes a label draws beneath its text.
func (p Palette) Inherited() rich.Attrs {
	return rich.Attrs{
		rich.Foreground: rich.ColorValue(p.Text),
		rich.Background: rich.ColorValue(p.Background),
	}
}
