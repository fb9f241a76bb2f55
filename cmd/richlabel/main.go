// Command richlabel shows tagged text as an interactive label.
//
//	richlabel [-d] [-sheet styles.toml] [-ansi] '<a href="http://9p.io">Plan 9</a> from Bell Labs'
//
// With no arguments the text is read from standard input. In a window,
// clicking a link prints its URL. With -ansi the normal, disabled and
// each highlighted rendering are written to standard output instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rjkroege/richlabel/ansi"
	"github.com/rjkroege/richlabel/draw"
	"github.com/rjkroege/richlabel/label"
	"github.com/rjkroege/richlabel/markup"
	"github.com/rjkroege/richlabel/rich"
	"github.com/rjkroege/richlabel/theme"
)

var (
	debug     = flag.Bool("d", false, "Log label state changes")
	sheetflag = flag.String("sheet", "", "TOML style sheet")
	ansiflag  = flag.Bool("ansi", false, "Print renderings to stdout instead of opening a window")
	fontflag  = flag.String("font", "/mnt/font/Go-Regular/13a/font", "Font")
	widthflag = flag.Int("w", 0, "Wrap width in pixels (0 for the window width)")
	winsize   = flag.String("W", "640x200", "Window Size (WidthxHeight)")
	darkflag  = flag.Bool("dark", false, "Use the dark palette")
)

const margin = 20

func main() {
	flag.Parse()
	if !*debug {
		log.SetOutput(io.Discard)
	}
	theme.SetDarkMode(*darkflag)

	src, err := source()
	if err != nil {
		fmt.Fprintln(os.Stderr, "richlabel:", err)
		os.Exit(1)
	}
	sheet, err := styleSheet(*sheetflag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "richlabel:", err)
		os.Exit(1)
	}
	doc, err := markup.Parse(src, sheet, markup.LinkTuner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "richlabel:", err)
		os.Exit(1)
	}

	if *ansiflag {
		dump(os.Stdout, doc.Text, ansi.Detect())
		return
	}
	if err := run(doc); err != nil {
		fmt.Fprintln(os.Stderr, "richlabel:", err)
		os.Exit(1)
	}
}

func source() (string, error) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	return strings.TrimSuffix(string(b), "\n"), err
}

// styleSheet returns the default sheet, with links in the palette's
// colours, overridden by the tags in the named TOML file.
func styleSheet(name string) (markup.StyleSheet, error) {
	sheet := markup.DefaultStyleSheet()
	sheet["a"] = theme.Current().LinkStyle()
	if name == "" {
		return sheet, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	user, err := markup.ParseStyleSheet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for tag, s := range user {
		sheet[tag] = s
	}
	return sheet, nil
}

func dump(w io.Writer, t *rich.Text, p termenv.Profile) {
	fmt.Fprintf(w, "normal:\t%s\n", ansi.Render(t.Normal(), p))
	fmt.Fprintf(w, "disabled:\t%s\n", ansi.Render(t.Disabled(), p))
	for _, d := range t.Interactive() {
		fmt.Fprintf(w, "%v %q:\t%s\n", d.Class, t.Slice(d.Range), ansi.Render(t.Highlighted(d), p))
	}
}

func run(doc *markup.Doc) error {
	d, err := draw.Open(nil, *fontflag, "richlabel", *winsize)
	if err != nil {
		return fmt.Errorf("can't open display: %v", err)
	}
	if err := d.Attach(draw.Refnone); err != nil {
		return fmt.Errorf("failed to attach to window: %v", err)
	}

	// Try the flag's font then the fallbacks.
	var font draw.Font
	for _, fn := range []string{*fontflag, "/mnt/font/Go-Regular/13a/font", "/lib/font/bit/lucsans/euro.8.font"} {
		if font, err = d.OpenFont(fn); err == nil {
			break
		}
		log.Println("Couldn't open font", fn, "because", err)
	}
	if font == nil {
		return fmt.Errorf("none of the font choices were available")
	}
	palette := theme.Current()
	background, err := d.AllocImage(image.Rect(0, 0, 1, 1), d.ScreenImage().Pix(), true, draw.ColorOf(palette.Background))
	if err != nil {
		return err
	}

	dirty := false
	l := label.New(
		label.WithFont(font),
		label.WithInherited(palette.Inherited()),
		label.WithLogger(log.Default()),
		label.WithOnHighlight(func(*label.Label, rich.Detection, bool) {
			dirty = true
		}),
		label.WithOnClick(func(_ *label.Label, det rich.Detection) {
			if url := doc.Links.URLAt(det.Range.Start); url != "" {
				fmt.Println(url)
				return
			}
			fmt.Println(doc.Text.Slice(det.Range))
		}),
	)
	l.SetText(doc.Text)

	layout := func() {
		r := d.ScreenImage().R().Inset(margin)
		if *widthflag > 0 && r.Min.X+*widthflag < r.Max.X {
			r.Max.X = r.Min.X + *widthflag
		}
		l.Layout(r)
	}
	redraw := func() {
		screen := d.ScreenImage()
		screen.Draw(screen.R(), background, nil, image.Point{})
		l.Redraw(screen)
		d.Flush()
		dirty = false
	}

	mousectl := d.InitMouse()
	keyboardctl := d.InitKeyboard()
	layout()
	redraw()
	for {
		select {
		case <-mousectl.Resize:
			if err := d.Attach(draw.Refnone); err != nil {
				return fmt.Errorf("failed to attach to window: %v", err)
			}
			layout()
			redraw()
		case m := <-mousectl.C:
			l.HandleMouse(m)
			if dirty {
				redraw()
			}
		case r := <-keyboardctl.C:
			switch r {
			case 'q', 0x7F: // Del
				return nil
			case 'e':
				l.SetEnabled(!l.Enabled())
				layout()
				redraw()
			}
		}
	}
}
