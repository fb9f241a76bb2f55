package label

import (
	"image/color"
	"log"

	"github.com/rjkroege/richlabel/draw"
	"github.com/rjkroege/richlabel/rich"
)

// Option configures a Label.
type Option func(*Label)

// WithFont is an Option that sets the font the default layout measures
// and draws with.
func WithFont(f draw.Font) Option {
	return func(l *Label) {
		l.font = f
	}
}

// WithForeground is an Option that sets the inherited text color.
func WithForeground(c color.Color) Option {
	return func(l *Label) {
		l.inherited = l.inherited.With(rich.Foreground, rich.ColorValue(c))
	}
}

// WithShadow is an Option that sets an inherited text shadow.
func WithShadow(s rich.Shadow) Option {
	return func(l *Label) {
		l.inherited = l.inherited.With(rich.ShadowKey, rich.ShadowValue(s))
	}
}

// WithInherited is an Option that places a under every span. Detection
// attributes win over it.
func WithInherited(a rich.Attrs) Option {
	return func(l *Label) {
		l.inherited = l.inherited.Merge(a)
	}
}

// WithLayout is an Option that replaces the GridLayout.
func WithLayout(lay Layouter) Option {
	return func(l *Label) {
		l.layout = lay
	}
}

// WithMaxLines is an Option that limits the default layout to n lines.
// Zero means no limit.
func WithMaxLines(n int) Option {
	return func(l *Label) {
		l.maxLines = n
	}
}

// WithAlignment is an Option that sets how the default layout places
// each line.
func WithAlignment(a Alignment) Option {
	return func(l *Label) {
		l.align = a
	}
}

// WithLineBreak is an Option that sets what the default layout does with
// text past the last line shown. The default is TruncateTail.
func WithLineBreak(b LineBreak) Option {
	return func(l *Label) {
		l.brk = b
	}
}

// WithLogger is an Option that sets where state changes are logged.
func WithLogger(lg *log.Logger) Option {
	return func(l *Label) {
		l.log = lg
	}
}

// WithOnClick is an Option that sets the click callback.
func WithOnClick(fn func(*Label, rich.Detection)) Option {
	return func(l *Label) {
		l.onClick = fn
	}
}

// WithOnHighlight is an Option that sets the highlight callback.
func WithOnHighlight(fn func(*Label, rich.Detection, bool)) Option {
	return func(l *Label) {
		l.onHighlight = fn
	}
}
