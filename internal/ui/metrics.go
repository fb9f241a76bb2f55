package ui

// LineMetrics converts between line counts and pixel heights for a
// block of text set in one font, optionally capped at a maximum number
// of lines.
type LineMetrics struct {
	lineHeight int
	maxLines   int
}

// NewLineMetrics creates LineMetrics for lines lineHeight pixels tall.
// A maxLines of zero or less means no limit.
func NewLineMetrics(lineHeight, maxLines int) *LineMetrics {
	if maxLines < 0 {
		maxLines = 0
	}
	return &LineMetrics{
		lineHeight: lineHeight,
		maxLines:   maxLines,
	}
}

// LineHeight returns the height of one line.
func (lm *LineMetrics) LineHeight() int {
	return lm.lineHeight
}

// MaxLines returns the line cap, or 0 when unlimited.
func (lm *LineMetrics) MaxLines() int {
	return lm.maxLines
}

// Clamp limits lines to the cap.
func (lm *LineMetrics) Clamp(lines int) int {
	if lines < 0 {
		return 0
	}
	if lm.maxLines > 0 && lines > lm.maxLines {
		return lm.maxLines
	}
	return lines
}

// Height returns the pixel height of lines lines after clamping.
func (lm *LineMetrics) Height(lines int) int {
	return lm.Clamp(lines) * lm.lineHeight
}

// LinesFor returns the number of complete lines that fit in height,
// after clamping.
func (lm *LineMetrics) LinesFor(height int) int {
	if lm.lineHeight <= 0 {
		return 0
	}
	return lm.Clamp(height / lm.lineHeight)
}

// Fits reports whether line index i (0-based) is shown in a box of
// the given height.
func (lm *LineMetrics) Fits(i, height int) bool {
	return i >= 0 && i < lm.LinesFor(height)
}
