package draw

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceFont measures text with a golang.org/x/image font.Face. It can
// drive layout without a window system, but images from a Display draw
// nothing with it.
type FaceFont struct {
	name string
	face font.Face
}

var _ = Font((*FaceFont)(nil))

// NewFaceFont wraps face under the given name.
func NewFaceFont(name string, face font.Face) *FaceFont {
	return &FaceFont{name: name, face: face}
}

// Fixed7x13 is the basicfont 7x13 face, a fixed-width face handy for
// tests and terminal-sized layouts.
func Fixed7x13() *FaceFont {
	return NewFaceFont("basicfont.Face7x13", basicfont.Face7x13)
}

func (f *FaceFont) Name() string { return f.name }

func (f *FaceFont) Height() int {
	return f.face.Metrics().Height.Ceil()
}

func (f *FaceFont) BytesWidth(b []byte) int {
	return font.MeasureBytes(f.face, b).Ceil()
}

func (f *FaceFont) StringWidth(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}
