package graphics

import (
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font measures text for layout. Glyph rasterization belongs to the
// renderer; only advances and line metrics are needed here.
type Font struct {
	face font.Face
}

// NewFont wraps a font face. A nil face falls back to DefaultFont.
func NewFont(face font.Face) *Font {
	if face == nil {
		return DefaultFont()
	}
	return &Font{face: face}
}

// DefaultFont returns a fixed 7x13 bitmap face.
func DefaultFont() *Font {
	return &Font{face: basicfont.Face7x13}
}

// Face returns the underlying face.
func (f *Font) Face() font.Face {
	return f.face
}

// LineHeight returns the distance between consecutive baselines.
func (f *Font) LineHeight() float32 {
	return fixedToFloat(f.face.Metrics().Height)
}

// Advance returns the horizontal advance of s on a single line.
func (f *Font) Advance(s string) float32 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

// Measure returns the size of s. Explicit newlines start new lines.
func (f *Font) Measure(s string) Vec2 {
	lines := strings.Split(s, "\n")
	var width float32
	for _, l := range lines {
		width = max(width, f.Advance(l))
	}
	return Vec2{X: width, Y: f.LineHeight() * float32(len(lines))}
}

// Wrap breaks s into lines no wider than maxWidth, breaking at whitespace
// where possible. A word wider than maxWidth is split by rune. An infinite
// maxWidth only breaks on explicit newlines.
func (f *Font) Wrap(s string, maxWidth float32) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if IsInf(maxWidth) || f.Advance(para) <= maxWidth {
			out = append(out, para)
			continue
		}
		out = append(out, f.wrapParagraph(para, maxWidth)...)
	}
	return out
}

func (f *Font) wrapParagraph(para string, maxWidth float32) []string {
	var lines []string
	var line strings.Builder
	var lineWidth float32
	space := f.Advance(" ")

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.FieldsFunc(para, unicode.IsSpace) {
		w := f.Advance(word)
		if line.Len() > 0 && lineWidth+space+w > maxWidth {
			flush()
		}
		if w > maxWidth {
			for _, r := range word {
				rw := f.Advance(string(r))
				if line.Len() > 0 && lineWidth+rw > maxWidth {
					flush()
				}
				line.WriteRune(r)
				lineWidth += rw
			}
			continue
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
			lineWidth += space
		}
		line.WriteString(word)
		lineWidth += w
	}
	if line.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
