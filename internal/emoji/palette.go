package emoji

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// TransparentGlyph is emitted for pixels below the opacity threshold.
const TransparentGlyph = "▪"

// opacityThreshold is the smallest alpha treated as opaque (50%).
const opacityThreshold = 0x80

type Entry struct {
	Glyph string
	Color color.NRGBA
}

var Palette = []Entry{
	{"🟦", color.NRGBA{0x5d, 0xad, 0xec, 0xff}},
	{"🟪", color.NRGBA{0xaa, 0x8e, 0xd6, 0xff}},
	{"🟧", color.NRGBA{0xff, 0xac, 0x33, 0xff}},
	{"🟫", color.NRGBA{0x7c, 0x53, 0x3e, 0xff}},
	{"🟥", color.NRGBA{0xbe, 0x19, 0x31, 0xff}},
	{"🟨", color.NRGBA{0xfd, 0xcb, 0x58, 0xff}},
	{"🟩", color.NRGBA{0x78, 0xb1, 0x59, 0xff}},
	{"⬜", color.NRGBA{0xe6, 0xe7, 0xe8, 0xff}},
	{"⬛", color.NRGBA{0x29, 0x2f, 0x33, 0xff}},
}

type hsv struct {
	h, s, v float64
}

var paletteHSV = func() []hsv {
	p := make([]hsv, len(Palette))
	for i, e := range Palette {
		p[i] = toHSV(e.Color)
	}
	return p
}()

// toHSV converts c to HSV with every component in [0, 1].
func toHSV(c color.NRGBA) hsv {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, v := col.Hsv()
	return hsv{h / 360, s, v}
}

// distance does not wrap hue around 1.0, so reds on either side of 0°
// compare as far apart.
func distance(a, b hsv) float64 {
	var sum float64
	for _, d := range [...]float64{a.h - b.h, a.s - b.s, a.v - b.v} {
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Nearest returns the index of the palette entry closest to c, ignoring alpha.
// Ties go to the entry declared first.
func Nearest(c color.NRGBA) int {
	target := toHSV(c)
	best, bestDist := 0, math.Inf(1)
	for i, p := range paletteHSV {
		if d := distance(target, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// PixelToEmoji classifies a single pixel.
func PixelToEmoji(c color.Color) string {
	px := color.NRGBAModel.Convert(c).(color.NRGBA)
	if px.A < opacityThreshold {
		return TransparentGlyph
	}
	return Palette[Nearest(px)].Glyph
}
