package emoji

import (
	"image"
	"runtime"
	"strings"

	"github.com/koki-develop/imoji/internal/resize"
	"golang.org/x/sync/errgroup"
)

type Option struct {
	MaxWidth  int
	MaxHeight int
}

type Converter struct {
	workers int
}

func NewConverter() *Converter {
	return &Converter{
		workers: runtime.GOMAXPROCS(0),
	}
}

// ImageToEmoji returns one string per image row, top to bottom.
func (c *Converter) ImageToEmoji(img image.Image) []string {
	sz := img.Bounds()
	rows := make([]string, sz.Dy())

	var eg errgroup.Group
	eg.SetLimit(c.workers)
	for i := range rows {
		i := i
		eg.Go(func() error {
			y := sz.Min.Y + i
			b := new(strings.Builder)
			for x := sz.Min.X; x < sz.Max.X; x++ {
				b.WriteString(PixelToEmoji(img.At(x, y)))
			}
			rows[i] = b.String()
			return nil
		})
	}
	// workers never return an error
	_ = eg.Wait()

	return rows
}

// ImageToEmoji fits img into the optional bounds of opt and renders it as
// newline separated emoji rows with no trailing newline.
func ImageToEmoji(img image.Image, opt *Option) string {
	if opt == nil {
		opt = &Option{}
	}
	img = resize.NewResizer().Resize(img, opt.MaxWidth, opt.MaxHeight)
	return strings.Join(NewConverter().ImageToEmoji(img), "\n")
}
