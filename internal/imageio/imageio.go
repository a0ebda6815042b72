package imageio

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Stdin is the path that makes Load read from the given reader.
const Stdin = "-"

// Load decodes the image at path, or from stdin when path is "-".
// EXIF orientation is applied to JPEG and TIFF input.
func Load(path string, stdin io.Reader) (image.Image, error) {
	if path == Stdin {
		img, err := imaging.Decode(stdin, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode stdin: %w", err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
