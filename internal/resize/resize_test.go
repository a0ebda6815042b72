package resize

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizer_Resize(t *testing.T) {
	tests := []struct {
		name                string
		w, h                int
		maxWidth, maxHeight int
		wantW, wantH        int
	}{
		{"no bounds", 5, 3, 0, 0, 5, 3},
		{"negative bounds", 5, 3, -1, -1, 5, 3},
		{"halve width", 4, 2, 2, 0, 2, 1},
		{"halve height", 4, 2, 0, 1, 2, 1},
		{"tighter height", 8, 8, 4, 2, 2, 2},
		{"bound larger than source", 4, 2, 100, 0, 4, 2},
		{"clamped to one", 100, 1, 10, 0, 10, 1},
		{"rounded", 3, 3, 2, 0, 2, 2},
		{"upscale into box", 2, 1, 6, 6, 6, 3},
	}
	r := NewResizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := r.Resize(img, tt.maxWidth, tt.maxHeight).Bounds()
			assert.Equal(t, tt.wantW, got.Dx())
			assert.Equal(t, tt.wantH, got.Dy())
		})
	}
}

func TestResizer_ResizeUnchangedReturnsSource(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	assert.Same(t, img, NewResizer().Resize(img, 0, 0))
}

func TestResizer_FitSizeEmpty(t *testing.T) {
	w, h := NewResizer().FitSize(image.Rect(0, 0, 0, 0), 10, 10)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
