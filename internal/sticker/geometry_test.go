package sticker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsetRect(t *testing.T) {
	r := insetRect(1024, 0.06)
	assert.Equal(t, 61, r.Min.X)
	assert.Equal(t, 61, r.Min.Y)
	assert.Equal(t, 1024-61, r.Max.X)
	// The content region never exceeds (1-2*inset) of the canvas.
	canvas := float64(1024)
	assert.LessOrEqual(t, r.Dx(), int(canvas*(1-2*0.06))+1)
}

func TestCoverCrop(t *testing.T) {
	t.Run("wide source crops width", func(t *testing.T) {
		crop := coverCrop(2000, 1000, 500, 500)
		assert.Equal(t, 1000, crop.Dy(), "full height kept")
		assert.Equal(t, 1000, crop.Dx(), "width trimmed to match aspect")
		assert.Equal(t, 500, crop.Min.X, "crop is centered")
	})

	t.Run("tall source crops height", func(t *testing.T) {
		crop := coverCrop(1000, 2000, 500, 500)
		assert.Equal(t, 1000, crop.Dx())
		assert.Equal(t, 1000, crop.Dy())
		assert.Equal(t, 500, crop.Min.Y)
	})

	t.Run("matching aspect keeps everything", func(t *testing.T) {
		crop := coverCrop(800, 800, 400, 400)
		assert.Equal(t, 800, crop.Dx())
		assert.Equal(t, 800, crop.Dy())
	})

	t.Run("crop never exceeds source", func(t *testing.T) {
		for _, dims := range [][4]int{{3, 1000, 901, 901}, {1000, 3, 901, 901}, {1, 1, 1024, 1024}} {
			crop := coverCrop(dims[0], dims[1], dims[2], dims[3])
			assert.GreaterOrEqual(t, crop.Min.X, 0)
			assert.GreaterOrEqual(t, crop.Min.Y, 0)
			assert.LessOrEqual(t, crop.Max.X, dims[0])
			assert.LessOrEqual(t, crop.Max.Y, dims[1])
		}
	})

	t.Run("degenerate input falls back to full source", func(t *testing.T) {
		crop := coverCrop(0, 0, 100, 100)
		assert.Equal(t, 0, crop.Dx())
	})
}
