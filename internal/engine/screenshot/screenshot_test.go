package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRGBA(t *testing.T) {
	// 1x2 image: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, b)

	r, _, b, _ = img.At(0, 1).RGBA()
	assert.NotZero(t, r)
	assert.Zero(t, b)
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	_, err := FlipRGBA(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Screenshots")
	c := New(dir, "Screenshot")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	path, err := c.SavePixels(make([]byte, 2*2*4), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Screenshot_2024-03-01_12-30-45.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}
