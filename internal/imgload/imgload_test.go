package imgload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// twoRows returns a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetNRGBA(x, 0, red)
		img.SetNRGBA(x, 1, blue)
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"face.png": {Data: encodePNG(t, twoRows())}}

	img, err := Load(fsys, "face.png", false)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, red, img.NRGBAAt(0, 0))

	img, err = Load(fsys, "face.png", true)
	require.NoError(t, err)
	assert.Equal(t, blue, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(1, 1))
}

func TestLoad_Errors(t *testing.T) {
	fsys := fstest.MapFS{"broken.png": {Data: []byte("not a png")}}

	_, err := Load(fsys, "missing.jpg", false)
	assert.Error(t, err)

	_, err = Load(fsys, "broken.png", false)
	assert.ErrorContains(t, err, "broken.png")
}

func TestToNRGBA_Converts(t *testing.T) {
	gray := image.NewGray(image.Rect(3, 3, 5, 4))
	gray.SetGray(3, 3, color.Gray{Y: 200})

	img := ToNRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, img.NRGBAAt(0, 0))
	assert.Len(t, img.Pix, 2*1*4)
}

func TestFlip_OddHeight(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(0, 2, blue)

	Flip(img)
	assert.Equal(t, blue, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 1))
	assert.Equal(t, red, img.NRGBAAt(0, 2))
}
