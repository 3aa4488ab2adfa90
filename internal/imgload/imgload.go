// Package imgload decodes texture images into the pixel layout glTexImage2D
// expects.
package imgload

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"golang.org/x/image/draw"
)

// Load decodes name from fsys into tightly packed NRGBA pixels.
// With flipY the first row of the result is the bottom row of the file,
// which matches OpenGL's bottom-left texture origin.
func Load(fsys fs.FS, name string, flipY bool) (*image.NRGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", name, err)
	}
	img := ToNRGBA(src)
	if flipY {
		Flip(img)
	}
	return img, nil
}

// ToNRGBA converts any image to an NRGBA image anchored at the origin.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Flip mirrors img vertically in place.
func Flip(img *image.NRGBA) {
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := y * img.Stride
		bot := (h - 1 - y) * img.Stride
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
}
