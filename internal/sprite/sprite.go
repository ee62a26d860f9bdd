// Package sprite holds the raster images passed between creatures, the part
// catalog, the workspace and persistence. Images travel as PNG bytes; the
// decoder also accepts WebP so hand-exported assets can be seeded as-is.
package sprite

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image"
	"image/color"
	"image/png"

	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/KirkDiggler/monster-maker/internal/errors"
)

// Image is an encoded raster with its content reference and native size.
// Images are shared read-only: many placed parts may point at one Image.
type Image struct {
	// Ref identifies the encoded content; equal bytes give equal refs
	Ref    string
	Data   []byte
	Width  int
	Height int
}

// Decode decodes PNG or WebP bytes.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode sprite image")
	}
	return img, nil
}

// Encode encodes img as PNG.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode sprite image")
	}
	return buf.Bytes(), nil
}

// FromImage encodes img and wraps it.
func FromImage(img image.Image) (*Image, error) {
	data, err := Encode(img)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Image{
		Ref:    RefOf(data),
		Data:   data,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// FromBytes reads the dimensions of an encoded image without keeping the
// decoded pixels.
func FromBytes(data []byte) (*Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read sprite header")
	}
	return &Image{
		Ref:    RefOf(data),
		Data:   data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// RefOf returns the content reference for encoded bytes.
func RefOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:12])
}

// OpaqueBounds returns the tight box around pixels with non-zero alpha.
// ok is false when every pixel is fully transparent.
func OpaqueBounds(img image.Image) (box image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// AutoCrop trims fully transparent borders. The result is a fresh NRGBA with
// its origin at (0,0). A fully transparent image is returned unchanged.
func AutoCrop(img image.Image) image.Image {
	box, ok := OpaqueBounds(img)
	if !ok {
		return img
	}

	out := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetNRGBA(x-box.Min.X, y-box.Min.Y, c)
		}
	}
	return out
}

// CropBytes decodes, auto-crops and re-encodes a part image.
func CropBytes(data []byte) (*Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FromImage(AutoCrop(img))
}
