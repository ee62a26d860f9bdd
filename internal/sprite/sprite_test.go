package sprite_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

type SpriteTestSuite struct {
	suite.Suite
}

func TestSpriteSuite(t *testing.T) {
	suite.Run(t, new(SpriteTestSuite))
}

func blank(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func (s *SpriteTestSuite) TestAutoCropTrimsTransparentBorder() {
	img := blank(16, 16)
	img.SetNRGBA(3, 4, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(9, 12, color.NRGBA{G: 255, A: 10})

	cropped := sprite.AutoCrop(img)

	s.Equal(image.Rect(0, 0, 7, 9), cropped.Bounds())
	s.Equal(color.NRGBA{R: 255, A: 255}, cropped.At(0, 0))
	s.Equal(color.NRGBA{G: 255, A: 10}, cropped.At(6, 8))
}

func (s *SpriteTestSuite) TestAutoCropFullyTransparentPassesThrough() {
	img := blank(5, 3)

	cropped := sprite.AutoCrop(img)

	s.Same(img, cropped)
}

func (s *SpriteTestSuite) TestAutoCropIsIdempotent() {
	img := blank(4, 2)
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: uint8(x * 40), A: 255})
		img.SetNRGBA(x, 1, color.NRGBA{B: uint8(x * 30), A: 128})
	}

	once := sprite.AutoCrop(img)
	twice := sprite.AutoCrop(once)

	s.Equal(img.Bounds(), once.Bounds())
	s.Equal(once.Bounds(), twice.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			s.Equal(img.At(x, y), twice.At(x, y))
		}
	}
}

func (s *SpriteTestSuite) TestAutoCropHonoursNonZeroOrigin() {
	img := image.NewNRGBA(image.Rect(10, 10, 20, 20))
	img.SetNRGBA(12, 15, color.NRGBA{R: 1, A: 1})

	cropped := sprite.AutoCrop(img)

	s.Equal(image.Rect(0, 0, 1, 1), cropped.Bounds())
}

func (s *SpriteTestSuite) TestEncodeRoundTripKeepsSizeAndRef() {
	img := blank(6, 4)
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	encoded, err := sprite.FromImage(img)
	s.Require().NoError(err)
	s.Equal(6, encoded.Width)
	s.Equal(4, encoded.Height)

	header, err := sprite.FromBytes(encoded.Data)
	s.Require().NoError(err)
	s.Equal(encoded.Ref, header.Ref)
	s.Equal(6, header.Width)
}

func (s *SpriteTestSuite) TestCropBytes() {
	img := blank(10, 10)
	img.SetNRGBA(2, 2, color.NRGBA{A: 255})
	img.SetNRGBA(3, 5, color.NRGBA{A: 255})
	src, err := sprite.FromImage(img)
	s.Require().NoError(err)

	cropped, err := sprite.CropBytes(src.Data)
	s.Require().NoError(err)
	s.Equal(2, cropped.Width)
	s.Equal(4, cropped.Height)
}

func (s *SpriteTestSuite) TestDecodeRejectsGarbage() {
	_, err := sprite.Decode([]byte("not an image"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
