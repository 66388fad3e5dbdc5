package tin

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedImage is returned by LoadImage and DecodeImage for data
// that is not a decodable image.
var ErrUnsupportedImage = errors.New("tin: unsupported image format")

// sniffLen is how many bytes filetype needs to recognise every format
// that is registered with the image package.
const sniffLen = 262

// Image is a decoded raster image that can be passed to image draw calls.
type Image struct {
	img  image.Image
	kind string
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	return &Image{img: img}
}

// LoadImage reads and decodes the image file at path.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tin: load image: %w", err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("tin: load image %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage sniffs the content type of r and decodes it.
func DecodeImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tin: decode image: %w", err)
	}
	head := data[:min(len(data), sniffLen)]
	if !filetype.IsImage(head) {
		return nil, ErrUnsupportedImage
	}
	kind, err := filetype.Match(head)
	if err != nil {
		return nil, fmt.Errorf("tin: decode image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedImage, kind.MIME.Value, err)
	}
	Logger().Debug("tin: image decoded", "type", kind.MIME.Value,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return &Image{img: img, kind: kind.Extension}, nil
}

// Source returns the underlying image.
func (i *Image) Source() image.Image { return i.img }

// Kind returns the file extension detected when the image was decoded,
// or "" for images created with NewImage.
func (i *Image) Kind() string { return i.kind }

// Width returns the width in pixels.
func (i *Image) Width() int { return i.img.Bounds().Dx() }

// Height returns the height in pixels.
func (i *Image) Height() int { return i.img.Bounds().Dy() }

// ColorAt returns the pixel at (x, y) in image coordinates, with the
// origin at the top-left corner. Points outside the image are transparent
// black.
func (i *Image) ColorAt(x, y int) Color {
	b := i.img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return Color{}
	}
	c := color.NRGBAModel.Convert(i.img.At(p.X, p.Y)).(color.NRGBA)
	return PackRGBA(c.R, c.G, c.B, c.A).Color()
}

// Resized returns a copy resampled to width x height.
func (i *Image) Resized(width, height int) *Image {
	if width < 1 || height < 1 {
		return i
	}
	if width == i.Width() && height == i.Height() {
		return i
	}
	return &Image{img: transform.Resize(i.img, width, height, transform.Linear), kind: i.kind}
}
