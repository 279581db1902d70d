package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxDimension bounds the longest edge of stored catalog images.
const maxDimension = 1280

const webpQuality = 85

// Normalize decodes an uploaded image (jpeg, png, gif, webp), downscales it
// to fit maxDimension, and re-encodes it as webp. Callers fall back to the
// raw payload when the bytes are not a decodable image.
func Normalize(r io.Reader) (io.Reader, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WebpName swaps the extension on a stored filename.
func WebpName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i] + ".webp"
		}
	}
	return name + ".webp"
}

func scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return src
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
