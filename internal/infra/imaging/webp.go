package imaging

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const webpQuality = 80

// FitWidth scales (w, h) down so the width is at most maxWidth, keeping the
// aspect ratio. Images already narrow enough are left alone.
func FitWidth(w, h, maxWidth int) (int, int) {
	if maxWidth <= 0 || w <= maxWidth || w == 0 {
		return w, h
	}
	nh := h * maxWidth / w
	if nh < 1 {
		nh = 1
	}
	return maxWidth, nh
}

// ToWebP decodes a JPEG, PNG or WebP proof, shrinks it to maxWidth and
// re-encodes it as lossy WebP.
func ToWebP(r io.Reader, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := FitWidth(b.Dx(), b.Dy(), maxWidth)

	img := src
	if w != b.Dx() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert is ToWebP over an in-memory upload.
func Convert(body []byte, maxWidth int) ([]byte, error) {
	return ToWebP(bytes.NewReader(body), maxWidth)
}
