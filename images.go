package staticpress

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

const jpegQuality = 80

// resizeImage scales a JPEG or PNG wider than maxWidth down to maxWidth,
// keeping the aspect ratio and the format. It reports false when data is
// left as is: other formats, images narrow enough, or maxWidth <= 0.
func resizeImage(data []byte, ext string, maxWidth int) ([]byte, bool, error) {
	ext = strings.ToLower(ext)
	if maxWidth <= 0 || (ext != ".jpg" && ext != ".jpeg" && ext != ".png") {
		return data, false, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return data, false, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= maxWidth {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, false, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if ext == ".png" {
		err = png.Encode(&buf, dst)
	} else {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return data, false, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}
