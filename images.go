package brandstudio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 85
)

// processImage decodes a reference image from src, downscales it to
// maxImageWidth if wider, and re-encodes it as JPEG. The backend's image
// analysis does not benefit from larger uploads.
func processImage(src io.Reader, originalName string) (StagedImage, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return StagedImage{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Resize if wider than max
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return StagedImage{}, fmt.Errorf("encode jpeg: %w", err)
	}

	name := SafeFilename(originalName)
	if !strings.HasSuffix(strings.ToLower(name), ".jpg") {
		if i := strings.LastIndex(name, "."); i > 0 {
			name = name[:i]
		}
		name += ".jpg"
	}

	return StagedImage{
		Name:        name,
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
		Width:       w,
		Height:      h,
	}, nil
}

// isImageData sniffs the first bytes of an upload and reports whether it
// is an image. The declared Content-Type header is not trusted.
func isImageData(head []byte) bool {
	return strings.HasPrefix(http.DetectContentType(head), "image/")
}
