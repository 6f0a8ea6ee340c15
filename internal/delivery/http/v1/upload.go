package v1

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image MIME types accepted for logo and portfolio uploads. Content is sniffed from
// the bytes, never trusted from the request headers.
var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// readImageFile reads one multipart file fully and verifies it is an allowed image
// by content sniffing. Returns the bytes and the detected MIME type.
func readImageFile(fh *multipart.FileHeader, maxBytes int64) ([]byte, string, error) {
	if fh.Size > maxBytes {
		return nil, "", fmt.Errorf("file %s exceeds the %d MB limit", fh.Filename, maxBytes/(1<<20))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("file %s exceeds the %d MB limit", fh.Filename, maxBytes/(1<<20))
	}

	contentType := http.DetectContentType(data)
	if !allowedImageMIMEs[contentType] {
		return nil, "", fmt.Errorf("file %s is not an accepted image type (%s)", fh.Filename, contentType)
	}

	return data, contentType, nil
}

// compressImage downscales an image to maxDimension on its longer side and
// re-encodes it as JPEG with the given quality.
func compressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
