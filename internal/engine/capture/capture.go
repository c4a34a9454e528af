// Package capture writes framebuffer screenshots to disk.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Supported formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Writer saves screenshots into a directory with timestamped names.
type Writer struct {
	dir    string
	prefix string
	format string
	now    func() time.Time
}

// New creates a Writer. An unknown format falls back to PNG.
func New(dir, prefix, format string) *Writer {
	if format != FormatBMP {
		format = FormatPNG
	}
	return &Writer{dir: dir, prefix: prefix, format: format, now: time.Now}
}

// Filename returns the path the next capture would use.
func (w *Writer) Filename() string {
	ts := w.now().Format("2006-01-02_15-04-05.000")
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.%s", w.prefix, ts, w.format))
}

// SavePixels writes bottom-up RGBA rows, as read back from OpenGL, and
// returns the file name.
func (w *Writer) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromGL(pixels, width, height)
	if err != nil {
		return "", err
	}
	return w.Save(img)
}

// Save writes an image and returns the file name.
func (w *Writer) Save(img image.Image) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := w.Filename()
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, img, w.format); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	return name, f.Close()
}

// Encode writes img in the given format.
func Encode(out io.Writer, img image.Image, format string) error {
	switch format {
	case FormatBMP:
		if err := bmp.Encode(out, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(out, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
	return nil
}

// FromGL converts bottom-up RGBA rows into a top-down image.
func FromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
