package decode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/koki-develop/asciify/internal/ascii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func sample() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(80 * x), G: uint8(120 * y), B: 60, A: 255})
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png":  func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"jpeg": func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) },
		"gif":  func(b *bytes.Buffer, img image.Image) error { return gif.Encode(b, img, nil) },
		"bmp":  func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
		"tiff": func(b *bytes.Buffer, img image.Image) error { return tiff.Encode(b, img, nil) },
	}

	for format, encode := range encoders {
		t.Run(format, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, encode(buf, sample()))

			img, got, err := Decode(buf)
			require.NoError(t, err)
			assert.Equal(t, format, got)
			assert.Equal(t, image.Pt(3, 2), img.Bounds().Size())
		})
	}
}

func TestDecodeRejectsNonImages(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"text", "hello, world\n"},
		{"html", "<!DOCTYPE html><html></html>"},
		{"pdf", "%PDF-1.4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, err := Decode(strings.NewReader(tt.input))
			assert.Nil(t, img)

			var ierr *ascii.InvalidInputError
			assert.True(t, errors.As(err, &ierr), "got %v", err)
		})
	}
}

func TestDecodeCorruptImage(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, sample()))
	truncated := buf.Bytes()[:buf.Len()/2]

	_, _, err := Decode(bytes.NewReader(truncated))
	var ierr *ascii.InvalidInputError
	require.True(t, errors.As(err, &ierr))
	assert.Error(t, ierr.Err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/tiff", ContentType([]byte("II*\x00rest")))
	assert.Equal(t, "image/tiff", ContentType([]byte("MM\x00*rest")))
	assert.Equal(t, "image/gif", ContentType([]byte("GIF89a")))
	assert.True(t, strings.HasPrefix(ContentType([]byte("plain")), "text/plain"))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, sample()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, format, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Pt(3, 2), img.Bounds().Size())

	img, _, err = Open("-", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), img.Bounds().Size())

	_, _, err = Open(filepath.Join(dir, "missing.png"), nil)
	var ierr *ascii.InvalidInputError
	require.True(t, errors.As(err, &ierr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
