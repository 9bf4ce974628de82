package decode

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/koki-develop/asciify/internal/ascii"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const sniffLen = 512

var tiffMagic = [][]byte{[]byte("II*\x00"), []byte("MM\x00*")}

// ContentType sniffs the MIME type of the leading bytes of a file.
func ContentType(head []byte) string {
	mime := http.DetectContentType(head)
	if !strings.HasPrefix(mime, "image/") {
		for _, m := range tiffMagic {
			if bytes.HasPrefix(head, m) {
				return "image/tiff"
			}
		}
	}
	return mime
}

// Decode reads an image from r. Input that does not sniff as an image is
// rejected before any decoder runs.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", &ascii.InvalidInputError{Reason: "failed to read image", Err: err}
	}
	if len(head) == 0 {
		return nil, "", &ascii.InvalidInputError{Reason: "empty input"}
	}

	if mime := ContentType(head); !strings.HasPrefix(mime, "image/") {
		return nil, "", &ascii.InvalidInputError{Reason: fmt.Sprintf("not an image (%s)", mime)}
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, "", &ascii.InvalidInputError{Reason: "failed to decode image", Err: err}
	}
	if sz := img.Bounds().Size(); sz.X <= 0 || sz.Y <= 0 {
		return nil, "", &ascii.InvalidInputError{Reason: fmt.Sprintf("image has no pixels (%dx%d)", sz.X, sz.Y)}
	}
	return img, format, nil
}

// Open decodes the image at path. A path of "-" reads from stdin.
func Open(path string, stdin io.Reader) (image.Image, string, error) {
	if path == "-" {
		return Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", &ascii.InvalidInputError{Reason: "failed to open file", Err: err}
	}
	defer f.Close()

	return Decode(f)
}
