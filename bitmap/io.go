// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format is a supported image encoding / decoding format.
type Format int32

// The supported image encoding formats.
const (
	None Format = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	case WebP:
		return "webp"
	}
	return "none"
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Format, error) {
	if len(ext) == 0 {
		return None, errors.New("bitmap.ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("bitmap.ExtToFormat: extension %q not recognized", ext)
}

// Open opens an image from the given filename. The format is inferred
// automatically and returned. png, jpeg, gif, tiff, bmp, and webp are
// supported.
func Open(filename string) (image.Image, Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// OpenFS opens an image from the given filename using the given [fs.FS]
// filesystem (e.g., for embed files). The format is inferred
// automatically and returned.
func OpenFS(fsys fs.FS, filename string) (image.Image, Format, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader. The content is sniffed
// first so that non-image data produces a clear error instead of a
// codec-specific decode failure. The format is inferred automatically
// and returned.
func Read(r io.Reader) (image.Image, Format, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(261)
	if len(head) > 0 && !filetype.IsImage(head) {
		return nil, None, errors.New("bitmap.Read: data is not a recognized image format")
	}
	im, ext, err := image.Decode(br)
	if err != nil {
		return im, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

// Save saves the image to the given filename, with the format inferred
// from the filename. png, jpeg, gif, tiff, and bmp are supported.
func Save(im image.Image, filename string) error {
	ext := filepath.Ext(filename)
	f, err := ExtToFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	defer bw.Flush()
	return Write(im, bw, f)
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	default:
		return fmt.Errorf("bitmap.Write: format %q not valid", f)
	}
}
