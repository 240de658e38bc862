// Package sniffer identifies uploaded avatar images by magic bytes rather
// than trusting the client-declared content type.
package sniffer

import (
	"bytes"
	"errors"
	"io"
)

var ErrUnknownType = errors.New("unknown image type")

type Result struct {
	MIME string
	Ext  string
}

type matcher struct {
	mime  string
	ext   string
	match func([]byte) bool
}

var matchers = []matcher{
	{"image/jpeg", "jpg", isJPEG},
	{"image/png", "png", isPNG},
	{"image/gif", "gif", isGIF},
	{"image/webp", "webp", isWEBP},
}

// Detect reads up to 512 bytes from r and identifies the image format. The
// consumed head is returned so callers can stitch the stream back together
// with io.MultiReader.
func Detect(r io.Reader) (Result, []byte, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Result{}, nil, err
	}
	head = head[:n]

	result, err := DetectHead(head)
	return result, head, err
}

func DetectHead(head []byte) (Result, error) {
	for _, m := range matchers {
		if m.match(head) {
			return Result{MIME: m.mime, Ext: m.ext}, nil
		}
	}
	return Result{}, ErrUnknownType
}

func isJPEG(head []byte) bool {
	return len(head) > 3 && head[0] == 0xff && head[1] == 0xd8 && head[2] == 0xff
}

func isPNG(head []byte) bool {
	magic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return len(head) >= len(magic) && bytes.Equal(head[:len(magic)], magic)
}

func isGIF(head []byte) bool {
	return len(head) >= 6 &&
		(bytes.Equal(head[:6], []byte("GIF87a")) || bytes.Equal(head[:6], []byte("GIF89a")))
}

func isWEBP(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WEBP"))
}
