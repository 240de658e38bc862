package sniffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectHead(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		head []byte
		mime string
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, "image/jpeg"},
		{"png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0}, "image/png"},
		{"gif", []byte("GIF89a......"), "image/gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "image/webp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DetectHead(tc.head)
			require.NoError(t, err)
			require.Equal(t, tc.mime, result.MIME)
		})
	}
}

func TestDetectHead_Unknown(t *testing.T) {
	t.Parallel()

	for _, head := range [][]byte{nil, []byte("plain text"), []byte("<svg></svg>")} {
		_, err := DetectHead(head)
		require.ErrorIs(t, err, ErrUnknownType)
	}
}

func TestDetect_ReturnsConsumedHead(t *testing.T) {
	t.Parallel()

	payload := append([]byte{0xff, 0xd8, 0xff, 0xe0}, bytes.Repeat([]byte{0xab}, 100)...)

	result, head, err := Detect(bytes.NewReader(payload))
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", result.MIME)
	require.Equal(t, payload[:len(head)], head)
}
