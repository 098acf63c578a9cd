package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/managher/managher/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with non-ASCII product names should pass through unchanged.
	input := "\"Nama\",\"Harga Jual\"\n\"Kue Lapis Résto\",25000\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// The BOM our own exports carry should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("\"Nama\",\"Harga Jual\"\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "\"Nama\",\"Harga Jual\"\n", string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// Windows-1252 encoded "Résto" (é = 0xE9), as saved by older
	// spreadsheet tools.
	input := []byte{'R', 0xE9, 's', 't', 'o', ';', 'K', 'u', 0xE9, '\n'}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Résto;Kué\n", string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})

	for _, r := range "Nama,Kontak\n" {
		buf.WriteByte(byte(r))
		buf.WriteByte(0)
	}

	r, err := encoding.NewUTF8Reader(&buf)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Nama,Kontak\n", string(got))
}
