package paddings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

func TestZeroBytePadUnpadRoundTrip(t *testing.T) {
	data := wordarray.FromBytes([]byte("Hello, world!"))

	p := NewZeroByte()
	p.Pad(data, 4)
	assert.Equal(t, 0, data.SigBytes%16)

	require.NoError(t, p.Unpad(data))
	assert.Equal(t, "Hello, world!", string(data.Bytes()))
}

func TestZeroBytePadAddsFullBlockWhenAlreadyAligned(t *testing.T) {
	data := wordarray.FromBytes(make([]byte, 16))

	NewZeroByte().Pad(data, 4)

	assert.Equal(t, 32, data.SigBytes)
}

func TestZeroByteUnpadRejectsEmptyBuffer(t *testing.T) {
	// An empty buffer has no trailing zero bytes to strip, so Unpad
	// reports the padding as missing. (A non-empty block of only zero
	// bytes is stripped to length zero instead.)
	data := &wordarray.WordArray{Words: []uint32{0}, SigBytes: 0}

	err := NewZeroByte().Unpad(data)

	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrPadding)
}
