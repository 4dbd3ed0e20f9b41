package paddings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

func TestISO10126PadUnpadRoundTrip(t *testing.T) {
	data := wordarray.FromBytes([]byte("Hello, world!"))

	p := NewISO10126()
	p.Pad(data, 4)
	assert.Equal(t, 0, data.SigBytes%16)

	require.NoError(t, p.Unpad(data))
	assert.Equal(t, "Hello, world!", string(data.Bytes()))
}

func TestISO10126PadExactMultipleAddsFullBlock(t *testing.T) {
	data := wordarray.FromBytes(make([]byte, 16))

	NewISO10126().Pad(data, 4)

	assert.Equal(t, 32, data.SigBytes)
	assert.Equal(t, byte(16), data.GetByte(31))
}

func TestISO10126UnpadRejectsLengthByteLargerThanBuffer(t *testing.T) {
	data := wordarray.FromBytes([]byte{0x01, 0x02, 0x03, 0xff})

	err := NewISO10126().Unpad(data)

	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrPadding)
}

func TestISO10126UnpadRejectsEmptyBuffer(t *testing.T) {
	err := NewISO10126().Unpad(wordarray.New(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrPadding)
}
