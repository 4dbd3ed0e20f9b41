package wordarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesAndBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0x01, 0x02, 0x03},
		{0x01, 0x02, 0x03, 0x04},
		{0xff, 0xee, 0xdd, 0xcc, 0xbb},
	}

	for _, data := range cases {
		wa := FromBytes(data)
		assert.Equal(t, data, wa.Bytes())
		assert.Equal(t, len(data), wa.SigBytes)
	}
}

func TestClampZeroesTrailingBytes(t *testing.T) {
	wa := &WordArray{Words: []uint32{0xaabbccdd, 0x11223344}, SigBytes: 5}
	wa.Clamp()

	require.Len(t, wa.Words, 2)
	assert.Equal(t, uint32(0xaabbccdd), wa.Words[0])
	assert.Equal(t, uint32(0x11000000), wa.Words[1])
}

func TestConcatUnalignedTail(t *testing.T) {
	a := FromBytes([]byte{0x01, 0x02, 0x03})
	b := FromBytes([]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee})

	a.Concat(b)

	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0xaa, 0xbb, 0xcc, 0xdd, 0xee}, a.Bytes())
}

func TestDropFront(t *testing.T) {
	wa := FromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	wa.DropFront(1, 4)

	assert.Equal(t, []byte{0x05, 0x06, 0x07, 0x08}, wa.Bytes())
}

func TestGetSetByteGrow(t *testing.T) {
	wa := New(nil)
	wa.Grow(3)

	wa.SetByte(0, 0x10)
	wa.SetByte(1, 0x20)
	wa.SetByte(2, 0x30)

	assert.Equal(t, byte(0x10), wa.GetByte(0))
	assert.Equal(t, byte(0x20), wa.GetByte(1))
	assert.Equal(t, byte(0x30), wa.GetByte(2))
	assert.Equal(t, []byte{0x10, 0x20, 0x30}, wa.Bytes())
}

func TestZeroOverwritesEveryWord(t *testing.T) {
	wa := FromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	wa.Zero()

	for _, w := range wa.Words {
		assert.Equal(t, uint32(0), w)
	}
}

func TestRandomPropagatesReadError(t *testing.T) {
	boom := assert.AnError
	_, err := Random(16, func([]byte) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}
