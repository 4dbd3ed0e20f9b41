package paddings

import (
	"crypto/rand"
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// ISO10126 implements ISO 10126-2 padding: random filler bytes followed by
// a single byte giving the padding length.
type ISO10126 struct{}

// NewISO10126 creates an ISO10126-2 padding instance.
func NewISO10126() *ISO10126 {
	return &ISO10126{}
}

// Name returns the padding scheme's name.
func (ISO10126) Name() string { return "ISO10126-2" }

// Pad grows data to the next block boundary with random filler bytes,
// writing the padding length as the final byte.
func (ISO10126) Pad(data *wordarray.WordArray, blockSizeWords int) {
	blockSizeBytes := 4 * blockSizeWords
	padLen := blockSizeBytes - (data.SigBytes % blockSizeBytes)

	start := data.SigBytes
	data.Grow(padLen)

	if padLen > 1 {
		filler := make([]byte, padLen-1)
		_, _ = rand.Read(filler)
		for i, b := range filler {
			data.SetByte(start+i, b)
		}
	}

	data.SetByte(data.SigBytes-1, byte(padLen))
}

// Unpad reads the trailing length byte and strips that many bytes.
func (ISO10126) Unpad(data *wordarray.WordArray) error {
	if data.SigBytes == 0 {
		return fmt.Errorf("%w: ISO10126 empty block", cipher.ErrPadding)
	}

	padLen := int(data.GetByte(data.SigBytes - 1))
	if padLen < 1 || padLen > data.SigBytes {
		return fmt.Errorf("%w: ISO10126 invalid padding length %d", cipher.ErrPadding, padLen)
	}

	data.SigBytes -= padLen

	return nil
}

var _ cipher.Padding = ISO10126{}
