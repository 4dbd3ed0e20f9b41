package paddings

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// ISO7816d4 implements ISO/IEC 7816-4 padding: 0x80 followed by zero or
// more 0x00 bytes.
type ISO7816d4 struct{}

// NewISO7816d4 creates an ISO7816-4 padding instance.
func NewISO7816d4() *ISO7816d4 {
	return &ISO7816d4{}
}

// Name returns the padding scheme's name.
func (ISO7816d4) Name() string { return "ISO7816-4" }

// Pad grows data to the next block boundary: 0x80 then zero bytes.
func (ISO7816d4) Pad(data *wordarray.WordArray, blockSizeWords int) {
	blockSizeBytes := 4 * blockSizeWords
	padLen := blockSizeBytes - (data.SigBytes % blockSizeBytes)

	start := data.SigBytes
	data.Grow(padLen)
	data.SetByte(start, 0x80)
}

// Unpad validates and strips the 0x80-marked tail from data.
func (ISO7816d4) Unpad(data *wordarray.WordArray) error {
	if data.SigBytes == 0 {
		return fmt.Errorf("%w: ISO7816-4 empty block", cipher.ErrPadding)
	}

	count := data.SigBytes - 1
	for count > 0 && data.GetByte(count) == 0x00 {
		count--
	}

	if data.GetByte(count) != 0x80 {
		return fmt.Errorf("%w: ISO7816-4 marker not found", cipher.ErrPadding)
	}

	data.SigBytes = count

	return nil
}

var _ cipher.Padding = ISO7816d4{}
