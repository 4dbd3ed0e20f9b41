package paddings

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// ZeroByte implements zero-byte padding: pad with 0x00 bytes. Ambiguous
// when the plaintext itself legitimately ends in zero bytes; kept here as
// an alternate strategy, not the default.
type ZeroByte struct{}

// NewZeroByte creates a ZeroByte padding instance.
func NewZeroByte() *ZeroByte {
	return &ZeroByte{}
}

// Name returns the padding scheme's name.
func (ZeroByte) Name() string { return "ZeroByte" }

// Pad grows data to the next block boundary with zero bytes, adding a full
// block when data is already aligned.
func (ZeroByte) Pad(data *wordarray.WordArray, blockSizeWords int) {
	blockSizeBytes := 4 * blockSizeWords
	padLen := blockSizeBytes - (data.SigBytes % blockSizeBytes)
	data.Grow(padLen)
}

// Unpad strips trailing zero bytes from data.
func (ZeroByte) Unpad(data *wordarray.WordArray) error {
	count := data.SigBytes
	for count > 0 && data.GetByte(count-1) == 0 {
		count--
	}

	if count == data.SigBytes {
		return fmt.Errorf("%w: ZeroByte padding not found", cipher.ErrPadding)
	}

	data.SigBytes = count

	return nil
}

var _ cipher.Padding = ZeroByte{}
