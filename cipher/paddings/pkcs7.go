// Package paddings implements the block-padding schemes consumed by
// processor.BlockCipherProcessor.
//
// Reference: org.bouncycastle.crypto.paddings.{PKCS7Padding,ZeroBytePadding,
// ISO7816d4Padding,ISO10126d2Padding} (bc-java).
package paddings

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// PKCS7 implements PKCS#7 padding: pad with bytes all equal to the number
// of padding bytes added. Reference: RFC 5652.
type PKCS7 struct{}

// NewPKCS7 creates a PKCS#7 padding instance.
func NewPKCS7() *PKCS7 {
	return &PKCS7{}
}

// Name returns the padding scheme's name.
func (PKCS7) Name() string { return "PKCS7" }

// Pad grows data to the next block boundary, adding a full block of
// padding when data is already aligned.
func (PKCS7) Pad(data *wordarray.WordArray, blockSizeWords int) {
	blockSizeBytes := 4 * blockSizeWords
	padLen := blockSizeBytes - (data.SigBytes % blockSizeBytes)

	start := data.SigBytes
	data.Grow(padLen)

	for i := start; i < data.SigBytes; i++ {
		data.SetByte(i, byte(padLen))
	}
}

// Unpad validates and strips PKCS#7 padding from the tail of data.
func (PKCS7) Unpad(data *wordarray.WordArray) error {
	if data.SigBytes == 0 {
		return fmt.Errorf("%w: PKCS7 empty block", cipher.ErrPadding)
	}

	padLen := int(data.GetByte(data.SigBytes - 1))
	if padLen < 1 || padLen > data.SigBytes {
		return fmt.Errorf("%w: PKCS7 invalid padding length %d", cipher.ErrPadding, padLen)
	}

	for i := data.SigBytes - padLen; i < data.SigBytes; i++ {
		if data.GetByte(i) != byte(padLen) {
			return fmt.Errorf("%w: PKCS7 inconsistent padding bytes", cipher.ErrPadding)
		}
	}

	data.SigBytes -= padLen

	return nil
}

var _ cipher.Padding = PKCS7{}
