// Package processor implements the buffered block-processor pump that
// turns a keyed engine plus a mode-of-operation handle into a full
// streaming encrypt/decrypt pipeline: BufferedProcessor's core algorithm,
// specialized by BlockCipherProcessor (padding, block alignment) and
// StreamCipherProcessor (no padding, single-word granularity).
//
// Reference: org.bouncycastle.crypto.paddings.PaddedBufferedBlockCipher
// (bc-java), generalized from a fixed AES/padding pairing to the
// pluggable engine/mode/padding handles this package is built against.
package processor

import "github.com/lihongjie0209/cryptocore/cipher"

// XformMode selects whether a processor encrypts or decrypts.
type XformMode int

const (
	// Encrypt configures a processor to encrypt plaintext into ciphertext.
	Encrypt XformMode = iota
	// Decrypt configures a processor to decrypt ciphertext into plaintext.
	Decrypt
)

// BlockCipherConfig carries the block-processor options recognized by
// BlockCipherProcessor. The zero value selects CBC/PKCS#7 with no IV,
// which is only valid for modes that don't require one (ECB); block
// modes that require an IV surface ErrConfig at processor construction.
type BlockCipherConfig struct {
	// IV is the initial chaining value, in bytes, sized to the engine's
	// block size. Required by every mode except ECB.
	IV []byte
	// Mode is the block-mode handle; defaults to CBC when nil.
	Mode cipher.Mode
	// Padding is the pad/unpad strategy; defaults to PKCS#7 when nil.
	Padding cipher.Padding
}
