// Package serializable implements the wrapper layer consumed by callers:
// CipherParams, SerializableCipher, PasswordBasedCipher, the OpenSSL
// EVP_BytesToKey-compatible KDF, the OpenSSL wire formatter, and a
// registry of ready-made Algorithm handles (AES in each mode, RC4,
// ChaCha20).
//
// Reference: the SerializedCipher/PasswordBasedCipher/OpenSSLFormatter
// triad CryptoJS's cipher-core.js builds over its block-mode/padding
// primitives, adapted to the engine/mode/padding handles this module
// exposes instead of a prototype-inheritance hierarchy.
package serializable

import "github.com/lihongjie0209/cryptocore/wordarray"

// CipherParams is the self-describing record an encrypt operation
// produces: the ciphertext plus whatever metadata is needed to decrypt
// and serialize it. Every field besides Ciphertext is optional.
type CipherParams struct {
	Ciphertext *wordarray.WordArray
	Key        *wordarray.WordArray
	IV         *wordarray.WordArray
	Salt       *wordarray.WordArray
	Algorithm  *Algorithm
	ModeName   string
	Padding    string
	BlockSize  int // words
	Formatter  Formatter
}

// MixIn overlays non-nil/non-empty fields from other onto c, returning c.
// Mirrors CryptoJS's CipherParams.mixIn: later writers win for any field
// they set explicitly.
func (c *CipherParams) MixIn(other *CipherParams) *CipherParams {
	if other == nil {
		return c
	}
	if other.Ciphertext != nil {
		c.Ciphertext = other.Ciphertext
	}
	if other.Key != nil {
		c.Key = other.Key
	}
	if other.IV != nil {
		c.IV = other.IV
	}
	if other.Salt != nil {
		c.Salt = other.Salt
	}
	if other.Algorithm != nil {
		c.Algorithm = other.Algorithm
	}
	if other.ModeName != "" {
		c.ModeName = other.ModeName
	}
	if other.Padding != "" {
		c.Padding = other.Padding
	}
	if other.BlockSize != 0 {
		c.BlockSize = other.BlockSize
	}
	if other.Formatter != nil {
		c.Formatter = other.Formatter
	}
	return c
}
