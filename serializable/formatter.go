package serializable

import (
	"encoding/base64"
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// saltedHeader is OpenSSL's 8-byte ASCII marker for a salted ciphertext.
var saltedHeader = []byte("Salted__")

// Formatter serializes/parses a CipherParams to/from a base64 wire string.
type Formatter interface {
	Stringify(c *CipherParams) (string, error)
	Parse(s string) (*CipherParams, error)
}

// OpenSSLFormatter implements the `openssl enc -a -salt` wire layout:
// "Salted__" || 8-byte salt || ciphertext, base64-encoded. When no salt is
// present (raw-key path), the header and salt are omitted.
type OpenSSLFormatter struct{}

// NewOpenSSLFormatter creates an OpenSSLFormatter.
func NewOpenSSLFormatter() *OpenSSLFormatter { return &OpenSSLFormatter{} }

// Stringify renders c to the base64-wrapped OpenSSL wire format.
func (OpenSSLFormatter) Stringify(c *CipherParams) (string, error) {
	if c.Ciphertext == nil {
		return "", fmt.Errorf("%w: cannot stringify CipherParams with no ciphertext", cipher.ErrFormat)
	}

	var raw []byte
	if c.Salt != nil {
		raw = make([]byte, 0, len(saltedHeader)+saltSize+c.Ciphertext.SigBytes)
		raw = append(raw, saltedHeader...)
		raw = append(raw, c.Salt.Bytes()...)
		raw = append(raw, c.Ciphertext.Bytes()...)
	} else {
		raw = c.Ciphertext.Bytes()
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Parse decodes a base64 OpenSSL-format wire string into a CipherParams
// carrying Ciphertext and, if present, Salt.
func (OpenSSLFormatter) Parse(s string) (*CipherParams, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", cipher.ErrFormat, err)
	}

	if len(raw) >= len(saltedHeader) && string(raw[:len(saltedHeader)]) == string(saltedHeader) {
		if len(raw) < len(saltedHeader)+saltSize {
			return nil, fmt.Errorf("%w: salted header present but salt truncated", cipher.ErrFormat)
		}
		salt := raw[len(saltedHeader) : len(saltedHeader)+saltSize]
		ciphertext := raw[len(saltedHeader)+saltSize:]
		return &CipherParams{
			Ciphertext: wordarray.FromBytes(ciphertext),
			Salt:       wordarray.FromBytes(salt),
		}, nil
	}

	return &CipherParams{Ciphertext: wordarray.FromBytes(raw)}, nil
}

var _ Formatter = OpenSSLFormatter{}
