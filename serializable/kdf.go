package serializable

import (
	"crypto/md5"
	"crypto/rand"
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// Kdf derives key material (and an IV) from a password, optionally given a
// salt recovered from a previously-produced ciphertext.
type Kdf interface {
	Execute(password []byte, keySizeBytes, ivSizeBytes int, salt []byte) (*CipherParams, error)
}

// saltSize is the fixed OpenSSL salt length in bytes.
const saltSize = 8

// OpenSSLKdf implements EVP_BytesToKey-style derivation: key and IV
// material are produced by repeatedly MD5-hashing `prev || password ||
// salt`, concatenating hash blocks until enough bytes are available. This
// is intentionally MD5, not PBKDF2, for byte-for-byte compatibility with
// `openssl enc`'s default key derivation.
//
// Reference: OpenSSL's EVP_BytesToKey (crypto/evp/evp_key.c).
type OpenSSLKdf struct{}

// NewOpenSSLKdf creates an OpenSSLKdf.
func NewOpenSSLKdf() *OpenSSLKdf { return &OpenSSLKdf{} }

// Execute derives keySizeBytes+ivSizeBytes of key material from password
// and salt. If salt is nil, 8 fresh random bytes are generated.
func (OpenSSLKdf) Execute(password []byte, keySizeBytes, ivSizeBytes int, salt []byte) (*CipherParams, error) {
	if salt == nil {
		fresh, err := wordarray.Random(saltSize, rand.Read)
		if err != nil {
			return nil, fmt.Errorf("%w: generating salt: %v", cipher.ErrKdf, err)
		}
		salt = fresh.Bytes()
	}

	need := keySizeBytes + ivSizeBytes
	derived := make([]byte, 0, need)

	var prev []byte
	for len(derived) < need {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		block := h.Sum(nil)
		derived = append(derived, block...)
		prev = block
	}

	if len(derived) < need {
		return nil, fmt.Errorf("%w: derived %d bytes, needed %d", cipher.ErrKdf, len(derived), need)
	}

	key := wordarray.FromBytes(derived[:keySizeBytes])
	iv := wordarray.FromBytes(derived[keySizeBytes:need])
	saltWA := wordarray.FromBytes(salt)

	return &CipherParams{Key: key, IV: iv, Salt: saltWA}, nil
}

var _ Kdf = OpenSSLKdf{}
