package serializable

import (
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// PasswordBasedCipher wraps SerializableCipher with a KDF step: instead of
// a raw key, the caller supplies a password, and a freshly-salted (or
// salt-recovered) key+IV pair is derived before delegating.
type PasswordBasedCipher struct{}

// NewPasswordBasedCipher creates a PasswordBasedCipher. It carries no
// state and may be freely shared.
func NewPasswordBasedCipher() *PasswordBasedCipher { return &PasswordBasedCipher{} }

// derivedKeySize is the key length used for variable-key engines (RC4)
// when deriving from a password: 128 bits.
const derivedKeySize = 16

func kdfKeySize(algo *Algorithm) int {
	if algo.KeySize() == 0 {
		return derivedKeySize
	}
	return algo.KeySize()
}

// Encrypt derives a key+IV from password via cfg.Kdf (OpenSSLKdf by
// default), encrypts message under the derived key, and attaches the
// derived salt/key/IV to the result. The formatter embeds only the salt.
func (PasswordBasedCipher) Encrypt(algo *Algorithm, message *wordarray.WordArray, password []byte, cfg Config) (*CipherParams, error) {
	kdf := cfg.Kdf
	if kdf == nil {
		kdf = NewOpenSSLKdf()
	}

	derived, err := kdf.Execute(password, kdfKeySize(algo), algo.IVSize(), nil)
	if err != nil {
		return nil, err
	}

	cfg.IV = derived.IV.Bytes()

	result, err := SerializableCipher{}.Encrypt(algo, message, derived.Key, cfg)
	if err != nil {
		return nil, err
	}

	result.MixIn(&CipherParams{Salt: derived.Salt, Key: derived.Key, IV: derived.IV})

	return result, nil
}

// Decrypt parses a string ciphertext to recover the embedded salt,
// re-derives the key+IV from password via that salt, and decrypts.
func (PasswordBasedCipher) Decrypt(algo *Algorithm, ciphertext string, password []byte, cfg Config) (*wordarray.WordArray, error) {
	format := cfg.Format
	if format == nil {
		format = NewOpenSSLFormatter()
	}

	parsed, err := format.Parse(ciphertext)
	if err != nil {
		return nil, err
	}

	kdf := cfg.Kdf
	if kdf == nil {
		kdf = NewOpenSSLKdf()
	}

	var salt []byte
	if parsed.Salt != nil {
		salt = parsed.Salt.Bytes()
	}

	derived, err := kdf.Execute(password, kdfKeySize(algo), algo.IVSize(), salt)
	if err != nil {
		return nil, err
	}

	cfg.IV = derived.IV.Bytes()

	return SerializableCipher{}.Decrypt(algo, parsed, derived.Key, cfg)
}
