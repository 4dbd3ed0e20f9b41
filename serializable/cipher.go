package serializable

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/paddings"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// SerializableCipher is the stateless encrypt/decrypt glue between an
// Algorithm handle and a CipherParams record: it drives the processor to
// completion and packages (or unpacks) the result with the metadata
// needed to reproduce the operation.
type SerializableCipher struct{}

// NewSerializableCipher creates a SerializableCipher. It carries no state
// and may be freely shared; the zero value is also usable.
func NewSerializableCipher() *SerializableCipher { return &SerializableCipher{} }

// Encrypt runs algo over message under key, returning a CipherParams
// describing the ciphertext and the options used to produce it.
func (SerializableCipher) Encrypt(algo *Algorithm, message *wordarray.WordArray, key *wordarray.WordArray, cfg Config) (*CipherParams, error) {
	p, err := algo.CreateEncryptor(key.Bytes(), cfg)
	if err != nil {
		return nil, err
	}

	ciphertext, err := p.Finalize(message)
	if err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == nil {
		format = NewOpenSSLFormatter()
	}

	result := &CipherParams{
		Ciphertext: ciphertext,
		Key:        key,
		Algorithm:  algo,
		BlockSize:  p.BlockSize() / 4,
		Formatter:  format,
	}
	if mode := algo.resolveMode(cfg); mode != nil {
		result.ModeName = mode.AlgorithmSuffix()

		padding := cfg.Padding
		if padding == nil {
			padding = paddings.NewPKCS7()
		}
		result.Padding = padding.Name()
	}
	if len(cfg.IV) > 0 {
		result.IV = wordarray.FromBytes(cfg.IV)
	}

	return result, nil
}

// Decrypt recovers the plaintext for ciphertext under key. ciphertext may
// be a base64 wire string (parsed via cfg.Format) or an already-parsed
// *CipherParams.
func (SerializableCipher) Decrypt(algo *Algorithm, ciphertext any, key *wordarray.WordArray, cfg Config) (*wordarray.WordArray, error) {
	c, err := resolveCiphertext(ciphertext, cfg)
	if err != nil {
		return nil, err
	}

	p, err := algo.CreateDecryptor(key.Bytes(), cfg)
	if err != nil {
		return nil, err
	}

	return p.Finalize(c.Ciphertext)
}

func resolveCiphertext(ciphertext any, cfg Config) (*CipherParams, error) {
	switch v := ciphertext.(type) {
	case string:
		format := cfg.Format
		if format == nil {
			format = NewOpenSSLFormatter()
		}
		return format.Parse(v)
	case *CipherParams:
		return v, nil
	case *wordarray.WordArray:
		return &CipherParams{Ciphertext: v}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported ciphertext value of type %T", cipher.ErrUsage, ciphertext)
	}
}
