// Package engines provides the concrete keyed primitives consumed by the
// cipher pipeline: AES as the block engine, RC4 and ChaCha20 as stream
// engines. The block/stream round function itself is out of this module's
// own scope, so AES is taken directly from crypto/aes rather than
// reimplemented.
package engines

import (
	stdaes "crypto/aes"
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/params"
)

// AES wraps crypto/aes as a cipher.BlockEngine. It accepts 128, 192 or
// 256-bit keys, selecting AES-128/192/256 accordingly.
type AES struct {
	forEncryption bool
	initialized   bool
	stdBlock      interface {
		BlockSize() int
		Encrypt(dst, src []byte)
		Decrypt(dst, src []byte)
	}
}

// NewAES creates an uninitialized AES engine.
func NewAES() *AES {
	return &AES{}
}

// Init initializes the engine for encryption or decryption with a 16, 24 or 32-byte key.
func (a *AES) Init(forEncryption bool, p cipher.Parameters) error {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		return fmt.Errorf("%w: AES requires a KeyParameter", cipher.ErrConfig)
	}

	key := keyParam.Key()
	switch len(key) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: AES key must be 16, 24 or 32 bytes, got %d", cipher.ErrConfig, len(key))
	}

	block, err := stdaes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: %v", cipher.ErrConfig, err)
	}

	a.stdBlock = block
	a.forEncryption = forEncryption
	a.initialized = true

	return nil
}

// AlgorithmName returns the algorithm name.
func (a *AES) AlgorithmName() string {
	return "AES"
}

// BlockSize returns 16, the AES block size in bytes.
func (a *AES) BlockSize() int {
	return stdaes.BlockSize
}

// ProcessBlock encrypts or decrypts exactly one 16-byte block.
func (a *AES) ProcessBlock(in []byte, inOff int, out []byte, outOff int) (int, error) {
	if !a.initialized {
		return 0, fmt.Errorf("%w: AES engine not initialized", cipher.ErrConfig)
	}

	blockSize := a.BlockSize()
	if inOff+blockSize > len(in) {
		return 0, fmt.Errorf("%w: input buffer too short", cipher.ErrConfig)
	}
	if outOff+blockSize > len(out) {
		return 0, fmt.Errorf("%w: output buffer too short", cipher.ErrConfig)
	}

	if a.forEncryption {
		a.stdBlock.Encrypt(out[outOff:outOff+blockSize], in[inOff:inOff+blockSize])
	} else {
		a.stdBlock.Decrypt(out[outOff:outOff+blockSize], in[inOff:inOff+blockSize])
	}

	return blockSize, nil
}

// Reset is a no-op: crypto/aes's cipher.Block carries no per-call state.
func (a *AES) Reset() {}

var _ cipher.BlockEngine = (*AES)(nil)
