package engines

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/params"
)

// ChaCha20 wraps golang.org/x/crypto/chacha20 as a cipher.StreamEngine.
// Requires a 32-byte key wrapped with a 12-byte nonce via ParametersWithIV.
type ChaCha20 struct {
	stream *chacha20.Cipher
}

// NewChaCha20 creates an uninitialized ChaCha20 engine.
func NewChaCha20() *ChaCha20 {
	return &ChaCha20{}
}

// Init schedules the key and nonce. p must be a *params.ParametersWithIV
// wrapping a *params.KeyParameter.
func (c *ChaCha20) Init(p cipher.Parameters) error {
	ivParam, ok := p.(*params.ParametersWithIV)
	if !ok {
		return fmt.Errorf("%w: ChaCha20 requires ParametersWithIV", cipher.ErrConfig)
	}

	keyParam, ok := ivParam.Parameters().(*params.KeyParameter)
	if !ok {
		return fmt.Errorf("%w: ChaCha20 requires a KeyParameter", cipher.ErrConfig)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(keyParam.Key(), ivParam.IV())
	if err != nil {
		return fmt.Errorf("%w: %v", cipher.ErrConfig, err)
	}

	c.stream = stream

	return nil
}

// AlgorithmName returns the algorithm name.
func (c *ChaCha20) AlgorithmName() string {
	return "ChaCha20"
}

// XORKeyStream XORs src with the ChaCha20 keystream into dst.
func (c *ChaCha20) XORKeyStream(dst, src []byte) error {
	if c.stream == nil {
		return fmt.Errorf("%w: ChaCha20 engine not initialized", cipher.ErrConfig)
	}

	c.stream.XORKeyStream(dst, src)

	return nil
}

// Reset drops the keystream state; Init must be called again before reuse.
func (c *ChaCha20) Reset() {
	c.stream = nil
}

var _ cipher.StreamEngine = (*ChaCha20)(nil)
