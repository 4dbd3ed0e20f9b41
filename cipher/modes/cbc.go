// Package modes implements the block-mode-of-operation handles consumed
// by processor.BlockCipherProcessor: CBC, ECB, CFB, OFB, CTR.
//
// Reference: NIST SP 800-38A, org.bouncycastle.crypto.modes.{CBC,ECB,CFB,
// OFB,SIC}BlockCipher (bc-java).
package modes

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
)

// CBC implements Cipher Block Chaining mode.
type CBC struct{}

// NewCBC creates a CBC mode handle.
func NewCBC() *CBC { return &CBC{} }

// AlgorithmSuffix names the mode for algorithm-name reporting.
func (CBC) AlgorithmSuffix() string { return "CBC" }

// RequiresIV is true: CBC needs a chaining IV to be secure.
func (CBC) RequiresIV() bool { return true }

// EngineDirection matches the overall direction: CBC decrypts through the
// engine's own decrypt path.
func (CBC) EngineDirection(forEncryption bool) bool { return forEncryption }

// CreateEncryptor returns a CBC encryption ModeProcessor bound to engine and iv.
func (c CBC) CreateEncryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newCBCProcessor(engine, iv, true)
}

// CreateDecryptor returns a CBC decryption ModeProcessor bound to engine and iv.
func (c CBC) CreateDecryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newCBCProcessor(engine, iv, false)
}

type cbcProcessor struct {
	engine     cipher.BlockEngine
	blockSize  int
	chain      []byte
	nextChain  []byte
	encrypting bool
}

func newCBCProcessor(engine cipher.BlockEngine, iv []byte, encrypting bool) (*cbcProcessor, error) {
	blockSize := engine.BlockSize()
	if len(iv) != blockSize {
		return nil, fmt.Errorf("%w: CBC initialization vector must be %d bytes, got %d", cipher.ErrConfig, blockSize, len(iv))
	}

	chain := make([]byte, blockSize)
	copy(chain, iv)

	return &cbcProcessor{
		engine:     engine,
		blockSize:  blockSize,
		chain:      chain,
		nextChain:  make([]byte, blockSize),
		encrypting: encrypting,
	}, nil
}

// BlockSize returns the underlying engine's block size in bytes.
func (c *cbcProcessor) BlockSize() int { return c.blockSize }

// ProcessBlock transforms one block in place at buf[offset:offset+blockSize].
func (c *cbcProcessor) ProcessBlock(buf []byte, offset int) (int, error) {
	if c.encrypting {
		return c.encryptBlock(buf, offset)
	}
	return c.decryptBlock(buf, offset)
}

func (c *cbcProcessor) encryptBlock(buf []byte, offset int) (int, error) {
	block := buf[offset : offset+c.blockSize]
	for i := range block {
		block[i] ^= c.chain[i]
	}

	n, err := c.engine.ProcessBlock(block, 0, block, 0)
	if err != nil {
		return 0, err
	}

	copy(c.chain, block)

	return n, nil
}

func (c *cbcProcessor) decryptBlock(buf []byte, offset int) (int, error) {
	block := buf[offset : offset+c.blockSize]
	copy(c.nextChain, block)

	n, err := c.engine.ProcessBlock(block, 0, block, 0)
	if err != nil {
		return 0, err
	}

	for i := range block {
		block[i] ^= c.chain[i]
	}

	c.chain, c.nextChain = c.nextChain, c.chain

	return n, nil
}

var _ cipher.Mode = CBC{}
