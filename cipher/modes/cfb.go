package modes

import "github.com/lihongjie0209/cryptocore/cipher"

// CFB implements full-block Cipher Feedback mode (CFB-n where n is the
// engine's full block size, e.g. CFB128 for a 128-bit block cipher).
// Reference: org.bouncycastle.crypto.modes.CFBBlockCipher, simplified here
// from a configurable bit-width variant to the full-block feedback most
// libraries default to.
type CFB struct{}

// NewCFB creates a CFB mode handle.
func NewCFB() *CFB { return &CFB{} }

// AlgorithmSuffix names the mode for algorithm-name reporting.
func (CFB) AlgorithmSuffix() string { return "CFB" }

// RequiresIV is true: CFB needs an initial feedback register.
func (CFB) RequiresIV() bool { return true }

// EngineDirection is always encrypting: CFB always runs the engine forward
// to produce keystream, regardless of overall direction.
func (CFB) EngineDirection(bool) bool { return true }

// CreateEncryptor returns a CFB encryption ModeProcessor.
func (CFB) CreateEncryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newCFBProcessor(engine, iv, true)
}

// CreateDecryptor returns a CFB decryption ModeProcessor.
func (CFB) CreateDecryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newCFBProcessor(engine, iv, false)
}

type cfbProcessor struct {
	engine     cipher.BlockEngine
	blockSize  int
	feedback   []byte
	keystream  []byte
	encrypting bool
}

func newCFBProcessor(engine cipher.BlockEngine, iv []byte, encrypting bool) (*cfbProcessor, error) {
	blockSize := engine.BlockSize()

	feedback := make([]byte, blockSize)
	if len(iv) < blockSize {
		copy(feedback[blockSize-len(iv):], iv)
	} else {
		copy(feedback, iv[:blockSize])
	}

	return &cfbProcessor{
		engine:     engine,
		blockSize:  blockSize,
		feedback:   feedback,
		keystream:  make([]byte, blockSize),
		encrypting: encrypting,
	}, nil
}

// BlockSize returns the underlying engine's block size in bytes.
func (c *cfbProcessor) BlockSize() int { return c.blockSize }

// ProcessBlock transforms one block in place, threading the feedback register.
func (c *cfbProcessor) ProcessBlock(buf []byte, offset int) (int, error) {
	if _, err := c.engine.ProcessBlock(c.feedback, 0, c.keystream, 0); err != nil {
		return 0, err
	}

	block := buf[offset : offset+c.blockSize]

	if c.encrypting {
		for i := range block {
			block[i] ^= c.keystream[i]
		}
		copy(c.feedback, block)
	} else {
		copy(c.feedback, block)
		for i := range block {
			block[i] ^= c.keystream[i]
		}
	}

	return c.blockSize, nil
}

var _ cipher.Mode = CFB{}
