package modes

import "github.com/lihongjie0209/cryptocore/cipher"

// ECB implements Electronic Codebook mode: each block is transformed
// independently, with no chaining.
//
// ECB is NOT SECURE for general use — identical plaintext blocks always
// produce identical ciphertext blocks — and is provided here only for
// compatibility with legacy streams and for testing.
type ECB struct{}

// NewECB creates an ECB mode handle.
func NewECB() *ECB { return &ECB{} }

// AlgorithmSuffix names the mode for algorithm-name reporting.
func (ECB) AlgorithmSuffix() string { return "ECB" }

// RequiresIV is false: ECB has no chaining state.
func (ECB) RequiresIV() bool { return false }

// EngineDirection matches the overall direction.
func (ECB) EngineDirection(forEncryption bool) bool { return forEncryption }

// CreateEncryptor returns an ECB encryption ModeProcessor.
func (ECB) CreateEncryptor(engine cipher.BlockEngine, _ []byte) (cipher.ModeProcessor, error) {
	return &ecbProcessor{engine: engine, blockSize: engine.BlockSize()}, nil
}

// CreateDecryptor returns an ECB decryption ModeProcessor.
func (ECB) CreateDecryptor(engine cipher.BlockEngine, _ []byte) (cipher.ModeProcessor, error) {
	return &ecbProcessor{engine: engine, blockSize: engine.BlockSize()}, nil
}

type ecbProcessor struct {
	engine    cipher.BlockEngine
	blockSize int
}

// BlockSize returns the underlying engine's block size in bytes.
func (e *ecbProcessor) BlockSize() int { return e.blockSize }

// ProcessBlock transforms one block in place, independent of any other block.
func (e *ecbProcessor) ProcessBlock(buf []byte, offset int) (int, error) {
	block := buf[offset : offset+e.blockSize]
	return e.engine.ProcessBlock(block, 0, block, 0)
}

var _ cipher.Mode = ECB{}
