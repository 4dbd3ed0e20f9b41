package modes

import "github.com/lihongjie0209/cryptocore/cipher"

// CTR implements Segmented Integer Counter mode: the keystream is the
// engine's encryption of a counter block that increments once per block,
// with the low-order bytes wrapping on overflow (SIC / counter mode).
type CTR struct{}

// NewCTR creates a CTR mode handle.
func NewCTR() *CTR { return &CTR{} }

// AlgorithmSuffix names the mode for algorithm-name reporting.
func (CTR) AlgorithmSuffix() string { return "CTR" }

// RequiresIV is true: CTR needs an initial counter value.
func (CTR) RequiresIV() bool { return true }

// EngineDirection is always encrypting: CTR always runs the engine forward
// to produce keystream, regardless of overall direction.
func (CTR) EngineDirection(bool) bool { return true }

// CreateEncryptor returns a CTR encryption ModeProcessor.
func (CTR) CreateEncryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newCTRProcessor(engine, iv)
}

// CreateDecryptor returns a CTR decryption ModeProcessor. CTR is
// symmetric: encryption and decryption apply the identical keystream XOR.
func (CTR) CreateDecryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newCTRProcessor(engine, iv)
}

type ctrProcessor struct {
	engine     cipher.BlockEngine
	blockSize  int
	counter    []byte
	counterOut []byte
}

func newCTRProcessor(engine cipher.BlockEngine, iv []byte) (*ctrProcessor, error) {
	blockSize := engine.BlockSize()

	counter := make([]byte, blockSize)
	if len(iv) < blockSize {
		copy(counter[blockSize-len(iv):], iv)
	} else {
		copy(counter, iv[:blockSize])
	}

	return &ctrProcessor{
		engine:     engine,
		blockSize:  blockSize,
		counter:    counter,
		counterOut: make([]byte, blockSize),
	}, nil
}

// BlockSize returns the underlying engine's block size in bytes.
func (c *ctrProcessor) BlockSize() int { return c.blockSize }

// ProcessBlock XORs one block of keystream in place, then increments the
// counter register for the next block.
func (c *ctrProcessor) ProcessBlock(buf []byte, offset int) (int, error) {
	if _, err := c.engine.ProcessBlock(c.counter, 0, c.counterOut, 0); err != nil {
		return 0, err
	}

	block := buf[offset : offset+c.blockSize]
	for i := range block {
		block[i] ^= c.counterOut[i]
	}

	c.incrementCounter()

	return c.blockSize, nil
}

// incrementCounter increments the counter register as a big-endian integer,
// wrapping on overflow.
func (c *ctrProcessor) incrementCounter() {
	for i := len(c.counter) - 1; i >= 0; i-- {
		c.counter[i]++
		if c.counter[i] != 0 {
			return
		}
	}
}

var _ cipher.Mode = CTR{}
