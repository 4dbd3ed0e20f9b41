package modes

import "github.com/lihongjie0209/cryptocore/cipher"

// OFB implements full-block Output Feedback mode: the keystream is
// generated by repeatedly re-encrypting the engine's own previous output,
// independent of the plaintext/ciphertext.
type OFB struct{}

// NewOFB creates an OFB mode handle.
func NewOFB() *OFB { return &OFB{} }

// AlgorithmSuffix names the mode for algorithm-name reporting.
func (OFB) AlgorithmSuffix() string { return "OFB" }

// RequiresIV is true: OFB needs an initial feedback register.
func (OFB) RequiresIV() bool { return true }

// EngineDirection is always encrypting: OFB always runs the engine forward
// to produce keystream, regardless of overall direction.
func (OFB) EngineDirection(bool) bool { return true }

// CreateEncryptor returns an OFB encryption ModeProcessor.
func (OFB) CreateEncryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newOFBProcessor(engine, iv)
}

// CreateDecryptor returns an OFB decryption ModeProcessor. OFB is
// symmetric: encryption and decryption apply the identical keystream XOR.
func (OFB) CreateDecryptor(engine cipher.BlockEngine, iv []byte) (cipher.ModeProcessor, error) {
	return newOFBProcessor(engine, iv)
}

type ofbProcessor struct {
	engine    cipher.BlockEngine
	blockSize int
	feedback  []byte
}

func newOFBProcessor(engine cipher.BlockEngine, iv []byte) (*ofbProcessor, error) {
	blockSize := engine.BlockSize()

	feedback := make([]byte, blockSize)
	if len(iv) < blockSize {
		copy(feedback[blockSize-len(iv):], iv)
	} else {
		copy(feedback, iv[:blockSize])
	}

	return &ofbProcessor{engine: engine, blockSize: blockSize, feedback: feedback}, nil
}

// BlockSize returns the underlying engine's block size in bytes.
func (o *ofbProcessor) BlockSize() int { return o.blockSize }

// ProcessBlock XORs one block of keystream in place and advances the
// feedback register to the engine's own output, independent of the data.
func (o *ofbProcessor) ProcessBlock(buf []byte, offset int) (int, error) {
	if _, err := o.engine.ProcessBlock(o.feedback, 0, o.feedback, 0); err != nil {
		return 0, err
	}

	block := buf[offset : offset+o.blockSize]
	for i := range block {
		block[i] ^= o.feedback[i]
	}

	return o.blockSize, nil
}

var _ cipher.Mode = OFB{}
