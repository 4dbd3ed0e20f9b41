package processor

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/modes"
	"github.com/lihongjie0209/cryptocore/cipher/paddings"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// BlockCipherProcessor is a BufferedProcessor specialized for block
// ciphers: blockSize defaults to 4 words (128 bits), padding aligns the
// final block, and decrypt retains one buffered block so the padding
// strategy can inspect it at finalize.
type BlockCipherProcessor struct {
	pump

	xformMode XformMode
	engine    cipher.BlockEngine
	mode      cipher.Mode
	padding   cipher.Padding
	iv        []byte
	modeProc  cipher.ModeProcessor
}

// NewBlockCipherProcessor constructs a processor bound to an
// already-initialized engine (Init must already have been called with the
// direction cfg.Mode.EngineDirection(xformMode == Encrypt) expects).
// cfg.Mode defaults to CBC, cfg.Padding to PKCS#7, when nil.
func NewBlockCipherProcessor(xformMode XformMode, engine cipher.BlockEngine, cfg BlockCipherConfig) (*BlockCipherProcessor, error) {
	mode := cfg.Mode
	if mode == nil {
		mode = modes.NewCBC()
	}
	padding := cfg.Padding
	if padding == nil {
		padding = paddings.NewPKCS7()
	}

	p := &BlockCipherProcessor{
		pump:      newPump(engine.BlockSize() / 4),
		xformMode: xformMode,
		engine:    engine,
		mode:      mode,
		padding:   padding,
		iv:        cfg.IV,
	}

	if err := p.reset(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *BlockCipherProcessor) reset() error {
	p.pump.reset()

	if p.mode.RequiresIV() && len(p.iv) == 0 {
		return fmt.Errorf("%w: mode %s requires an initialization vector", cipher.ErrConfig, p.mode.AlgorithmSuffix())
	}

	var modeProc cipher.ModeProcessor
	var err error
	switch p.xformMode {
	case Encrypt:
		modeProc, err = p.mode.CreateEncryptor(p.engine, p.iv)
	case Decrypt:
		modeProc, err = p.mode.CreateDecryptor(p.engine, p.iv)
		p.pump.minBufferSize = 1
	default:
		return fmt.Errorf("%w: unknown xform mode", cipher.ErrConfig)
	}
	if err != nil {
		return err
	}

	p.modeProc = modeProc

	return nil
}

// BlockSize returns the engine's block size in bytes.
func (p *BlockCipherProcessor) BlockSize() int { return 4 * p.pump.blockSize }

// Process appends input and returns whatever whole blocks the pump can
// now emit, retaining a tail below the minimum buffered block count.
func (p *BlockCipherProcessor) Process(input *wordarray.WordArray) (*wordarray.WordArray, error) {
	if p.pump.finalized {
		return nil, fmt.Errorf("%w: process called after finalize", cipher.ErrUsage)
	}

	p.pump.append(input)

	return p.pump.run(false, p.doProcessBlock)
}

// Finalize consumes any trailing input, applies or strips padding, flushes
// the remaining buffered blocks, and marks the processor unusable.
func (p *BlockCipherProcessor) Finalize(input *wordarray.WordArray) (*wordarray.WordArray, error) {
	if p.pump.finalized {
		return nil, fmt.Errorf("%w: finalize called more than once", cipher.ErrUsage)
	}

	var leading *wordarray.WordArray
	if input != nil {
		processed, err := p.Process(input)
		if err != nil {
			return nil, err
		}
		leading = processed
	} else {
		leading = wordarray.New(nil)
	}

	p.pump.finalized = true

	var final *wordarray.WordArray
	switch p.xformMode {
	case Encrypt:
		p.padding.Pad(p.pump.data, p.pump.blockSize)

		flushed, err := p.pump.run(true, p.doProcessBlock)
		if err != nil {
			return nil, err
		}
		final = flushed
	case Decrypt:
		blockSizeBytes := 4 * p.pump.blockSize
		if p.pump.data.SigBytes == 0 || p.pump.data.SigBytes%blockSizeBytes != 0 {
			return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size %d", cipher.ErrFormat, p.pump.data.SigBytes, blockSizeBytes)
		}

		flushed, err := p.pump.run(true, p.doProcessBlock)
		if err != nil {
			return nil, err
		}
		if err := p.padding.Unpad(flushed); err != nil {
			return nil, err
		}
		final = flushed
	}

	leading.Concat(final)

	p.pump.data.Zero()

	return leading, nil
}

func (p *BlockCipherProcessor) doProcessBlock(buf []byte, offset, _ int) error {
	_, err := p.modeProc.ProcessBlock(buf, offset)
	return err
}
