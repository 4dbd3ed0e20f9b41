package processor

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// StreamCipherProcessor is a BufferedProcessor specialized for stream
// ciphers: blockSize is a single word (32 bits), there is no padding, and
// encrypt/decrypt are the identical keystream XOR.
type StreamCipherProcessor struct {
	pump

	engine cipher.StreamEngine
}

// NewStreamCipherProcessor constructs a processor bound to an
// already-initialized stream engine.
func NewStreamCipherProcessor(engine cipher.StreamEngine) *StreamCipherProcessor {
	p := &StreamCipherProcessor{
		pump:   newPump(1),
		engine: engine,
	}
	p.pump.reset()

	return p
}

// BlockSize returns 4 (one word), the stream processor's transform granularity.
func (p *StreamCipherProcessor) BlockSize() int { return 4 }

// Process appends input and returns the whole words the keystream has now
// covered (min buffer size 0 for a stream cipher). A trailing partial word
// of up to 3 bytes stays buffered until a later call or Finalize.
func (p *StreamCipherProcessor) Process(input *wordarray.WordArray) (*wordarray.WordArray, error) {
	if p.pump.finalized {
		return nil, fmt.Errorf("%w: process called after finalize", cipher.ErrUsage)
	}

	p.pump.append(input)

	return p.pump.run(false, p.doProcessBlock)
}

// Finalize consumes any trailing input, flushes the remaining buffered
// bytes, and marks the processor unusable. There is no padding to apply.
func (p *StreamCipherProcessor) Finalize(input *wordarray.WordArray) (*wordarray.WordArray, error) {
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

	final, err := p.pump.run(true, p.doProcessBlock)
	if err != nil {
		return nil, err
	}

	leading.Concat(final)

	p.pump.data.Zero()

	return leading, nil
}

func (p *StreamCipherProcessor) doProcessBlock(buf []byte, offset, end int) error {
	return p.engine.XORKeyStream(buf[offset:end], buf[offset:end])
}
