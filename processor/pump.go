package processor

import "github.com/lihongjie0209/cryptocore/wordarray"

// pump holds the buffered-block-pump state shared by BlockCipherProcessor
// and StreamCipherProcessor: the pending input buffer, total bytes seen,
// and the block-size/minimum-buffer bookkeeping that drives _process.
type pump struct {
	data          *wordarray.WordArray
	nDataBytes    uint64
	minBufferSize int // blocks retained when not flushing
	blockSize     int // words per block
	finalized     bool
}

func newPump(blockSize int) pump {
	return pump{data: wordarray.New(nil), blockSize: blockSize}
}

func (p *pump) reset() {
	p.data = wordarray.New(nil)
	p.nDataBytes = 0
	p.finalized = false
}

func (p *pump) append(input *wordarray.WordArray) {
	p.data.Concat(input)
	p.nDataBytes += uint64(input.SigBytes)
}

// run executes the _process(flush) algorithm: it assembles whole blocks
// from the pending buffer, calls doBlock once per block at a byte offset
// into a flat buffer holding exactly those blocks, then removes the
// consumed words/bytes from the head of the pending buffer.
func (p *pump) run(flush bool, doBlock func(buf []byte, offset, end int) error) (*wordarray.WordArray, error) {
	blockSizeBytes := 4 * p.blockSize
	nBytesReady := p.data.SigBytes

	var nBlocksReady int
	if flush {
		// Include a final partial block: stream ciphers have no padding
		// to align the tail, so flush must cover every remaining byte.
		nBlocksReady = (nBytesReady + blockSizeBytes - 1) / blockSizeBytes
	} else {
		nBlocksReady = nBytesReady/blockSizeBytes - p.minBufferSize
		if nBlocksReady < 0 {
			nBlocksReady = 0
		}
	}

	nWordsReady := nBlocksReady * p.blockSize
	if nWordsReady == 0 {
		return wordarray.New(nil), nil
	}

	nBytesReadyPrime := nWordsReady * 4
	if nBytesReadyPrime > nBytesReady {
		nBytesReadyPrime = nBytesReady
	}

	buf := p.data.HeadWordBytes(nWordsReady)

	for offset := 0; offset < nBytesReadyPrime; offset += blockSizeBytes {
		end := offset + blockSizeBytes
		if end > nBytesReadyPrime {
			end = nBytesReadyPrime
		}
		if err := doBlock(buf, offset, end); err != nil {
			return nil, err
		}
	}

	words := wordarray.BigEndianWords(buf, 0, nWordsReady)
	processed := wordarray.NewWithSigBytes(words, nBytesReadyPrime)

	p.data.DropFront(nWordsReady, nBytesReadyPrime)

	return processed, nil
}
