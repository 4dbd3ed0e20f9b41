package engines

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/params"
)

// RC4 implements the RC4 stream cipher keystream generator. It is legacy
// and insecure for new designs; it is provided here only so
// StreamCipherProcessor has a second, dependency-free primitive to run
// against besides ChaCha20.
//
// Reference: RFC 6229.
type RC4 struct {
	state       [256]byte
	i, j        byte
	initialized bool
}

// NewRC4 creates an uninitialized RC4 engine.
func NewRC4() *RC4 {
	return &RC4{}
}

// Init schedules the key. RC4 accepts keys from 1 to 256 bytes.
func (r *RC4) Init(p cipher.Parameters) error {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		return fmt.Errorf("%w: RC4 requires a KeyParameter", cipher.ErrConfig)
	}

	key := keyParam.Key()
	if len(key) == 0 || len(key) > 256 {
		return fmt.Errorf("%w: RC4 key must be 1-256 bytes, got %d", cipher.ErrConfig, len(key))
	}

	for i := 0; i < 256; i++ {
		r.state[i] = byte(i)
	}

	var j byte
	for i := 0; i < 256; i++ {
		j += r.state[i] + key[i%len(key)]
		r.state[i], r.state[j] = r.state[j], r.state[i]
	}

	r.i, r.j = 0, 0
	r.initialized = true

	return nil
}

// AlgorithmName returns the algorithm name.
func (r *RC4) AlgorithmName() string {
	return "RC4"
}

// XORKeyStream XORs src with the RC4 keystream into dst.
func (r *RC4) XORKeyStream(dst, src []byte) error {
	if !r.initialized {
		return fmt.Errorf("%w: RC4 engine not initialized", cipher.ErrConfig)
	}

	for k, b := range src {
		r.i++
		r.j += r.state[r.i]
		r.state[r.i], r.state[r.j] = r.state[r.j], r.state[r.i]
		dst[k] = b ^ r.state[byte(r.state[r.i]+r.state[r.j])]
	}

	return nil
}

// Reset clears the keystream position; the key schedule itself is not
// retained separately, so a full Init is required to encrypt again.
func (r *RC4) Reset() {
	r.initialized = false
	r.i, r.j = 0, 0
}

var _ cipher.StreamEngine = (*RC4)(nil)
