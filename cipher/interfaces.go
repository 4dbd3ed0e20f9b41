// Package cipher defines the pluggable contracts the processor and
// serializable layers are built against: the block/stream primitive, the
// mode-of-operation handle, the padding handle, and the cipher-parameters
// marker interface threaded through all of them.
//
// Reference: org.bouncycastle.crypto.{BlockCipher,CipherParameters,
// BlockCipherPadding} (bc-java), generalized to handle/factory values
// instead of a class hierarchy.
package cipher

import "github.com/lihongjie0209/cryptocore/wordarray"

// Parameters is a marker interface for cipher parameters (key material,
// optionally wrapped with an IV). Reference: org.bouncycastle.crypto.CipherParameters.
type Parameters interface {
	// IsCipherParameters marks a type as usable wherever Parameters is expected.
	IsCipherParameters() bool
}

// BlockEngine is a keyed block-transform primitive: AES, or any future
// block cipher round function. The pipeline consumes it, never
// reimplements it.
type BlockEngine interface {
	Init(forEncryption bool, params Parameters) error
	AlgorithmName() string
	BlockSize() int
	ProcessBlock(in []byte, inOff int, out []byte, outOff int) (int, error)
	Reset()
}

// StreamEngine is a keyed keystream primitive operating at byte
// granularity (RC4, ChaCha20, ...). Consumed by StreamCipherProcessor.
type StreamEngine interface {
	Init(params Parameters) error
	AlgorithmName() string
	XORKeyStream(dst, src []byte) error
	Reset()
}

// ModeProcessor transforms exactly one block in place at words[offset:offset+blockSize],
// threading chaining state internally.
type ModeProcessor interface {
	ProcessBlock(words []byte, offset int) (int, error)
	BlockSize() int
}

// Mode is a block-mode handle: a factory producing a per-session
// ModeProcessor bound to a cipher instance and an IV.
type Mode interface {
	AlgorithmSuffix() string
	CreateEncryptor(engine BlockEngine, iv []byte) (ModeProcessor, error)
	CreateDecryptor(engine BlockEngine, iv []byte) (ModeProcessor, error)
	// RequiresIV reports whether this mode needs a non-nil IV to operate safely.
	RequiresIV() bool
	// EngineDirection reports which direction the underlying BlockEngine
	// must be initialized with for an operation of the given overall
	// direction. CBC/ECB match the overall direction; CFB/OFB/CTR always
	// run the engine in the encrypting direction regardless of overall
	// direction, since they turn the block cipher into a keystream
	// generator.
	EngineDirection(forEncryption bool) bool
}

// Padding pads/unpads a WordArray to/from a block-size-aligned length.
// Reference: org.bouncycastle.crypto.paddings.BlockCipherPadding (bc-java).
type Padding interface {
	Name() string
	// Pad grows data so data.SigBytes becomes a positive multiple of
	// 4*blockSizeWords, filling the new bytes per the scheme's rule.
	Pad(data *wordarray.WordArray, blockSizeWords int)
	// Unpad shrinks data.SigBytes by the pad length encoded in the tail,
	// returning a PaddingError (ErrPadding) if the padding is malformed.
	Unpad(data *wordarray.WordArray) error
}
