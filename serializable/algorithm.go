package serializable

import (
	"fmt"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/engines"
	"github.com/lihongjie0209/cryptocore/cipher/modes"
	"github.com/lihongjie0209/cryptocore/cipher/params"
	"github.com/lihongjie0209/cryptocore/processor"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

// Processor is the minimal surface SerializableCipher/PasswordBasedCipher
// drive: append input, and terminate the message. Both
// processor.BlockCipherProcessor and processor.StreamCipherProcessor
// satisfy it.
type Processor interface {
	Process(input *wordarray.WordArray) (*wordarray.WordArray, error)
	Finalize(input *wordarray.WordArray) (*wordarray.WordArray, error)
	// BlockSize is the transform granularity in bytes: the engine's block
	// size for a block cipher, one word for a stream cipher.
	BlockSize() int
}

// Config is the superset of options recognized across the wrapper layers;
// each layer reads only the fields relevant to it.
type Config struct {
	IV      []byte
	Mode    cipher.Mode
	Padding cipher.Padding
	Format  Formatter
	Kdf     Kdf
}

// Algorithm is a cipher algorithm handle: fixed key/IV sizes plus
// factories producing a bound Processor.
type Algorithm struct {
	name        string
	keySize     int // bytes; 0 means variable-length (checked by the engine itself)
	ivSize      int // bytes; 0 means the mode/engine needs no IV
	defaultMode cipher.Mode
	newBlock    func() cipher.BlockEngine
	newStream   func() cipher.StreamEngine
}

// Name returns the algorithm's display name, e.g. "AES-128-CBC".
func (a *Algorithm) Name() string { return a.name }

// KeySize returns the required key length in bytes (0 if variable).
func (a *Algorithm) KeySize() int { return a.keySize }

// IVSize returns the required IV/nonce length in bytes (0 if none).
func (a *Algorithm) IVSize() int { return a.ivSize }

// CreateEncryptor builds a Processor bound to key, configured to encrypt.
func (a *Algorithm) CreateEncryptor(key []byte, cfg Config) (Processor, error) {
	return a.create(processor.Encrypt, key, cfg)
}

// CreateDecryptor builds a Processor bound to key, configured to decrypt.
func (a *Algorithm) CreateDecryptor(key []byte, cfg Config) (Processor, error) {
	return a.create(processor.Decrypt, key, cfg)
}

// resolveMode returns the mode the given config selects for a block
// algorithm: cfg.Mode when set, the algorithm's own default otherwise,
// nil for stream algorithms.
func (a *Algorithm) resolveMode(cfg Config) cipher.Mode {
	if a.newBlock == nil {
		return nil
	}
	if cfg.Mode != nil {
		return cfg.Mode
	}
	return a.defaultMode
}

func (a *Algorithm) create(xform processor.XformMode, key []byte, cfg Config) (Processor, error) {
	if a.keySize != 0 && len(key) != a.keySize {
		return nil, fmt.Errorf("%w: %s requires a %d-byte key, got %d", cipher.ErrConfig, a.name, a.keySize, len(key))
	}

	if a.newBlock != nil {
		return a.createBlock(xform, key, cfg)
	}
	return a.createStream(key, cfg)
}

func (a *Algorithm) createBlock(xform processor.XformMode, key []byte, cfg Config) (Processor, error) {
	mode := a.resolveMode(cfg)

	engine := a.newBlock()
	forEncryption := mode.EngineDirection(xform == processor.Encrypt)
	if err := engine.Init(forEncryption, params.NewKeyParameter(key)); err != nil {
		return nil, err
	}

	padding := cfg.Padding

	return processor.NewBlockCipherProcessor(xform, engine, processor.BlockCipherConfig{
		IV:      cfg.IV,
		Mode:    mode,
		Padding: padding,
	})
}

func (a *Algorithm) createStream(key []byte, cfg Config) (Processor, error) {
	engine := a.newStream()

	var p cipher.Parameters = params.NewKeyParameter(key)
	if a.ivSize > 0 {
		if len(cfg.IV) != a.ivSize {
			return nil, fmt.Errorf("%w: %s requires a %d-byte nonce, got %d", cipher.ErrConfig, a.name, a.ivSize, len(cfg.IV))
		}
		p = params.NewParametersWithIV(p, cfg.IV)
	}

	if err := engine.Init(p); err != nil {
		return nil, err
	}

	return processor.NewStreamCipherProcessor(engine), nil
}

func newAESAlgorithm(keySizeBytes int, suffix string, mode cipher.Mode) *Algorithm {
	ivSize := 16
	if !mode.RequiresIV() {
		ivSize = 0
	}

	return &Algorithm{
		name:        fmt.Sprintf("AES-%d-%s", keySizeBytes*8, suffix),
		keySize:     keySizeBytes,
		ivSize:      ivSize,
		defaultMode: mode,
		newBlock:    func() cipher.BlockEngine { return engines.NewAES() },
	}
}

// Registry of ready-made algorithm handles, the AES/RC4/ChaCha20
// combinations a caller is expected to reach for directly.
var (
	AES128CBC = newAESAlgorithm(16, "CBC", modes.NewCBC())
	AES192CBC = newAESAlgorithm(24, "CBC", modes.NewCBC())
	AES256CBC = newAESAlgorithm(32, "CBC", modes.NewCBC())
	AES128ECB = newAESAlgorithm(16, "ECB", modes.NewECB())
	AES256ECB = newAESAlgorithm(32, "ECB", modes.NewECB())
	AES128CFB = newAESAlgorithm(16, "CFB", modes.NewCFB())
	AES128OFB = newAESAlgorithm(16, "OFB", modes.NewOFB())
	AES128CTR = newAESAlgorithm(16, "CTR", modes.NewCTR())
	AES256CTR = newAESAlgorithm(32, "CTR", modes.NewCTR())

	RC4Stream = &Algorithm{
		name:      "RC4",
		keySize:   0,
		ivSize:    0,
		newStream: func() cipher.StreamEngine { return engines.NewRC4() },
	}

	ChaCha20Stream = &Algorithm{
		name:      "ChaCha20",
		keySize:   32,
		ivSize:    12,
		newStream: func() cipher.StreamEngine { return engines.NewChaCha20() },
	}
)
