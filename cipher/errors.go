package cipher

import "errors"

// Error taxonomy for the cipher pipeline.
//
// Each kind is a sentinel; call sites wrap it with fmt.Errorf("...: %w", ErrX)
// and callers match with errors.Is.
var (
	// ErrConfig marks a missing required IV, or a config value that fails
	// validation for the layer that consumes it.
	ErrConfig = errors.New("cipher: configuration error")

	// ErrFormat marks a base64 decode failure, a malformed OpenSSL header,
	// or ciphertext whose length isn't a multiple of the block size.
	ErrFormat = errors.New("cipher: format error")

	// ErrPadding marks an invalid padding byte or inconsistent padding tail.
	ErrPadding = errors.New("cipher: padding error")

	// ErrKdf marks a key-derivation primitive that produced insufficient
	// bytes; this should be impossible for a correct primitive and is
	// treated as fatal.
	ErrKdf = errors.New("cipher: kdf error")

	// ErrUsage marks a call to Process after Finalize, or any attempt to
	// reuse a processor across messages.
	ErrUsage = errors.New("cipher: usage error")
)
