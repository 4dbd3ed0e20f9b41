package runner

import (
	"fmt"
	"strings"

	"github.com/lihongjie0209/cryptocore/serializable"
)

// resolveAlgorithm maps a CLI algorithm name to a registry handle.
func resolveAlgorithm(name string) (*serializable.Algorithm, error) {
	switch strings.ToLower(name) {
	case "aes-128-cbc":
		return serializable.AES128CBC, nil
	case "aes-192-cbc":
		return serializable.AES192CBC, nil
	case "aes-256-cbc":
		return serializable.AES256CBC, nil
	case "aes-128-ecb":
		return serializable.AES128ECB, nil
	case "aes-256-ecb":
		return serializable.AES256ECB, nil
	case "aes-128-cfb":
		return serializable.AES128CFB, nil
	case "aes-128-ofb":
		return serializable.AES128OFB, nil
	case "aes-128-ctr":
		return serializable.AES128CTR, nil
	case "aes-256-ctr":
		return serializable.AES256CTR, nil
	case "rc4":
		return serializable.RC4Stream, nil
	case "chacha20":
		return serializable.ChaCha20Stream, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}
