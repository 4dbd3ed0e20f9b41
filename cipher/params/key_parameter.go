// Package params provides the concrete Parameters implementations threaded
// through the cipher pipeline: a bare key, and a key wrapped with an IV.
//
// Reference: org.bouncycastle.crypto.params.{KeyParameter,ParametersWithIV} (bc-java).
package params

import "github.com/lihongjie0209/cryptocore/cipher"

// KeyParameter holds a symmetric key.
type KeyParameter struct {
	key []byte
}

// NewKeyParameter creates a new key parameter, taking a defensive copy.
func NewKeyParameter(key []byte) *KeyParameter {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	return &KeyParameter{key: keyCopy}
}

// Key returns the key bytes.
func (kp *KeyParameter) Key() []byte {
	return kp.key
}

// IsCipherParameters implements the cipher.Parameters marker interface.
func (kp *KeyParameter) IsCipherParameters() bool {
	return true
}

var _ cipher.Parameters = (*KeyParameter)(nil)
