package serializable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSSLKdfIsDeterministicGivenSameSalt(t *testing.T) {
	salt := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	a, err := NewOpenSSLKdf().Execute([]byte("password"), 32, 16, salt)
	require.NoError(t, err)
	b, err := NewOpenSSLKdf().Execute([]byte("password"), 32, 16, salt)
	require.NoError(t, err)

	assert.Equal(t, a.Key.Bytes(), b.Key.Bytes())
	assert.Equal(t, a.IV.Bytes(), b.IV.Bytes())
}

func TestOpenSSLKdfDerivesRequestedLengths(t *testing.T) {
	derived, err := NewOpenSSLKdf().Execute([]byte("password"), 32, 16, []byte{0, 1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, 32, derived.Key.SigBytes)
	assert.Equal(t, 16, derived.IV.SigBytes)
}

func TestOpenSSLKdfGeneratesRandomSaltWhenNilAndVariesOutput(t *testing.T) {
	a, err := NewOpenSSLKdf().Execute([]byte("password"), 16, 16, nil)
	require.NoError(t, err)
	b, err := NewOpenSSLKdf().Execute([]byte("password"), 16, 16, nil)
	require.NoError(t, err)

	require.Equal(t, 8, a.Salt.SigBytes)
	assert.NotEqual(t, a.Salt.Bytes(), b.Salt.Bytes())
	assert.NotEqual(t, a.Key.Bytes(), b.Key.Bytes())
}

func TestOpenSSLKdfDifferentPasswordsDeriveDifferentKeys(t *testing.T) {
	salt := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	a, err := NewOpenSSLKdf().Execute([]byte("password one"), 32, 16, salt)
	require.NoError(t, err)
	b, err := NewOpenSSLKdf().Execute([]byte("password two"), 32, 16, salt)
	require.NoError(t, err)

	assert.NotEqual(t, a.Key.Bytes(), b.Key.Bytes())
}
