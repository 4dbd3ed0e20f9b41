package serializable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lihongjie0209/cryptocore/wordarray"
)

func TestOpenSSLFormatterRoundTripWithSalt(t *testing.T) {
	c := &CipherParams{
		Ciphertext: wordarray.FromBytes([]byte("some ciphertext bytes, 31 long.")),
		Salt:       wordarray.FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8}),
	}

	wire, err := NewOpenSSLFormatter().Stringify(c)
	require.NoError(t, err)

	parsed, err := NewOpenSSLFormatter().Parse(wire)
	require.NoError(t, err)

	assert.Equal(t, c.Ciphertext.Bytes(), parsed.Ciphertext.Bytes())
	assert.Equal(t, c.Salt.Bytes(), parsed.Salt.Bytes())
}

func TestOpenSSLFormatterRoundTripWithoutSalt(t *testing.T) {
	c := &CipherParams{Ciphertext: wordarray.FromBytes([]byte("raw key path, no salt"))}

	wire, err := NewOpenSSLFormatter().Stringify(c)
	require.NoError(t, err)

	parsed, err := NewOpenSSLFormatter().Parse(wire)
	require.NoError(t, err)

	assert.Equal(t, c.Ciphertext.Bytes(), parsed.Ciphertext.Bytes())
	assert.Nil(t, parsed.Salt)
}

func TestOpenSSLFormatterStringifyRejectsMissingCiphertext(t *testing.T) {
	_, err := NewOpenSSLFormatter().Stringify(&CipherParams{})
	require.Error(t, err)
}

func TestOpenSSLFormatterParseRejectsInvalidBase64(t *testing.T) {
	_, err := NewOpenSSLFormatter().Parse("not valid base64!!")
	require.Error(t, err)
}

func TestOpenSSLFormatterParseRejectsTruncatedSaltedHeader(t *testing.T) {
	_, err := NewOpenSSLFormatter().Parse("U2FsdGVkX18=") // "Salted__" header, no salt bytes
	require.Error(t, err)
}
