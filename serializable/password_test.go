package serializable

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lihongjie0209/cryptocore/wordarray"
)

func TestPasswordBasedCipherRoundTrip(t *testing.T) {
	password := []byte("Secret Passphrase")
	message := wordarray.FromBytes([]byte("attack at dawn"))

	c, err := NewPasswordBasedCipher().Encrypt(AES256CBC, message, password, Config{})
	require.NoError(t, err)
	require.NotNil(t, c.Salt)
	require.Equal(t, 8, c.Salt.SigBytes)

	wire, err := NewOpenSSLFormatter().Stringify(c)
	require.NoError(t, err)

	recovered, err := NewPasswordBasedCipher().Decrypt(AES256CBC, wire, password, Config{})
	require.NoError(t, err)
	require.Equal(t, "attack at dawn", string(recovered.Bytes()))
}

func TestPasswordBasedCipherProducesSaltedWireFormat(t *testing.T) {
	password := []byte("Secret Passphrase")
	message := wordarray.FromBytes([]byte("abc"))

	c, err := NewPasswordBasedCipher().Encrypt(AES256CBC, message, password, Config{})
	require.NoError(t, err)

	wire, err := NewOpenSSLFormatter().Stringify(c)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(wire)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "Salted__"))
	require.Equal(t, 0, (len(raw)-len(saltedHeader)-saltSize)%16)
}

func TestPasswordBasedCipherWrongPasswordFailsPadding(t *testing.T) {
	message := wordarray.FromBytes([]byte("attack at dawn, repeated until multiple blocks"))

	c, err := NewPasswordBasedCipher().Encrypt(AES256CBC, message, []byte("correct password"), Config{})
	require.NoError(t, err)

	wire, err := NewOpenSSLFormatter().Stringify(c)
	require.NoError(t, err)

	_, err = NewPasswordBasedCipher().Decrypt(AES256CBC, wire, []byte("wrong password"), Config{})
	require.Error(t, err)
}

func TestPasswordBasedCipherStreamCipherRoundTrip(t *testing.T) {
	password := []byte("stream passphrase")
	message := wordarray.FromBytes([]byte("no padding on this path"))

	c, err := NewPasswordBasedCipher().Encrypt(RC4Stream, message, password, Config{})
	require.NoError(t, err)

	wire, err := NewOpenSSLFormatter().Stringify(c)
	require.NoError(t, err)

	recovered, err := NewPasswordBasedCipher().Decrypt(RC4Stream, wire, password, Config{})
	require.NoError(t, err)
	require.Equal(t, message.Bytes(), recovered.Bytes())
}

func TestPasswordBasedCipherOpenSSLCrossToolCompatibility(t *testing.T) {
	// Produced by: printf 'abc\n' | openssl enc -aes-256-cbc -pass pass:foo -a -salt -md md5
	const wire = "U2FsdGVkX1+Sqzq/QfcpDr6yzn8z88/0Tmv42fiq2VA="

	recovered, err := NewPasswordBasedCipher().Decrypt(AES256CBC, wire, []byte("foo"), Config{})
	require.NoError(t, err)
	require.Equal(t, "abc\n", string(recovered.Bytes()))
}
